package physics

import (
	"github.com/Faultbox/splinecollider/pkg/math"
)

// pairKey identifies one volume/body contact pair.
type pairKey struct {
	vol  Handle
	body BodyID
}

// sphereBody is the only body shape SimpleWorld supports. Probes are spheres,
// which is enough to exercise capsule and box volumes.
type sphereBody struct {
	pos    math.Vec3
	radius float32
}

// SimpleWorld is a minimal discrete-step collision world. Each Step it tests
// every volume against every sphere body, diffs the overlap set against the
// previous step, and delivers begin/continue/end contacts serially to the
// registered listener in a stable (insertion) order.
type SimpleWorld struct {
	nextHandle Handle
	nextBody   BodyID

	volumes     map[Handle]VolumeDesc
	volumeOrder []Handle
	bodies      map[BodyID]sphereBody
	bodyOrder   []BodyID

	touching map[pairKey]bool
	listener ContactListener
}

// NewSimpleWorld creates an empty world.
func NewSimpleWorld() *SimpleWorld {
	return &SimpleWorld{
		volumes:  make(map[Handle]VolumeDesc),
		bodies:   make(map[BodyID]sphereBody),
		touching: make(map[pairKey]bool),
	}
}

// SetListener registers the receiver of contact notifications.
func (w *SimpleWorld) SetListener(l ContactListener) {
	w.listener = l
}

// AddVolume registers a collision volume and returns its handle.
func (w *SimpleWorld) AddVolume(desc VolumeDesc) Handle {
	w.nextHandle++
	h := w.nextHandle
	w.volumes[h] = desc
	w.volumeOrder = append(w.volumeOrder, h)
	return h
}

// RemoveVolume unregisters a volume. Pairs touching it are dropped without
// an end notification, mirroring an engine destroying a fixture; consumers
// must treat stray end contacts defensively anyway.
func (w *SimpleWorld) RemoveVolume(h Handle) {
	if _, ok := w.volumes[h]; !ok {
		return
	}
	delete(w.volumes, h)
	for i, v := range w.volumeOrder {
		if v == h {
			w.volumeOrder = append(w.volumeOrder[:i], w.volumeOrder[i+1:]...)
			break
		}
	}
	for k := range w.touching {
		if k.vol == h {
			delete(w.touching, k)
		}
	}
}

// VolumeCount returns the number of registered volumes.
func (w *SimpleWorld) VolumeCount() int {
	return len(w.volumes)
}

// AddBody registers a sphere body and returns its identity.
func (w *SimpleWorld) AddBody(pos math.Vec3, radius float32) BodyID {
	w.nextBody++
	id := w.nextBody
	w.bodies[id] = sphereBody{pos: pos, radius: radius}
	w.bodyOrder = append(w.bodyOrder, id)
	return id
}

// MoveBody updates a body position. Unknown ids are ignored.
func (w *SimpleWorld) MoveBody(id BodyID, pos math.Vec3) {
	b, ok := w.bodies[id]
	if !ok {
		return
	}
	b.pos = pos
	w.bodies[id] = b
}

// RemoveBody unregisters a body and drops its pair states.
func (w *SimpleWorld) RemoveBody(id BodyID) {
	if _, ok := w.bodies[id]; !ok {
		return
	}
	delete(w.bodies, id)
	for i, b := range w.bodyOrder {
		if b == id {
			w.bodyOrder = append(w.bodyOrder[:i], w.bodyOrder[i+1:]...)
			break
		}
	}
	for k := range w.touching {
		if k.body == id {
			delete(w.touching, k)
		}
	}
}

// Step runs one discrete collision pass and delivers notifications.
func (w *SimpleWorld) Step() {
	current := make(map[pairKey]*ContactDetail)

	for _, h := range w.volumeOrder {
		vol := w.volumes[h]
		for _, id := range w.bodyOrder {
			body := w.bodies[id]
			if detail, ok := overlap(vol, body); ok {
				key := pairKey{vol: h, body: id}
				current[key] = detail

				phase := PhaseBegin
				if w.touching[key] {
					phase = PhaseContinue
				}
				w.notify(h, vol, id, phase, detail)
			}
		}
	}

	// Pairs that were touching last step but not this one have ended.
	for _, h := range w.volumeOrder {
		vol := w.volumes[h]
		for _, id := range w.bodyOrder {
			key := pairKey{vol: h, body: id}
			if w.touching[key] && current[key] == nil {
				w.notify(h, vol, id, PhaseEnd, nil)
			}
		}
	}

	w.touching = make(map[pairKey]bool, len(current))
	for k := range current {
		w.touching[k] = true
	}
}

func (w *SimpleWorld) notify(h Handle, vol VolumeDesc, id BodyID, phase Phase, detail *ContactDetail) {
	if w.listener == nil {
		return
	}
	c := Contact{Volume: h, Body: id, Phase: phase}
	if vol.IsTrigger {
		c.Channel = ChannelTrigger
	} else {
		c.Channel = ChannelCollision
		c.Detail = detail
	}
	w.listener.HandleContact(c)
}

// overlap tests a volume against a sphere body and, when they intersect,
// returns the contact detail.
func overlap(vol VolumeDesc, body sphereBody) (*ContactDetail, bool) {
	switch vol.Shape {
	case ShapeCapsule:
		return capsuleSphere(vol, body)
	case ShapeBox:
		return boxSphere(vol, body)
	default:
		return nil, false
	}
}

func capsuleSphere(vol VolumeDesc, body sphereBody) (*ContactDetail, bool) {
	// Core segment of the capsule along its rotated up axis.
	half := (vol.Height - 2*vol.Radius) / 2
	if half < 0 {
		half = 0
	}
	axis := vol.Rotation.Rotate(math.Vec3{Y: 1}).Scale(half)
	a := vol.Position.Sub(axis)
	b := vol.Position.Add(axis)

	closest := closestOnSegment(a, b, body.pos)
	dist := closest.Distance(body.pos)
	reach := vol.Radius + body.radius
	if dist >= reach {
		return nil, false
	}

	normal := body.pos.Sub(closest).Normalize()
	if normal == (math.Vec3{}) {
		normal = math.Vec3{Y: 1}
	}
	return &ContactDetail{
		Point:  closest.Add(normal.Scale(vol.Radius)),
		Normal: normal,
		Depth:  reach - dist,
	}, true
}

func boxSphere(vol VolumeDesc, body sphereBody) (*ContactDetail, bool) {
	// Work in the box local frame.
	local := vol.Rotation.Conjugate().Rotate(body.pos.Sub(vol.Position))
	half := vol.Size.Scale(0.5)
	clamped := math.Vec3{
		X: clamp(local.X, -half.X, half.X),
		Y: clamp(local.Y, -half.Y, half.Y),
		Z: clamp(local.Z, -half.Z, half.Z),
	}

	closest := vol.Position.Add(vol.Rotation.Rotate(clamped))
	dist := closest.Distance(body.pos)
	if dist >= body.radius {
		return nil, false
	}

	normal := body.pos.Sub(closest).Normalize()
	if normal == (math.Vec3{}) {
		// Sphere center inside the box.
		normal = math.Vec3{Y: 1}
	}
	return &ContactDetail{
		Point:  closest,
		Normal: normal,
		Depth:  body.radius - dist,
	}, true
}

func closestOnSegment(a, b, p math.Vec3) math.Vec3 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return a
	}
	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return a.Add(ab.Scale(t))
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
