// Package physics defines the volume host contract consumed by the collider
// baker and contact aggregator, plus a small sphere-probe world implementing
// it for tests and tooling. A real engine backend satisfies the same
// interfaces.
package physics

import (
	"github.com/Faultbox/splinecollider/pkg/math"
)

// Shape identifies the kind of collision volume.
type Shape int

const (
	ShapeCapsule Shape = iota
	ShapeBox
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeCapsule:
		return "capsule"
	case ShapeBox:
		return "box"
	default:
		return "unknown"
	}
}

// Handle is an opaque reference to a registered volume. The zero value is
// never issued.
type Handle int

// BodyID is the stable identity of an external object reported in contacts.
type BodyID uint64

// Channel separates overlap (trigger) contacts from physical collisions.
// The two streams are tracked independently.
type Channel int

const (
	ChannelTrigger Channel = iota
	ChannelCollision
)

// Phase is the lifecycle stage of a single volume/body contact.
type Phase int

const (
	PhaseBegin Phase = iota
	PhaseContinue
	PhaseEnd
)

// ContactDetail carries collision geometry for one volume/body pair.
type ContactDetail struct {
	Point  math.Vec3 // contact point on the volume surface
	Normal math.Vec3 // unit normal from the volume toward the body
	Depth  float32   // penetration depth
}

// Contact is one segment-level notification delivered during a step.
// Detail is only populated on the collision channel.
type Contact struct {
	Volume  Handle
	Body    BodyID
	Channel Channel
	Phase   Phase
	Detail  *ContactDetail
}

// VolumeDesc describes a collision volume to register with a World.
// Radius and Height apply to capsules (Height is end to end, caps included);
// Size is the full extent of a box.
type VolumeDesc struct {
	Shape     Shape
	Position  math.Vec3
	Rotation  math.Quat
	Radius    float32
	Height    float32
	Size      math.Vec3
	IsTrigger bool
}

// World owns collision volumes. The baker only needs to add and remove them;
// contact delivery is backend-specific.
type World interface {
	AddVolume(desc VolumeDesc) Handle
	RemoveVolume(h Handle)
}

// ContactListener receives per-step contact notifications. Notifications for
// one step are delivered serially, in a stable order, before the step ends.
type ContactListener interface {
	HandleContact(c Contact)
}
