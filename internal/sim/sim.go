// Package sim wires the curve, baker, physics world, and contact aggregator
// into a steppable demo scene.
package sim

import (
	"fmt"
	"log/slog"

	"github.com/chewxy/math32"

	"github.com/Faultbox/splinecollider/internal/config"
	"github.com/Faultbox/splinecollider/pkg/collider"
	"github.com/Faultbox/splinecollider/pkg/contact"
	"github.com/Faultbox/splinecollider/pkg/math"
	"github.com/Faultbox/splinecollider/pkg/physics"
	"github.com/Faultbox/splinecollider/pkg/spline"
)

// Probe is one sphere body oscillating across the path.
type Probe struct {
	Body     physics.BodyID
	Position math.Vec3
	Radius   float32

	start     math.Vec3
	amplitude float32
	period    float32
}

// Scene owns one baked path collider and its probe bodies.
type Scene struct {
	curve    spline.Curve
	world    *physics.SimpleWorld
	baker    *collider.Baker
	contacts *contact.Aggregator
	probes   []*Probe
	bakeCfg  collider.Config
	elapsed  float32
}

// New builds the curve from config, bakes the collider, and spawns probes.
func New(cfg *config.Config) (*Scene, error) {
	curve, err := buildCurve(cfg.Path)
	if err != nil {
		return nil, err
	}

	s := &Scene{
		curve:    curve,
		world:    physics.NewSimpleWorld(),
		contacts: contact.NewAggregator(),
		bakeCfg:  cfg.Collider.BakeConfig(),
	}
	s.baker = collider.NewBaker(s.world)
	s.world.SetListener(s.contacts)
	s.subscribeLogs()

	segs := s.baker.Bake(curve, s.bakeCfg)
	slog.Info("baked path collider",
		"kind", cfg.Path.Kind,
		"length", curve.Length(),
		"segments", len(segs),
	)

	for _, b := range cfg.Bodies {
		p := &Probe{
			start:     math.Vec3{X: b.Start[0], Y: b.Start[1], Z: b.Start[2]},
			Radius:    b.Radius,
			amplitude: b.Amplitude,
			period:    b.Period,
		}
		if p.Radius <= 0 {
			p.Radius = 0.5
		}
		if p.period <= 0 {
			p.period = 1
		}
		p.Position = p.start
		p.Body = s.world.AddBody(p.Position, p.Radius)
		s.probes = append(s.probes, p)
	}

	return s, nil
}

// Step advances the scene by dt seconds: probes move, the world delivers all
// segment-level notifications for the step, then the unified stay sweep runs.
func (s *Scene) Step(dt float32) {
	s.elapsed += dt

	for _, p := range s.probes {
		offset := p.amplitude * math32.Sin(2*math32.Pi*s.elapsed/p.period)
		p.Position = p.start.Add(math.Vec3{Z: offset})
		s.world.MoveBody(p.Body, p.Position)
	}

	s.world.Step()
	s.contacts.Step()
}

// Rebake regenerates the collider with the given config. Aggregator state is
// dropped first: the old volumes vanish without end notifications.
func (s *Scene) Rebake(cfg collider.Config) {
	s.contacts.Reset()
	s.bakeCfg = cfg
	segs := s.baker.Bake(s.curve, s.bakeCfg)
	slog.Info("rebaked path collider", "segments", len(segs))
}

// Curve returns the scene's curve.
func (s *Scene) Curve() spline.Curve {
	return s.curve
}

// Segments returns the current baked segment set.
func (s *Scene) Segments() []collider.Segment {
	return s.baker.Segments()
}

// Probes returns the scene's probe bodies.
func (s *Scene) Probes() []*Probe {
	return s.probes
}

// Contacts returns the contact aggregator for queries and subscriptions.
func (s *Scene) Contacts() *contact.Aggregator {
	return s.contacts
}

func (s *Scene) subscribeLogs() {
	s.contacts.TriggerEnter.Subscribe(func(e contact.Event) {
		slog.Info("trigger enter", "body", e.Body)
	})
	s.contacts.TriggerExit.Subscribe(func(e contact.Event) {
		slog.Info("trigger exit", "body", e.Body)
	})
	s.contacts.CollisionEnter.Subscribe(func(e contact.Event) {
		if e.Detail != nil {
			slog.Info("collision enter", "body", e.Body, "depth", e.Detail.Depth)
			return
		}
		slog.Info("collision enter", "body", e.Body)
	})
	s.contacts.CollisionExit.Subscribe(func(e contact.Event) {
		slog.Info("collision exit", "body", e.Body)
	})
	s.contacts.CollisionStay.Subscribe(func(e contact.Event) {
		slog.Debug("collision stay", "body", e.Body)
	})
	s.contacts.TriggerStay.Subscribe(func(e contact.Event) {
		slog.Debug("trigger stay", "body", e.Body)
	})
}

func buildCurve(p config.PathConfig) (spline.Curve, error) {
	pts := p.ControlPoints()
	if len(pts) < 2 {
		return nil, fmt.Errorf("path needs at least 2 points, have %d", len(pts))
	}
	switch p.Kind {
	case "polyline":
		return spline.NewPolyline(pts...), nil
	case "catmullrom", "":
		return spline.NewCatmullRom(pts...), nil
	default:
		return nil, fmt.Errorf("unknown path kind %q", p.Kind)
	}
}
