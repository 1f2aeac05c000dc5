package sim

import (
	"testing"

	"github.com/Faultbox/splinecollider/internal/config"
	"github.com/Faultbox/splinecollider/pkg/contact"
)

// testConfig is a straight path along X with a single probe oscillating
// across it on Z.
func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Path = config.PathConfig{
		Kind:   "polyline",
		Points: [][3]float32{{-5, 0, 0}, {5, 0, 0}},
	}
	cfg.Collider = config.ColliderConfig{
		Mode:         "count",
		SegmentCount: 4,
		Shape:        "capsule",
		Radius:       0.5,
	}
	cfg.Bodies = []config.BodyConfig{
		{Start: [3]float32{0, 0, 4}, Radius: 0.5, Amplitude: 4, Period: 4},
	}
	return cfg
}

func TestSceneContactEpisode(t *testing.T) {
	s, err := New(testConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	enters, exits := 0, 0
	s.Contacts().CollisionEnter.Subscribe(func(contact.Event) { enters++ })
	s.Contacts().CollisionExit.Subscribe(func(contact.Event) { exits++ })

	probe := s.Probes()[0]
	touched := false

	// One full oscillation: the probe dips to z=0, crosses the path, and
	// swings back out.
	for i := 0; i < 40; i++ {
		s.Step(0.1)
		if s.Contacts().IsInContact(probe.Body) {
			touched = true
			if !s.Contacts().IsColliding(probe.Body) {
				t.Error("contact on non-trigger path must be a collision")
			}
		}
	}

	if !touched {
		t.Fatal("probe never touched the path during a full oscillation")
	}
	if enters != 1 {
		t.Errorf("enter fired %d times, want 1", enters)
	}
	if exits != 1 {
		t.Errorf("exit fired %d times, want 1", exits)
	}
	if s.Contacts().IsInContact(probe.Body) {
		t.Error("probe still in contact after swinging away")
	}
}

func TestSceneTriggerChannel(t *testing.T) {
	cfg := testConfig()
	cfg.Collider.Trigger = true

	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	probe := s.Probes()[0]
	overlapped := false
	for i := 0; i < 40; i++ {
		s.Step(0.1)
		if s.Contacts().IsOverlapping(probe.Body) {
			overlapped = true
			if s.Contacts().IsColliding(probe.Body) {
				t.Error("trigger-mode path reported a physical collision")
			}
		}
	}
	if !overlapped {
		t.Fatal("probe never overlapped the trigger path")
	}
}

func TestSceneRebake(t *testing.T) {
	cfg := testConfig()
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := len(s.Segments()); got != 4 {
		t.Fatalf("initial bake has %d segments, want 4", got)
	}

	bake := cfg.Collider.BakeConfig()
	bake.SegmentCount = 2
	s.Rebake(bake)

	if got := len(s.Segments()); got != 2 {
		t.Errorf("rebake has %d segments, want 2", got)
	}
	// No stale contact state survives a rebake.
	if s.Contacts().IsInContact(s.Probes()[0].Body) {
		t.Error("contact state survived rebake")
	}
}

func TestSceneRejectsBadPath(t *testing.T) {
	cfg := testConfig()
	cfg.Path.Kind = "bezier"
	if _, err := New(cfg); err == nil {
		t.Error("expected error for unknown path kind")
	}

	cfg = testConfig()
	cfg.Path.Points = [][3]float32{{0, 0, 0}}
	if _, err := New(cfg); err == nil {
		t.Error("expected error for single-point path")
	}
}
