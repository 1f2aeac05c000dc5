package collider

import (
	"github.com/Faultbox/splinecollider/pkg/physics"
)

// SamplingMode selects how the segment count is derived from the curve.
type SamplingMode int

const (
	// SampleByCount uses a fixed number of segments.
	SampleByCount SamplingMode = iota
	// SampleByDistance derives the count from the curve length and a target
	// spacing between samples.
	SampleByDistance
)

// Config holds the bake tunables. All values are user-editable data; Clamp
// corrects out-of-range values silently instead of failing the bake.
type Config struct {
	Mode           SamplingMode
	SegmentCount   int
	SegmentSpacing float32

	Shape     physics.Shape
	Radius    float32
	IsTrigger bool

	MergeShallow        bool
	SubdivideSharp      bool
	MinBendAngle        float32 // degrees; bend at or below merges, above subdivides
	MaxSubdivisionDepth int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Mode:                SampleByCount,
		SegmentCount:        10,
		SegmentSpacing:      1,
		Shape:               physics.ShapeCapsule,
		Radius:              0.5,
		MergeShallow:        true,
		SubdivideSharp:      true,
		MinBendAngle:        5,
		MaxSubdivisionDepth: 3,
	}
}

// Clamp forces every tunable into its valid range.
func (c *Config) Clamp() {
	if c.SegmentCount < 1 {
		c.SegmentCount = 1
	}
	if c.SegmentSpacing <= 0 {
		c.SegmentSpacing = 1
	}
	if c.Radius <= 0 {
		c.Radius = 0.1
	}
	if c.MinBendAngle < 0.5 {
		c.MinBendAngle = 0.5
	}
	if c.MinBendAngle > 179 {
		c.MinBendAngle = 179
	}
	if c.MaxSubdivisionDepth < 1 {
		c.MaxSubdivisionDepth = 1
	}
	if c.MaxSubdivisionDepth > 5 {
		c.MaxSubdivisionDepth = 5
	}
}
