// Package collider bakes a parametric curve into a chain of discrete
// collision volumes. A bake samples the curve, optionally merges shallow
// bends and subdivides sharp ones, then registers one capsule or box per
// consecutive sample pair with the physics world.
package collider

import (
	"log/slog"

	"github.com/chewxy/math32"

	"github.com/Faultbox/splinecollider/pkg/math"
	"github.com/Faultbox/splinecollider/pkg/physics"
	"github.com/Faultbox/splinecollider/pkg/spline"
)

// minSegmentLength is the chord length under which a sample pair is treated
// as degenerate and gets no volume: there is no direction to align to.
const minSegmentLength = 1e-5

// SamplePoint is one point taken from the curve. T values are strictly
// increasing along the sample sequence.
type SamplePoint struct {
	T        float32
	Position math.Vec3
}

// Segment is one baked collision volume between two consecutive samples.
type Segment struct {
	Shape    physics.Shape
	Position math.Vec3 // chord midpoint
	Rotation math.Quat // takes local +Y to the chord direction
	Radius   float32
	Height   float32   // capsule: chord length + 2*radius
	Size     math.Vec3 // box: (2r, chord length, 2r)
	Volume   physics.Handle
}

// Baker generates and owns one generation of baked segments. A bake fully
// clears the previous generation before producing the next; no mixed
// generations ever exist.
type Baker struct {
	world    physics.World
	samples  []SamplePoint
	segments []Segment
	baked    bool
}

// NewBaker creates a baker registering volumes with the given world.
func NewBaker(world physics.World) *Baker {
	return &Baker{world: world}
}

// Bake samples the curve with the given config and registers one volume per
// consecutive sample pair. It returns the new segment set.
func (b *Baker) Bake(curve spline.Curve, cfg Config) []Segment {
	b.Clear()
	cfg.Clamp()

	n := resolveCount(curve, cfg)
	b.samples = sampleUniform(curve, n)

	if cfg.MergeShallow {
		b.samples = mergeShallow(b.samples, cfg.MinBendAngle)
	}
	if cfg.SubdivideSharp {
		b.samples = subdivideSharp(curve, b.samples, cfg.MinBendAngle, maxSplitSpan(n, cfg.MaxSubdivisionDepth))
	}

	b.segments = b.emit(cfg)
	b.baked = true

	slog.Debug("baked curve collider",
		"shape", cfg.Shape.String(),
		"requested", n,
		"samples", len(b.samples),
		"segments", len(b.segments),
	)
	return b.Segments()
}

// Clear destroys every baked volume and empties the caches. Safe to call
// when nothing is baked.
func (b *Baker) Clear() {
	for _, s := range b.segments {
		b.world.RemoveVolume(s.Volume)
	}
	b.segments = nil
	b.samples = nil
	b.baked = false
}

// IsBaked reports whether a baked generation exists.
func (b *Baker) IsBaked() bool {
	return b.baked
}

// Segments returns a copy of the current baked set.
func (b *Baker) Segments() []Segment {
	return append([]Segment(nil), b.segments...)
}

// Samples returns a copy of the post-processed sample sequence.
func (b *Baker) Samples() []SamplePoint {
	return append([]SamplePoint(nil), b.samples...)
}

// resolveCount returns the pre-subdivision segment count.
func resolveCount(curve spline.Curve, cfg Config) int {
	if cfg.Mode == SampleByDistance {
		n := int(math32.Ceil(curve.Length() / cfg.SegmentSpacing))
		if n < 1 {
			n = 1
		}
		return n
	}
	return cfg.SegmentCount
}

// sampleUniform takes n+1 samples at parameter-uniform spacing.
func sampleUniform(curve spline.Curve, n int) []SamplePoint {
	pts := make([]SamplePoint, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float32(i) / float32(n)
		pts = append(pts, SamplePoint{T: t, Position: curve.PositionAt(t)})
	}
	return pts
}

// bendAngle returns how sharply the path turns at curr, in degrees:
// 0 means the three points are collinear, 180 a full reversal.
func bendAngle(prev, curr, next math.Vec3) float32 {
	a := prev.Sub(curr)
	c := next.Sub(curr)
	la := a.Length()
	lc := c.Length()
	if la == 0 || lc == 0 {
		return 0
	}
	cos := a.Dot(c) / (la * lc)
	if cos > 1 {
		cos = 1
	}
	if cos < -1 {
		cos = -1
	}
	return 180 - math32.Acos(cos)*180/math32.Pi
}

// mergeShallow deletes interior points whose bend is at or below minBend.
// This is a single forward sweep with index hold: after a deletion the point
// that slides into the slot is tested against its new neighbors before the
// sweep advances. It is deliberately not an iterate-to-fixed-point pass.
func mergeShallow(pts []SamplePoint, minBend float32) []SamplePoint {
	i := 1
	for i < len(pts)-1 {
		bend := bendAngle(pts[i-1].Position, pts[i].Position, pts[i+1].Position)
		if bend <= minBend {
			pts = append(pts[:i], pts[i+1:]...)
			continue
		}
		i++
	}
	return pts
}

// maxSplitSpan returns the parameter span below which pairs are never split.
func maxSplitSpan(n, depth int) float32 {
	return (1 / float32(n)) / float32(uint(1)<<uint(depth))
}

// subdivideSharp inserts curve midpoints into pairs that bend sharper than
// minBend, sweeping left to right. An inserted midpoint becomes the left end
// of the next examined pair, so a sharp region keeps splitting until the
// span cutoff stops it; the cutoff is the only recursion limit.
func subdivideSharp(curve spline.Curve, pts []SamplePoint, minBend, maxSpan float32) []SamplePoint {
	i := 0
	for i < len(pts)-1 {
		span := pts[i+1].T - pts[i].T
		if span > maxSpan {
			mid := (pts[i].T + pts[i+1].T) / 2
			pos := curve.PositionAt(mid)
			if bendAngle(pts[i].Position, pos, pts[i+1].Position) > minBend {
				pts = append(pts, SamplePoint{})
				copy(pts[i+2:], pts[i+1:])
				pts[i+1] = SamplePoint{T: mid, Position: pos}
			}
		}
		i++
	}
	return pts
}

// emit registers one volume per consecutive sample pair. Degenerate pairs
// (zero-length chord) are skipped so rotation alignment never sees a zero
// direction.
func (b *Baker) emit(cfg Config) []Segment {
	if len(b.samples) < 2 {
		return nil
	}

	segs := make([]Segment, 0, len(b.samples)-1)
	for i := 0; i+1 < len(b.samples); i++ {
		start := b.samples[i].Position
		end := b.samples[i+1].Position
		dir := end.Sub(start)
		length := dir.Length()
		if length < minSegmentLength {
			continue
		}

		seg := Segment{
			Shape:    cfg.Shape,
			Position: start.Add(end).Scale(0.5),
			Rotation: math.QuatFromTo(math.Vec3{Y: 1}, dir.Scale(1/length)),
			Radius:   cfg.Radius,
		}
		switch cfg.Shape {
		case physics.ShapeCapsule:
			seg.Height = length + 2*cfg.Radius
		case physics.ShapeBox:
			seg.Size = math.Vec3{X: 2 * cfg.Radius, Y: length, Z: 2 * cfg.Radius}
		}

		seg.Volume = b.world.AddVolume(physics.VolumeDesc{
			Shape:     seg.Shape,
			Position:  seg.Position,
			Rotation:  seg.Rotation,
			Radius:    seg.Radius,
			Height:    seg.Height,
			Size:      seg.Size,
			IsTrigger: cfg.IsTrigger,
		})
		segs = append(segs, seg)
	}
	return segs
}
