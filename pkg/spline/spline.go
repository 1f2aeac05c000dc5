// Package spline provides parametric 3D curve evaluators used as input to
// the collider baker.
package spline

import (
	"github.com/Faultbox/splinecollider/pkg/math"
)

// Curve is a parametric 3D curve over t in [0, 1]. Implementations must be
// deterministic for a fixed control-point set; t outside [0, 1] is clamped.
type Curve interface {
	// PositionAt returns the world-space position at parameter t.
	PositionAt(t float32) math.Vec3
	// Length returns the total arc length of the curve.
	Length() float32
}

// Polyline is a piecewise-linear curve through a sequence of points.
// The parameter is proportional to arc length.
type Polyline struct {
	points  []math.Vec3
	cumLens []float32 // cumulative length up to each point
	total   float32
}

// NewPolyline creates a polyline through the given points. Fewer than two
// points yields a degenerate zero-length curve that evaluates to the single
// point (or the origin when empty).
func NewPolyline(points ...math.Vec3) *Polyline {
	p := &Polyline{
		points:  append([]math.Vec3(nil), points...),
		cumLens: make([]float32, len(points)),
	}
	for i := 1; i < len(p.points); i++ {
		p.total += p.points[i-1].Distance(p.points[i])
		p.cumLens[i] = p.total
	}
	return p
}

// PositionAt returns the point at arc-length fraction t.
func (p *Polyline) PositionAt(t float32) math.Vec3 {
	if len(p.points) == 0 {
		return math.Vec3{}
	}
	if len(p.points) == 1 || p.total == 0 {
		return p.points[0]
	}
	t = clamp01(t)
	target := t * p.total

	// Find the segment containing the target length.
	i := 1
	for i < len(p.cumLens)-1 && p.cumLens[i] < target {
		i++
	}
	segStart := p.cumLens[i-1]
	segLen := p.cumLens[i] - segStart
	if segLen == 0 {
		return p.points[i]
	}
	u := (target - segStart) / segLen
	return p.points[i-1].Lerp(p.points[i], u)
}

// Length returns the total arc length.
func (p *Polyline) Length() float32 {
	return p.total
}

func clamp01(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
