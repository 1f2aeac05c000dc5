package spline

import (
	"github.com/Faultbox/splinecollider/pkg/math"
)

// lengthSamplesPerSpan is the chord count used to estimate arc length.
const lengthSamplesPerSpan = 32

// CatmullRom is a uniform Catmull-Rom spline interpolating its control
// points. End tangents are derived by clamping the neighbor lookup, so the
// curve passes through the first and last point. Arc length is estimated by
// dense chord sampling at construction and cached.
type CatmullRom struct {
	points []math.Vec3
	length float32
}

// NewCatmullRom creates a spline through the given control points.
func NewCatmullRom(points ...math.Vec3) *CatmullRom {
	c := &CatmullRom{points: append([]math.Vec3(nil), points...)}
	c.length = c.measure()
	return c
}

// PositionAt evaluates the spline at parameter t. The parameter is uniform
// over control-point spans, not over arc length.
func (c *CatmullRom) PositionAt(t float32) math.Vec3 {
	n := len(c.points)
	if n == 0 {
		return math.Vec3{}
	}
	if n == 1 {
		return c.points[0]
	}
	t = clamp01(t)

	ft := t * float32(n-1)
	i := int(ft)
	if i > n-2 {
		i = n - 2
	}
	u := ft - float32(i)

	p0 := c.point(i - 1)
	p1 := c.points[i]
	p2 := c.points[i+1]
	p3 := c.point(i + 2)

	u2 := u * u
	u3 := u2 * u

	// 0.5 * (2*P1 + (P2-P0)*u + (2*P0-5*P1+4*P2-P3)*u^2 + (-P0+3*P1-3*P2+P3)*u^3)
	result := p1.Scale(2)
	result = result.Add(p2.Sub(p0).Scale(u))
	result = result.Add(p0.Scale(2).Sub(p1.Scale(5)).Add(p2.Scale(4)).Sub(p3).Scale(u2))
	result = result.Add(p1.Scale(3).Sub(p0).Sub(p2.Scale(3)).Add(p3).Scale(u3))
	return result.Scale(0.5)
}

// Length returns the cached arc-length estimate.
func (c *CatmullRom) Length() float32 {
	return c.length
}

// point returns the control point at i with the index clamped to valid range.
func (c *CatmullRom) point(i int) math.Vec3 {
	if i < 0 {
		i = 0
	}
	if i > len(c.points)-1 {
		i = len(c.points) - 1
	}
	return c.points[i]
}

func (c *CatmullRom) measure() float32 {
	if len(c.points) < 2 {
		return 0
	}
	samples := lengthSamplesPerSpan * (len(c.points) - 1)
	var total float32
	prev := c.PositionAt(0)
	for i := 1; i <= samples; i++ {
		curr := c.PositionAt(float32(i) / float32(samples))
		total += prev.Distance(curr)
		prev = curr
	}
	return total
}
