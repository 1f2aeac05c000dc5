package spline

import (
	"testing"

	"github.com/Faultbox/splinecollider/pkg/math"
)

func TestPolylineEndpoints(t *testing.T) {
	p := NewPolyline(
		math.Vec3{X: 0},
		math.Vec3{X: 5},
		math.Vec3{X: 5, Z: 5},
	)

	start := p.PositionAt(0)
	if start != (math.Vec3{X: 0}) {
		t.Errorf("PositionAt(0) = %v, want origin", start)
	}
	end := p.PositionAt(1)
	if end != (math.Vec3{X: 5, Z: 5}) {
		t.Errorf("PositionAt(1) = %v, want {5 0 5}", end)
	}
}

func TestPolylineLength(t *testing.T) {
	p := NewPolyline(math.Vec3{X: 0}, math.Vec3{X: 3}, math.Vec3{X: 3, Y: 4})
	if got := p.Length(); got != 7 {
		t.Errorf("Length() = %v, want 7", got)
	}
}

func TestPolylineMidpoint(t *testing.T) {
	// Two equal-length legs: t=0.5 lands exactly on the corner.
	p := NewPolyline(math.Vec3{X: 0}, math.Vec3{X: 2}, math.Vec3{X: 2, Z: 2})
	got := p.PositionAt(0.5)
	want := math.Vec3{X: 2}
	if got.Distance(want) > 1e-5 {
		t.Errorf("PositionAt(0.5) = %v, want %v", got, want)
	}
}

func TestPolylineClampsParameter(t *testing.T) {
	p := NewPolyline(math.Vec3{X: 0}, math.Vec3{X: 1})
	if got := p.PositionAt(-1); got != (math.Vec3{X: 0}) {
		t.Errorf("PositionAt(-1) = %v, want start", got)
	}
	if got := p.PositionAt(2); got != (math.Vec3{X: 1}) {
		t.Errorf("PositionAt(2) = %v, want end", got)
	}
}

func TestPolylineDegenerate(t *testing.T) {
	single := NewPolyline(math.Vec3{X: 7})
	if single.Length() != 0 {
		t.Errorf("single-point Length() = %v, want 0", single.Length())
	}
	if got := single.PositionAt(0.5); got != (math.Vec3{X: 7}) {
		t.Errorf("single-point PositionAt = %v, want the point", got)
	}

	empty := NewPolyline()
	if got := empty.PositionAt(0.5); got != (math.Vec3{}) {
		t.Errorf("empty PositionAt = %v, want origin", got)
	}
}

func TestCatmullRomInterpolatesControlPoints(t *testing.T) {
	pts := []math.Vec3{
		{X: 0},
		{X: 2, Z: 1},
		{X: 4, Z: -1},
		{X: 6},
	}
	c := NewCatmullRom(pts...)

	n := len(pts)
	for i, want := range pts {
		got := c.PositionAt(float32(i) / float32(n-1))
		if got.Distance(want) > 1e-4 {
			t.Errorf("PositionAt(knot %d) = %v, want %v", i, got, want)
		}
	}
}

func TestCatmullRomLength(t *testing.T) {
	// A straight control polygon gives a straight spline: arc length is the
	// control polygon length.
	c := NewCatmullRom(math.Vec3{X: 0}, math.Vec3{X: 1}, math.Vec3{X: 2}, math.Vec3{X: 3})
	got := c.Length()
	if got < 2.99 || got > 3.01 {
		t.Errorf("Length() = %v, want ~3", got)
	}
}

func TestCatmullRomDegenerate(t *testing.T) {
	c := NewCatmullRom(math.Vec3{X: 1, Y: 2})
	if c.Length() != 0 {
		t.Errorf("single-point Length() = %v, want 0", c.Length())
	}
	if got := c.PositionAt(0.3); got != (math.Vec3{X: 1, Y: 2}) {
		t.Errorf("single-point PositionAt = %v, want the point", got)
	}
}
