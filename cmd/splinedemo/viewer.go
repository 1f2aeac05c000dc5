package main

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/splinecollider/internal/config"
	"github.com/Faultbox/splinecollider/internal/sim"
	"github.com/Faultbox/splinecollider/pkg/math"
)

func init() {
	// SDL event handling must stay on the main thread
	runtime.LockOSThread()
}

// curveSamples is the polyline resolution used to draw the curve.
const curveSamples = 128

// Viewer draws a top-down XZ projection of the scene with SDL2's 2D renderer:
// the curve, the baked segment volumes, and the probes colored by contact
// state.
type Viewer struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	width    int32
	height   int32
	scale    float32
}

// newViewer initializes SDL2 and opens the window.
func newViewer(cfg config.ViewerConfig) (*Viewer, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	window, err := sdl.CreateWindow(
		"Spline Collider",
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}

	return &Viewer{
		window:   window,
		renderer: renderer,
		width:    int32(cfg.Width),
		height:   int32(cfg.Height),
		scale:    cfg.Scale,
	}, nil
}

// Close destroys the window and cleans up SDL2.
func (v *Viewer) Close() {
	if v.renderer != nil {
		v.renderer.Destroy()
	}
	if v.window != nil {
		v.window.Destroy()
	}
	sdl.Quit()
}

// Run steps the scene at a fixed rate and redraws until quit.
func (v *Viewer) Run(scene *sim.Scene) error {
	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
					running = false
				}
			}
		}

		scene.Step(stepDt)

		if err := v.draw(scene); err != nil {
			return err
		}
		sdl.Delay(16)
	}
	return nil
}

func (v *Viewer) draw(scene *sim.Scene) error {
	if err := v.renderer.SetDrawColor(18, 18, 24, 255); err != nil {
		return err
	}
	if err := v.renderer.Clear(); err != nil {
		return err
	}

	v.drawCurve(scene)
	v.drawSegments(scene)
	v.drawProbes(scene)

	v.renderer.Present()
	return nil
}

// toScreen projects a world position onto the screen (XZ plane, centered).
func (v *Viewer) toScreen(p math.Vec3) (int32, int32) {
	x := v.width/2 + int32(p.X*v.scale)
	y := v.height/2 + int32(p.Z*v.scale)
	return x, y
}

func (v *Viewer) drawCurve(scene *sim.Scene) {
	v.renderer.SetDrawColor(90, 90, 110, 255)
	curve := scene.Curve()

	px, py := v.toScreen(curve.PositionAt(0))
	for i := 1; i <= curveSamples; i++ {
		x, y := v.toScreen(curve.PositionAt(float32(i) / curveSamples))
		v.renderer.DrawLine(px, py, x, y)
		px, py = x, y
	}
}

func (v *Viewer) drawSegments(scene *sim.Scene) {
	v.renderer.SetDrawColor(80, 200, 120, 255)

	for _, seg := range scene.Segments() {
		// Endpoints of the volume along its rotated up axis.
		half := seg.Height / 2
		if seg.Size.Y > 0 {
			half = seg.Size.Y / 2
		}
		axis := seg.Rotation.Rotate(math.Vec3{Y: 1}).Scale(half)

		ax, ay := v.toScreen(seg.Position.Sub(axis))
		bx, by := v.toScreen(seg.Position.Add(axis))
		v.renderer.DrawLine(ax, ay, bx, by)

		// Radius markers at both ends.
		r := int32(seg.Radius * v.scale)
		v.renderer.DrawRect(&sdl.Rect{X: ax - r, Y: ay - r, W: 2 * r, H: 2 * r})
		v.renderer.DrawRect(&sdl.Rect{X: bx - r, Y: by - r, W: 2 * r, H: 2 * r})
	}
}

func (v *Viewer) drawProbes(scene *sim.Scene) {
	contacts := scene.Contacts()
	for _, p := range scene.Probes() {
		if contacts.IsInContact(p.Body) {
			v.renderer.SetDrawColor(230, 80, 80, 255)
		} else {
			v.renderer.SetDrawColor(120, 140, 230, 255)
		}

		x, y := v.toScreen(p.Position)
		r := int32(p.Radius * v.scale)
		v.renderer.FillRect(&sdl.Rect{X: x - r, Y: y - r, W: 2 * r, H: 2 * r})
	}
}
