// Package main runs the spline collider demo: it bakes a collision chain
// along a configured curve, steps probe bodies across it, and either logs
// the unified contact events headlessly or visualizes them in a window.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/splinecollider/internal/config"
	"github.com/Faultbox/splinecollider/internal/logger"
	"github.com/Faultbox/splinecollider/internal/sim"
)

// stepDt is the fixed simulation step in seconds.
const stepDt = float32(1.0 / 60.0)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Spline Collider Demo ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	scene, err := sim.New(cfg)
	if err != nil {
		logger.Error("failed to create scene", zap.Error(err))
		os.Exit(1)
	}

	if cfg.Viewer.Headless {
		runHeadless(scene, cfg.Viewer.Steps)
		logger.Info("headless run finished", zap.Int("steps", cfg.Viewer.Steps))
		return
	}

	v, err := newViewer(cfg.Viewer)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer v.Close()

	if err := v.Run(scene); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("demo closed normally")
}

// runHeadless advances the scene a fixed number of steps. Contact events are
// reported through the scene's log subscriptions.
func runHeadless(scene *sim.Scene, steps int) {
	if steps < 1 {
		steps = 1
	}
	for i := 0; i < steps; i++ {
		scene.Step(stepDt)
	}

	for _, p := range scene.Probes() {
		logger.Info("probe state",
			zap.Uint64("body", uint64(p.Body)),
			zap.Bool("inContact", scene.Contacts().IsInContact(p.Body)),
		)
	}
}
