package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/splinecollider/pkg/collider"
	"github.com/Faultbox/splinecollider/pkg/physics"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Viewer.Width != 1024 {
		t.Errorf("expected width 1024, got %d", cfg.Viewer.Width)
	}
	if cfg.Path.Kind != "catmullrom" {
		t.Errorf("expected catmullrom path, got %s", cfg.Path.Kind)
	}
	if len(cfg.Path.Points) < 2 {
		t.Errorf("expected at least 2 path points, got %d", len(cfg.Path.Points))
	}
	if cfg.Collider.Shape != "capsule" {
		t.Errorf("expected capsule shape, got %s", cfg.Collider.Shape)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
viewer:
  width: 640
  height: 480

collider:
  mode: distance
  segment_spacing: 1.5
  shape: box
  radius: 0.25
  trigger: true

logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if cfg.Viewer.Width != 640 {
		t.Errorf("expected width 640, got %d", cfg.Viewer.Width)
	}
	if cfg.Collider.Mode != "distance" {
		t.Errorf("expected distance mode, got %s", cfg.Collider.Mode)
	}
	if cfg.Collider.Radius != 0.25 {
		t.Errorf("expected radius 0.25, got %v", cfg.Collider.Radius)
	}
	if !cfg.Collider.Trigger {
		t.Error("expected trigger to be true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}

	// Untouched sections keep their defaults.
	if cfg.Path.Kind != "catmullrom" {
		t.Errorf("path kind lost its default: %s", cfg.Path.Kind)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SPLINECOLLIDER_COLLIDER_SHAPE", "box")
	t.Setenv("SPLINECOLLIDER_LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Collider.Shape != "box" {
		t.Errorf("env override lost: shape = %s, want box", cfg.Collider.Shape)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("env override lost: level = %s, want warn", cfg.Logging.Level)
	}
}

func TestBakeConfigMapping(t *testing.T) {
	c := ColliderConfig{
		Mode:                "distance",
		SegmentCount:        4,
		SegmentSpacing:      2,
		Shape:               "box",
		Radius:              0.5,
		Trigger:             true,
		MergeShallow:        true,
		MinBendAngle:        12,
		MaxSubdivisionDepth: 2,
	}
	got := c.BakeConfig()

	if got.Mode != collider.SampleByDistance {
		t.Errorf("expected distance mode, got %v", got.Mode)
	}
	if got.Shape != physics.ShapeBox {
		t.Errorf("expected box shape, got %v", got.Shape)
	}
	if !got.IsTrigger {
		t.Error("trigger flag lost in mapping")
	}
	if got.MinBendAngle != 12 {
		t.Errorf("MinBendAngle = %v, want 12", got.MinBendAngle)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Viewer.Width = 800
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}
	if loaded.Viewer.Width != 800 {
		t.Errorf("round trip lost width: got %d, want 800", loaded.Viewer.Width)
	}
}
