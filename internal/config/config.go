// Package config handles demo configuration loading and management.
package config

import (
	"github.com/Faultbox/splinecollider/pkg/collider"
	"github.com/Faultbox/splinecollider/pkg/math"
	"github.com/Faultbox/splinecollider/pkg/physics"
)

// Config holds all demo settings.
type Config struct {
	Viewer   ViewerConfig   `yaml:"viewer" envPrefix:"VIEWER_"`
	Path     PathConfig     `yaml:"path"`
	Collider ColliderConfig `yaml:"collider" envPrefix:"COLLIDER_"`
	Bodies   []BodyConfig   `yaml:"bodies"`
	Logging  LoggingConfig  `yaml:"logging" envPrefix:"LOG_"`
}

// ViewerConfig holds window and stepping settings.
type ViewerConfig struct {
	Width    int     `yaml:"width" env:"WIDTH"`
	Height   int     `yaml:"height" env:"HEIGHT"`
	Scale    float32 `yaml:"scale" env:"SCALE"` // world units to pixels
	Headless bool    `yaml:"headless" env:"HEADLESS"`
	Steps    int     `yaml:"steps" env:"STEPS"` // step count in headless mode
}

// PathConfig describes the curve the collider is baked from.
type PathConfig struct {
	Kind   string       `yaml:"kind"` // "polyline" or "catmullrom"
	Points [][3]float32 `yaml:"points"`
}

// ColliderConfig holds the bake tunables. Values are clamped by the collider
// package at bake time, so out-of-range edits are corrected silently.
type ColliderConfig struct {
	Mode                string  `yaml:"mode" env:"MODE"` // "count" or "distance"
	SegmentCount        int     `yaml:"segment_count" env:"SEGMENT_COUNT"`
	SegmentSpacing      float32 `yaml:"segment_spacing" env:"SEGMENT_SPACING"`
	Shape               string  `yaml:"shape" env:"SHAPE"` // "capsule" or "box"
	Radius              float32 `yaml:"radius" env:"RADIUS"`
	Trigger             bool    `yaml:"trigger" env:"TRIGGER"`
	MergeShallow        bool    `yaml:"merge_shallow" env:"MERGE_SHALLOW"`
	SubdivideSharp      bool    `yaml:"subdivide_sharp" env:"SUBDIVIDE_SHARP"`
	MinBendAngle        float32 `yaml:"min_bend_angle" env:"MIN_BEND_ANGLE"`
	MaxSubdivisionDepth int     `yaml:"max_subdivision_depth" env:"MAX_SUBDIVISION_DEPTH"`
}

// BodyConfig describes one probe body oscillating across the path.
type BodyConfig struct {
	Start     [3]float32 `yaml:"start"`
	Radius    float32    `yaml:"radius"`
	Amplitude float32    `yaml:"amplitude"` // oscillation half-width along Z
	Period    float32    `yaml:"period"`    // seconds per full oscillation
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" env:"LEVEL"`
	LogFile string `yaml:"log_file" env:"FILE"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Viewer: ViewerConfig{
			Width:  1024,
			Height: 768,
			Scale:  24,
			Steps:  600,
		},
		Path: PathConfig{
			Kind: "catmullrom",
			Points: [][3]float32{
				{-12, 0, -4},
				{-6, 0, 4},
				{0, 0, -4},
				{6, 0, 4},
				{12, 0, -4},
			},
		},
		Collider: ColliderConfig{
			Mode:                "count",
			SegmentCount:        16,
			SegmentSpacing:      2,
			Shape:               "capsule",
			Radius:              0.5,
			MergeShallow:        true,
			SubdivideSharp:      true,
			MinBendAngle:        5,
			MaxSubdivisionDepth: 3,
		},
		Bodies: []BodyConfig{
			{Start: [3]float32{-6, 0, 0}, Radius: 0.6, Amplitude: 6, Period: 4},
			{Start: [3]float32{6, 0, 0}, Radius: 0.6, Amplitude: 6, Period: 6},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// BakeConfig converts the YAML-facing collider section into the bake config
// consumed by the collider package.
func (c ColliderConfig) BakeConfig() collider.Config {
	cfg := collider.Config{
		SegmentCount:        c.SegmentCount,
		SegmentSpacing:      c.SegmentSpacing,
		Radius:              c.Radius,
		IsTrigger:           c.Trigger,
		MergeShallow:        c.MergeShallow,
		SubdivideSharp:      c.SubdivideSharp,
		MinBendAngle:        c.MinBendAngle,
		MaxSubdivisionDepth: c.MaxSubdivisionDepth,
	}
	if c.Mode == "distance" {
		cfg.Mode = collider.SampleByDistance
	}
	if c.Shape == "box" {
		cfg.Shape = physics.ShapeBox
	}
	return cfg
}

// ControlPoints converts the path point list to vectors.
func (p PathConfig) ControlPoints() []math.Vec3 {
	pts := make([]math.Vec3, len(p.Points))
	for i, v := range p.Points {
		pts[i] = math.Vec3{X: v[0], Y: v[1], Z: v[2]}
	}
	return pts
}
