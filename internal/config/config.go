// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/navcube/internal/navcube/cube"
)

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	NavCube NavCubeConfig `yaml:"navcube"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings of the host window.
type WindowConfig struct {
	Title    string `yaml:"title"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	VSync    bool   `yaml:"vsync"`
	FPSLimit int    `yaml:"fps_limit"`
}

// NavCubeConfig holds the widget settings.
type NavCubeConfig struct {
	Chamfer float32    `yaml:"chamfer"`
	Size    int        `yaml:"size"` // Widget edge in pixels
	Margin  int        `yaml:"margin"`
	Labels  bool       `yaml:"labels"`
	Radius  float32    `yaml:"radius"`
	Home    [3]float32 `yaml:"home"`

	FaceColor    Color `yaml:"face_color"`
	EdgeColor    Color `yaml:"edge_color"`
	CornerColor  Color `yaml:"corner_color"`
	OutlineColor Color `yaml:"outline_color"`
}

// SceneConfig holds the host scene settings.
type SceneConfig struct {
	Background Color      `yaml:"background"`
	ModelColor Color      `yaml:"model_color"`
	CameraPos  [3]float32 `yaml:"camera_position"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	pal := cube.DefaultPalette()
	return &Config{
		Window: WindowConfig{
			Title:    "NavCube Viewer",
			Width:    1280,
			Height:   720,
			VSync:    true,
			FPSLimit: 60,
		},
		NavCube: NavCubeConfig{
			Chamfer:      0.15,
			Size:         160,
			Margin:       8,
			Labels:       true,
			Radius:       2.828427,
			Home:         [3]float32{1, -1, 1},
			FaceColor:    Color(pal.Face),
			EdgeColor:    Color(pal.Edge),
			CornerColor:  Color(pal.Corner),
			OutlineColor: Color(pal.Outline),
		},
		Scene: SceneConfig{
			Background: MustParseColor("#2b2b30"),
			ModelColor: MustParseColor("#c08040"),
			CameraPos:  [3]float32{-5, 5, 5},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Palette returns the widget colors as a cube palette.
func (c NavCubeConfig) Palette() cube.Palette {
	return cube.Palette{
		Face:    c.FaceColor.RGBA(),
		Edge:    c.EdgeColor.RGBA(),
		Corner:  c.CornerColor.RGBA(),
		Outline: c.OutlineColor.RGBA(),
	}
}

// Validate reports every setting out of range.
func (c *Config) Validate() error {
	var errs []error
	if err := cube.ValidateChamfer(c.NavCube.Chamfer); err != nil {
		errs = append(errs, fmt.Errorf("navcube.chamfer: %w", err))
	}
	if c.NavCube.Size <= 0 {
		errs = append(errs, fmt.Errorf("navcube.size: %d must be positive", c.NavCube.Size))
	}
	if c.NavCube.Radius <= 1 {
		errs = append(errs, fmt.Errorf("navcube.radius: %v must exceed 1", c.NavCube.Radius))
	}
	if c.NavCube.Home == ([3]float32{}) {
		errs = append(errs, errors.New("navcube.home: zero direction"))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window: size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.FPSLimit <= 0 {
		errs = append(errs, fmt.Errorf("window.fps_limit: %d must be positive", c.Window.FPSLimit))
	}
	return errors.Join(errs...)
}
