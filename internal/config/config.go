// Package config loads the wireframe renderer settings from a JSON file and
// command-line overrides.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/dye/primitive"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid setting")

// Output formats.
const (
	FormatWebP = "webp"
	FormatTGA  = "tga"
)

// Defaults applied by Resolve to unset fields.
const (
	DefaultSize   = 256
	DefaultAngle  = 30.0
	DefaultFormat = FormatWebP
	DefaultMethod = "standard"
	DefaultOutput = "wireframe"
	DefaultStroke = 1.5

	maxSize = 8192
)

// Config holds all configurable render settings.
type Config struct {
	// Output
	Output string `json:"output"`
	Format string `json:"format"`

	// Render settings
	Size   int     `json:"size"`
	Angle  float64 `json:"angle_deg"`
	Method string  `json:"method"`
	Stroke float64 `json:"stroke"`
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Output string
	Format string
	Size   int
	Angle  float64
	Method string
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies CLI overrides, then fills any empty field with its default.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Size > 0 {
		c.Size = flags.Size
	}
	if flags.Angle != 0 {
		c.Angle = flags.Angle
	}
	if flags.Method != "" {
		c.Method = flags.Method
	}

	c.Format = strings.ToLower(c.Format)
	if c.Format == "" {
		// Infer from the output extension before falling back.
		c.Format = strings.TrimPrefix(strings.ToLower(filepath.Ext(c.Output)), ".")
		if c.Format == "" {
			c.Format = DefaultFormat
		}
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if filepath.Ext(c.Output) == "" {
		c.Output += "." + c.Format
	}
	if c.Size == 0 {
		c.Size = DefaultSize
	}
	if c.Angle == 0 {
		c.Angle = DefaultAngle
	}
	if c.Method == "" {
		c.Method = DefaultMethod
	}
	if c.Stroke == 0 {
		c.Stroke = DefaultStroke
	}
}

// Validate reports the first unusable setting, wrapping ErrInvalid.
func (c Config) Validate() error {
	switch {
	case c.Format != FormatWebP && c.Format != FormatTGA:
		return fmt.Errorf("%w: format %q (want %s or %s)", ErrInvalid, c.Format, FormatWebP, FormatTGA)
	case c.Size <= 0 || c.Size > maxSize:
		return fmt.Errorf("%w: size %d (want 1..%d)", ErrInvalid, c.Size, maxSize)
	case c.Stroke <= 0:
		return fmt.Errorf("%w: stroke %g (want > 0)", ErrInvalid, c.Stroke)
	}
	if _, err := c.RenderMethod(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// RenderMethod parses the configured method name.
func (c Config) RenderMethod() (primitive.RenderMethod, error) {
	return primitive.ParseRenderMethod(c.Method)
}
