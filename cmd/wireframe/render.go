// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"image"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"

	"github.com/katalvlaran/dye/internal/config"
	"github.com/katalvlaran/dye/internal/raster"
	"github.com/katalvlaran/dye/matrix"
	"github.com/katalvlaran/dye/vector"
)

// Camera setup for the demo scene.
const (
	fovY      = math.Pi / 3
	zNear     = 0.1
	zFar      = 100
	viewDepth = 3
)

// sceneMVP places the unit cube viewDepth units in front of the camera,
// spun by angleDeg about Y and half that about X.
func sceneMVP(angleDeg float64) matrix.Float4x4 {
	rad := angleDeg * math.Pi / 180
	model := raster.RotationY(rad).Mul(raster.RotationX(rad / 2))
	view := raster.Translation(vector.New3[float32](0, 0, -viewDepth))
	proj := raster.Perspective(fovY, 1, zNear, zFar)

	return proj.Mul(view).Mul(model)
}

// render draws the cube for cfg and encodes it to w.
func render(w io.Writer, cfg config.Config) error {
	method, err := cfg.RenderMethod()
	if err != nil {
		return err
	}
	img, err := raster.Render(method, raster.Cube(), sceneMVP(cfg.Angle), cfg.Size,
		raster.WithStroke(cfg.Stroke))
	if err != nil {
		return err
	}

	return encode(w, img, cfg.Format)
}

func encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case config.FormatWebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("webp encode: %w", err)
		}
	case config.FormatTGA:
		if err := tga.Encode(w, img); err != nil {
			return fmt.Errorf("tga encode: %w", err)
		}
	default:
		return fmt.Errorf("%w: format %q", config.ErrInvalid, format)
	}

	return nil
}

// renderFile renders into cfg.Output, creating parent directories.
func renderFile(cfg config.Config) (err error) {
	if dir := filepath.Dir(cfg.Output); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return render(f, cfg)
}
