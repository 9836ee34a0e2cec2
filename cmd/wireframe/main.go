// SPDX-License-Identifier: MIT

// Command wireframe renders a spinning unit cube as a wireframe image.
//
// Usage:
//
//	wireframe [-config file.json] [-out cube.webp] [-format webp|tga]
//	          [-size 256] [-angle 30] [-method standard]
//
// Flags override the config file; unset values fall back to defaults.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/katalvlaran/dye/internal/config"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	out := flag.String("out", "", "Output image path (default: wireframe.<format>)")
	format := flag.String("format", "", "Output format: webp or tga (default: from -out, else webp)")
	size := flag.Int("size", 0, "Image width and height in pixels (default: 256)")
	angle := flag.Float64("angle", 0, "Cube rotation in degrees (default: 30)")
	method := flag.String("method", "", "Render method (default: standard)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			logger.Error("load config", "err", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		Output: *out,
		Format: *format,
		Size:   *size,
		Angle:  *angle,
		Method: *method,
	})
	if err := cfg.Validate(); err != nil {
		logger.Error("config", "err", err)
		os.Exit(1)
	}

	if err := renderFile(cfg); err != nil {
		logger.Error("render", "file", cfg.Output, "err", err)
		os.Exit(1)
	}
	logger.Info("image written",
		"file", cfg.Output,
		"format", cfg.Format,
		"size", cfg.Size,
		"angle", cfg.Angle,
		"method", cfg.Method,
	)
}
