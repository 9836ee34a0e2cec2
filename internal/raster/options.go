package raster

import (
	"image/color"
	"math"
)

// Default rendering parameters.
const (
	DefaultStroke = 1.5
	DefaultNear   = 0.1
)

var (
	DefaultInk        = color.RGBA{R: 0x20, G: 0xd0, B: 0x90, A: 0xff}
	DefaultBackground = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff}
)

// Option configures a Render call.
type Option func(*Options)

// Options holds resolved rendering parameters.
type Options struct {
	stroke     float32
	near       float32
	ink        color.Color
	background color.Color
}

// WithStroke sets the line width in pixels.
// Panics if w is not a positive finite number.
func WithStroke(w float64) Option {
	if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		panic("raster: WithStroke: width must be positive and finite")
	}

	return func(o *Options) { o.stroke = float32(w) }
}

// WithNear sets the clip-space w below which an edge endpoint counts as
// behind the camera and the edge is skipped.
// Panics if w is not a positive finite number.
func WithNear(w float64) Option {
	if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		panic("raster: WithNear: plane must be positive and finite")
	}

	return func(o *Options) { o.near = float32(w) }
}

// WithInk sets the line color. Panics on nil.
func WithInk(c color.Color) Option {
	if c == nil {
		panic("raster: WithInk: nil color")
	}

	return func(o *Options) { o.ink = c }
}

// WithBackground sets the fill color. Panics on nil.
func WithBackground(c color.Color) Option {
	if c == nil {
		panic("raster: WithBackground: nil color")
	}

	return func(o *Options) { o.background = c }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		stroke:     DefaultStroke,
		near:       DefaultNear,
		ink:        DefaultInk,
		background: DefaultBackground,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
