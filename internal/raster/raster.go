// Package raster draws Mesh wireframes into RGBA images. Vertices are taken
// through a single model-view-projection matrix, divided by w and mapped to
// pixels; each edge is filled as a thin quad by golang.org/x/image/vector.
package raster

import (
	"image"
	"image/draw"
	"strconv"

	"golang.org/x/image/vector"

	"github.com/katalvlaran/dye/matrix"
	"github.com/katalvlaran/dye/primitive"
	dvec "github.com/katalvlaran/dye/vector"
)

// Render draws m into a fresh size×size image using the standard pipeline.
// Edges with an endpoint behind the near plane are skipped.
func Render(method primitive.RenderMethod, m Mesh, mvp matrix.Float4x4, size int, opts ...Option) (*image.RGBA, error) {
	if method != primitive.Standard {
		return nil, rasterErrorf("Render("+method.String()+")", ErrUnsupportedMethod)
	}
	if size <= 0 {
		return nil, rasterErrorf("Render(size="+strconv.Itoa(size)+")", ErrSize)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(o.background), image.Point{}, draw.Src)

	screen := make([]dvec.Float2, len(m.Vertices))
	visible := make([]bool, len(m.Vertices))
	for i, v := range m.Vertices {
		screen[i], visible[i] = project(mvp, v.Pos, size, o.near)
	}

	z := vector.NewRasterizer(size, size)
	z.DrawOp = draw.Over
	half := o.stroke / 2
	for _, e := range m.Edges {
		if !visible[e[0]] || !visible[e[1]] {
			continue
		}
		addSegment(z, screen[e[0]], screen[e[1]], half)
	}
	z.Draw(dst, dst.Bounds(), image.NewUniform(o.ink), image.Point{})

	return dst, nil
}

// project maps an object-space position to pixel coordinates.
// ok is false when the clip-space w is below near.
func project(mvp matrix.Float4x4, pos dvec.Float3, size int, near float32) (p dvec.Float2, ok bool) {
	clip := mvp.MulVec(pos.Extend(1))
	w := clip.W()
	if w < near {
		return p, false
	}
	ndc := clip.XY().DivScalar(w)
	s := float32(size)

	return dvec.New2((ndc.X()+1)*s/2, (1-ndc.Y())*s/2), true
}

// addSegment adds the quad of half-width half around a→b as a closed path.
func addSegment(z *vector.Rasterizer, a, b dvec.Float2, half float32) {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		d = dvec.New2[float32](1, 0)
		l = 1
	}
	// Unit normal scaled to half the stroke, extended by half along d so
	// corners of adjoining edges overlap.
	n := dvec.New2(-d.Y(), d.X()).Scale(half / l)
	t := d.Scale(half / l)
	a, b = a.Sub(t), b.Add(t)

	p0, p1, p2, p3 := a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)
	z.MoveTo(p0.X(), p0.Y())
	z.LineTo(p1.X(), p1.Y())
	z.LineTo(p2.X(), p2.Y())
	z.LineTo(p3.X(), p3.Y())
	z.ClosePath()
}
