package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dye/internal/config"
	"github.com/katalvlaran/dye/vector"
)

func resolved(flags config.Flags) config.Config {
	var cfg config.Config
	cfg.Resolve(flags)

	return cfg
}

func TestRender_WebP(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cfg := resolved(config.Flags{Size: 48})
	require.NoError(t, render(&buf, cfg))

	img, err := nativewebp.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, 48, img.Bounds().Dx())
	require.Equal(t, 48, img.Bounds().Dy())
}

func TestRender_TGA(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cfg := resolved(config.Flags{Format: config.FormatTGA, Size: 40, Angle: 60})
	require.NoError(t, render(&buf, cfg))

	img, err := tga.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, 40, img.Bounds().Dx())
}

func TestRender_UnsupportedMethod(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cfg := resolved(config.Flags{Method: "ray-marching"})
	require.Error(t, render(&buf, cfg))
	require.Zero(t, buf.Len())
}

func TestEncode_UnknownFormat(t *testing.T) {
	t.Parallel()

	err := encode(&bytes.Buffer{}, nil, "png")
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestRenderFile_CreatesDirs(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "nested", "cube")
	cfg := resolved(config.Flags{Output: out, Size: 16})
	require.NoError(t, renderFile(cfg))

	info, err := os.Stat(out + ".webp")
	require.NoError(t, err)
	require.Positive(t, info.Size())
}

func TestSceneMVP_CentresCube(t *testing.T) {
	t.Parallel()

	// The cube centre projects to the image centre at every angle.
	for _, deg := range []float64{0, 30, 90, 200} {
		c := sceneMVP(deg).MulVec(vector.New4[float32](0, 0, 0, 1))
		ndc := c.XY().DivScalar(c.W())
		require.True(t, ndc.ApproxEqual(vector.Float2{}), "angle %v: %v", deg, ndc)
		require.InDelta(t, viewDepth, c.W(), 1e-5)
	}
}
