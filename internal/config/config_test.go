package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dye/internal/config"
	"github.com/katalvlaran/dye/primitive"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_ReadsFields(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `{"output":"out/cube.tga","size":128,"angle_deg":45,"method":"standard","stroke":2}`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.Config{
		Output: "out/cube.tga",
		Size:   128,
		Angle:  45,
		Method: "standard",
		Stroke: 2,
	}, cfg)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeConfig(t, `{"size":`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "config: parse")
}

func TestResolve_Defaults(t *testing.T) {
	t.Parallel()

	var cfg config.Config
	cfg.Resolve(config.Flags{})
	require.Equal(t, config.Config{
		Output: "wireframe.webp",
		Format: config.FormatWebP,
		Size:   config.DefaultSize,
		Angle:  config.DefaultAngle,
		Method: config.DefaultMethod,
		Stroke: config.DefaultStroke,
	}, cfg)
	require.NoError(t, cfg.Validate())

	m, err := cfg.RenderMethod()
	require.NoError(t, err)
	require.Equal(t, primitive.Standard, m)
}

func TestResolve_FlagsOverrideFile(t *testing.T) {
	t.Parallel()

	cfg := config.Config{Output: "a.webp", Size: 64, Angle: 10, Method: "ray-tracing"}
	cfg.Resolve(config.Flags{Output: "b", Format: "TGA", Size: 32, Method: "standard"})

	require.Equal(t, "b.tga", cfg.Output)
	require.Equal(t, config.FormatTGA, cfg.Format)
	require.Equal(t, 32, cfg.Size)
	require.Equal(t, 10.0, cfg.Angle, "unset flag keeps file value")
	require.Equal(t, "standard", cfg.Method)
}

func TestResolve_FormatFromExtension(t *testing.T) {
	t.Parallel()

	cfg := config.Config{Output: "cube.tga"}
	cfg.Resolve(config.Flags{})
	require.Equal(t, config.FormatTGA, cfg.Format)
	require.Equal(t, "cube.tga", cfg.Output)
}

func TestValidate_Rejects(t *testing.T) {
	t.Parallel()

	base := config.Config{}
	base.Resolve(config.Flags{})

	cases := map[string]func(*config.Config){
		"format": func(c *config.Config) { c.Format = "png" },
		"size":   func(c *config.Config) { c.Size = -1 },
		"huge":   func(c *config.Config) { c.Size = 1 << 20 },
		"stroke": func(c *config.Config) { c.Stroke = -2 },
		"method": func(c *config.Config) { c.Method = "phong" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			c := base
			mutate(&c)
			err := c.Validate()
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	c := base
	c.Method = "phong"
	require.ErrorIs(t, c.Validate(), primitive.ErrUnknownRenderMethod)
}
