package app_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/emitgrid/internal/app"
	"github.com/vk/emitgrid/internal/docfile"
	"github.com/vk/emitgrid/internal/hcl_adapter"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      app.Config
		wantErr string
		check   func(t *testing.T, c *app.Config)
	}{
		{
			name: "defaults",
			in:   app.Config{ConfigPaths: []string{"a.hcl"}},
			check: func(t *testing.T, c *app.Config) {
				assert.Equal(t, "text", c.LogFormat)
				assert.Equal(t, "info", c.LogLevel)
			},
		},
		{
			name: "normalises case",
			in:   app.Config{ConfigPaths: []string{"a.hcl"}, LogFormat: "JSON", LogLevel: "Warn"},
			check: func(t *testing.T, c *app.Config) {
				assert.Equal(t, "json", c.LogFormat)
				assert.Equal(t, "warn", c.LogLevel)
			},
		},
		{name: "no paths", in: app.Config{}, wantErr: "at least one configuration path"},
		{name: "bad format", in: app.Config{ConfigPaths: []string{"a"}, LogFormat: "xml"}, wantErr: `invalid log format "xml"`},
		{name: "bad level", in: app.Config{ConfigPaths: []string{"a"}, LogLevel: "trace"}, wantErr: `invalid log level "trace"`},
		{name: "bad port", in: app.Config{ConfigPaths: []string{"a"}, HealthcheckPort: -1}, wantErr: "invalid port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := app.NewConfig(tt.in)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoaderFor(t *testing.T) {
	t.Parallel()

	assert.IsType(t, &docfile.YAMLLoader{}, app.LoaderFor("x.yaml"))
	assert.IsType(t, &docfile.YAMLLoader{}, app.LoaderFor("x.YML"))
	assert.IsType(t, &docfile.TOMLLoader{}, app.LoaderFor("x.toml"))
	assert.IsType(t, &hcl_adapter.Loader{}, app.LoaderFor("x.hcl"))
	assert.IsType(t, &hcl_adapter.Loader{}, app.LoaderFor("configs"))
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := app.NewLogger("warn", "json", &buf)
	logger.Info("dropped")
	logger.Warn("kept", "key", "k")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, `"msg":"kept"`)
	assert.Contains(t, out, `"app":"emitgrid"`)

	buf.Reset()
	app.NewLogger("bogus", "text", &buf).Debug("hidden")
	assert.Empty(t, buf.String(), "unknown levels fall back to info")
}
