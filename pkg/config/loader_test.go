package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/insightdump/pkg/config"
	"github.com/arthur-debert/insightdump/pkg/console"
	"github.com/arthur-debert/insightdump/pkg/errors"
	"github.com/arthur-debert/insightdump/pkg/render"
)

// isolate points the user config lookup at an empty directory
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load(config.Options{})
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Render.MaxDepth)
	assert.Equal(t, "  ", cfg.Render.Indent)
	assert.False(t, cfg.Render.EscapeText)
	assert.Equal(t, "auto", cfg.Output.Format)
	assert.True(t, cfg.Output.Inline)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, cfg, config.Default())
}

func TestLoadUserConfigFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "insightdump", config.FileName), `
[render]
max_depth = 3

[output]
format = "html"
`)

	cfg, err := config.Load(config.Options{})
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Render.MaxDepth)
	assert.Equal(t, "html", cfg.Output.Format)
	assert.Equal(t, "  ", cfg.Render.Indent, "unset keys keep their defaults")
}

func TestLoadExplicitPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, path, "[server]\naddr = \":9999\"\nshutdown_timeout = \"250ms\"\n")

	cfg, err := config.Load(config.Options{Path: path})
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, 250*time.Millisecond, cfg.Server.ShutdownTimeout)
}

func TestLoadMissingExplicitPath(t *testing.T) {
	isolate(t)

	_, err := config.Load(config.Options{Path: filepath.Join(t.TempDir(), "nope.toml")})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoadMalformedFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	writeFile(t, path, "[render\nmax_depth = ")

	_, err := config.Load(config.Options{Path: path})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestLoadPrecedence(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "insightdump", config.FileName), "[render]\nmax_depth = 3\nindent = \"\\t\"\n")
	t.Setenv("INSIGHT_RENDER_MAX_DEPTH", "5")
	t.Setenv("INSIGHT_RENDER_ESCAPE_TEXT", "true")

	cfg, err := config.Load(config.Options{
		Overrides: map[string]interface{}{"render.max_depth": 7},
	})
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Render.MaxDepth, "overrides win over env")
	assert.True(t, cfg.Render.EscapeText, "env wins over defaults")
	assert.Equal(t, "\t", cfg.Render.Indent, "file wins over defaults")
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]interface{}
	}{
		{"negative depth", map[string]interface{}{"render.max_depth": -1}},
		{"unknown format", map[string]interface{}{"output.format": "pdf"}},
		{"empty address", map[string]interface{}{"server.addr": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			_, err := config.Load(config.Options{Overrides: tt.overrides})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
		})
	}
}

func TestEngineOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Render.MaxDepth = 2

	engine := render.New(cfg.EngineOptions()...)
	assert.Equal(t, 2, engine.MaxDepth())
}

func TestDumperOptions(t *testing.T) {
	cfg := config.Default()
	assert.Empty(t, cfg.DumperOptions(), "inline assets need no options")

	cfg.Output.Inline = false
	assert.Len(t, cfg.DumperOptions(), 1)

	cfg.Output.AssetBase = "/static"
	assert.Len(t, cfg.DumperOptions(), 1)
}

func TestFormat(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, console.FormatAuto, cfg.Format())

	cfg.Output.Format = "text"
	assert.Equal(t, console.FormatText, cfg.Format())
}

func TestDefaultConfigContent(t *testing.T) {
	content := config.DefaultConfigContent()
	assert.Contains(t, content, "[render]")
	assert.Contains(t, content, "max_depth")
}
