package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/insightdump/pkg/config"
	"github.com/arthur-debert/insightdump/pkg/dumper"
	"github.com/arthur-debert/insightdump/pkg/errors"
	"github.com/arthur-debert/insightdump/pkg/export"
)

// isolate keeps config lookup and log files inside the test directory
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("NO_COLOR", "")
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDumpText(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "dump", "testdata/user.json")
	require.NoError(t, err)

	assert.Contains(t, out, "name: 'Ada'")
	assert.Contains(t, out, "city: 'London'")
	assert.NotContains(t, out, "<span", "text output has no markup")
	assert.NotContains(t, out, "==>", "a single file gets no header")
}

func TestDumpStdin(t *testing.T) {
	isolate(t)

	out, err := run(t, "a: 1\nb: [x, y]\n", "dump", "--input", "yaml", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "a: 1")
	assert.Contains(t, out, "'x'")
}

func TestDumpSeveralFiles(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "dump", "testdata/user.json", "testdata/app.toml")
	require.NoError(t, err)
	assert.Contains(t, out, "==> testdata/user.json <==")
	assert.Contains(t, out, "==> testdata/app.toml <==")
	assert.Contains(t, out, "'demo'")
}

func TestDumpHTML(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "dump", "--format", "html", "testdata/user.json", "testdata/app.toml")
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, "<style>"), "assets are included once")
	assert.Equal(t, 2, strings.Count(out, `<div class="insight-dump-wrapper">`))
	assert.Contains(t, out, "File: testdata/user.json")
}

func TestDumpMaxDepth(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "dump", "--max-depth", "0", "testdata/user.json")
	require.NoError(t, err)
	assert.Contains(t, out, "max depth reached")
	assert.NotContains(t, out, "London")
}

func TestDumpEnvConfig(t *testing.T) {
	isolate(t)
	t.Setenv("INSIGHT_RENDER_MAX_DEPTH", "0")

	out, err := run(t, "", "dump", "testdata/user.json")
	require.NoError(t, err)
	assert.Contains(t, out, "max depth reached")
}

func TestDumpErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.ErrorCode
	}{
		{"missing file", []string{"dump", "testdata/missing.json"}, errors.ErrFileAccess},
		{"unknown input format", []string{"dump", "--input", "ini", "-"}, errors.ErrUnsupportedFormat},
		{"unknown output format", []string{"dump", "--format", "pdf", "testdata/user.json"}, errors.ErrConfigValid},
		{"watch stdin", []string{"dump", "--watch"}, errors.ErrInvalidInput},
		{"missing config", []string{"--config", "testdata/nope.toml", "dump", "testdata/user.json"}, errors.ErrConfigLoad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			_, err := run(t, "", tt.args...)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestServeHandler(t *testing.T) {
	isolate(t)
	cfg := config.Default()
	handler := newServeHandler(cfg, []string{"testdata/user.json"})

	t.Run("index", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		body := rec.Body.String()
		assert.Contains(t, body, `href="/assets/`+dumper.StylesheetName+`"`)
		assert.Contains(t, body, "London")
	})

	t.Run("assets", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/"+dumper.StylesheetName, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, dumper.Stylesheet(), rec.Body.String())
	})

	t.Run("unknown path", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("decode failure", func(t *testing.T) {
		broken := newServeHandler(cfg, []string{"testdata/missing.json"})
		rec := httptest.NewRecorder()
		broken.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestServeRejectsStdin(t *testing.T) {
	isolate(t)
	_, err := run(t, "", "serve", "-")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestExport(t *testing.T) {
	isolate(t)
	dir := filepath.Join(t.TempDir(), "site")

	out, err := run(t, "", "export", "--out", dir, "--title", "users", "testdata/user.json")
	require.NoError(t, err)
	assert.Contains(t, out, dir)

	index, err := os.ReadFile(filepath.Join(dir, export.IndexName))
	require.NoError(t, err)
	assert.Contains(t, string(index), "<title>users</title>")
	assert.Contains(t, string(index), "London")
	assert.FileExists(t, filepath.Join(dir, dumper.ScriptName))
}

func TestExportDryRun(t *testing.T) {
	isolate(t)
	dir := filepath.Join(t.TempDir(), "site")

	out, err := run(t, "", "export", "--out", dir, "--dry-run", "testdata/user.json")
	require.NoError(t, err)
	assert.Contains(t, out, export.IndexName)
	assert.NoDirExists(t, dir)
}

func TestVersion(t *testing.T) {
	isolate(t)
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "insight version")
}

func TestMan(t *testing.T) {
	isolate(t)
	out, err := run(t, "", "man")
	require.NoError(t, err)
	assert.Contains(t, out, ".TH \"INSIGHT\"")
}

func TestHelpTopics(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "help", "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "configuration")
	assert.Contains(t, out, "formats")
	assert.Contains(t, out, "--max-depth")

	out, err = run(t, "", "help", "dump")
	require.NoError(t, err)
	assert.Contains(t, out, "--watch")
}
