package export_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/insightdump/pkg/dumper"
	"github.com/arthur-debert/insightdump/pkg/errors"
	"github.com/arthur-debert/insightdump/pkg/export"
)

func docs() []export.Document {
	d := dumper.New(nil, dumper.WithoutAssets())
	return []export.Document{
		{Title: "config.yaml", Body: d.Dump(map[string]int{"a": 1}, dumper.Meta{})},
		{Title: "<b>", Body: d.Dump("x", dumper.Meta{})},
	}
}

func TestPage(t *testing.T) {
	page := export.Page("dumps", docs(), "")

	assert.Contains(t, page, "<title>dumps</title>")
	assert.Contains(t, page, `href="`+dumper.StylesheetName+`"`)
	assert.Contains(t, page, `<script src="`+dumper.ScriptName+`"></script>`)
	assert.Contains(t, page, "<h2>config.yaml</h2>")
	assert.Contains(t, page, "<h2>&lt;b&gt;</h2>")
	assert.Contains(t, page, `<div class="insight-dump-wrapper">`)

	linked := export.Page("dumps", nil, "/assets/")
	assert.Contains(t, linked, `href="/assets/`+dumper.StylesheetName+`"`)
}

func TestBundle(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site")

	result, err := export.Bundle(context.Background(), dir, docs(), export.Options{Title: "dumps"})
	require.NoError(t, err)
	require.Len(t, result.Files, 3)

	for _, f := range result.Files {
		assert.Equal(t, export.StatusWritten, f.Status)
		data, err := os.ReadFile(f.Path)
		require.NoError(t, err)
		assert.Len(t, data, f.Size)
	}

	index, err := os.ReadFile(filepath.Join(dir, export.IndexName))
	require.NoError(t, err)
	assert.Contains(t, string(index), "<h2>config.yaml</h2>")

	css, err := os.ReadFile(filepath.Join(dir, dumper.StylesheetName))
	require.NoError(t, err)
	assert.Equal(t, dumper.Stylesheet(), string(css))
}

func TestBundleExistingFiles(t *testing.T) {
	dir := t.TempDir()
	index := filepath.Join(dir, export.IndexName)
	require.NoError(t, os.WriteFile(index, []byte("old"), 0644))

	_, err := export.Bundle(context.Background(), dir, docs(), export.Options{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrExport))

	data, err := os.ReadFile(index)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data), "nothing is touched without force")

	_, err = export.Bundle(context.Background(), dir, docs(), export.Options{Force: true})
	require.NoError(t, err)

	data, err = os.ReadFile(index)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<!DOCTYPE html>")
}

func TestBundleDryRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site")

	result, err := export.Bundle(context.Background(), dir, docs(), export.Options{DryRun: true})
	require.NoError(t, err)

	for _, f := range result.Files {
		assert.Equal(t, export.StatusSkipped, f.Status)
	}
	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestBundleTargetIsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	_, err := export.Bundle(context.Background(), path, docs(), export.Options{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirCreate))
}
