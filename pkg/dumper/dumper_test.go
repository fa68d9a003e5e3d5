package dumper_test

import (
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/insightdump/pkg/dumper"
	"github.com/arthur-debert/insightdump/pkg/render"
	"github.com/arthur-debert/insightdump/pkg/sourcemeta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpWithMeta(t *testing.T) {
	d := dumper.New(nil, dumper.WithAssetBase("Resources/css/"))
	meta := dumper.Meta{
		Source:  sourcemeta.Meta{File: "testFile.go", Line: 123},
		Elapsed: 1200 * time.Microsecond,
	}

	out := d.Dump(map[string]string{"key": "value"}, meta)

	assert.Contains(t, out, `<link rel="stylesheet" type="text/css" href="Resources/css/insight-dumper.css">`)
	assert.Contains(t, out, `<script src="Resources/css/insight-dumper.js"></script>`)
	assert.Contains(t, out, `<div class="insight-dump-wrapper">`)
	assert.Contains(t, out, "File: testFile.go\nLine: 123\nTime: 0.0012 seconds</div>")
	assert.Contains(t, out, "key")
	assert.True(t, strings.HasSuffix(out, "</div>"))
}

func TestDumpWithoutMeta(t *testing.T) {
	out := dumper.New(nil, dumper.WithoutAssets()).Dump("test", dumper.Meta{})

	assert.Equal(t, `<div class="insight-dump-wrapper"><span class="insight-dump-string">test</span></div>`, out)
}

func TestDumpInlinesAssetsByDefault(t *testing.T) {
	out := dumper.New(render.New()).Dump(1, dumper.Meta{})

	assert.True(t, strings.HasPrefix(out, "<style>\n"))
	assert.Contains(t, out, ".insight-dump-array-content-closed")
	assert.Contains(t, out, "<script>\n")
	assert.Contains(t, out, "querySelectorAll('.insight-dump-toggle')")
}

func TestDumpCircularReference(t *testing.T) {
	type ref struct{ Ref *ref }
	a := &ref{}
	a.Ref = &ref{Ref: a}

	out := dumper.New(nil, dumper.WithoutAssets()).Dump(a, dumper.Meta{})
	assert.Contains(t, out, "Ref")
	assert.Contains(t, out, `<span class="insight-dump-object-id">#1</span>`+"\n")
}

func TestDumpLargeData(t *testing.T) {
	large := make([]int, 10000)
	for i := range large {
		large[i] = i + 1
	}

	out := dumper.New(nil, dumper.WithoutAssets()).Dump(large, dumper.Meta{})
	assert.Contains(t, out, "slice(10000):")
	assert.Contains(t, out, `<span class="insight-dump-number">10000</span>`)
}

func TestAssets(t *testing.T) {
	data, err := fs.ReadFile(dumper.Assets(), dumper.StylesheetName)
	require.NoError(t, err)
	assert.Equal(t, dumper.Stylesheet(), string(data))

	data, err = fs.ReadFile(dumper.Assets(), dumper.ScriptName)
	require.NoError(t, err)
	assert.Equal(t, dumper.Script(), string(data))
	assert.Contains(t, dumper.Script(), "insight-dump-array-content-opened")
}
