package sourcemeta

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureHere() Meta {
	return Capture(1)
}

func TestCapture(t *testing.T) {
	m := Capture(0)

	assert.Equal(t, "sourcemeta_test.go", filepath.Base(m.File))
	assert.Positive(t, m.Line)
	assert.Equal(t, "TestCapture", m.Function)
	assert.Equal(t, "github.com/arthur-debert/insightdump/pkg/sourcemeta", m.Package)
	assert.False(t, m.IsZero())
}

func TestCaptureSkip(t *testing.T) {
	m := captureHere()
	assert.Equal(t, "TestCaptureSkip", m.Function)
}

func TestCaptureOutOfRange(t *testing.T) {
	assert.True(t, Capture(1000).IsZero())
}

func TestMetaString(t *testing.T) {
	tests := []struct {
		name     string
		meta     Meta
		expected string
	}{
		{name: "zero", meta: Meta{}, expected: ""},
		{
			name:     "full",
			meta:     Meta{File: "/src/main.go", Line: 12, Function: "main"},
			expected: "File: /src/main.go\nLine: 12\nFunction: main\n",
		},
		{name: "file only", meta: Meta{File: "a.go"}, expected: "File: a.go\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.meta.String())
		})
	}
}

func TestSplitFuncName(t *testing.T) {
	tests := []struct {
		input string
		pkg   string
		fn    string
	}{
		{"github.com/a/b/pkg.(*T).Method", "github.com/a/b/pkg", "(*T).Method"},
		{"main.main", "main", "main"},
		{"github.com/a/b.v2/pkg.Func.func1", "github.com/a/b.v2/pkg", "Func.func1"},
		{"nodot", "", "nodot"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			pkg, fn := splitFuncName(tt.input)
			assert.Equal(t, tt.pkg, pkg)
			assert.Equal(t, tt.fn, fn)
		})
	}
}
