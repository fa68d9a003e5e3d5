// Package dumper assembles rendered values into a self-contained HTML
// fragment: the stylesheet, the collapse script, an optional block telling
// where the dump came from, and the engine output.
package dumper

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/arthur-debert/insightdump/pkg/render"
	"github.com/arthur-debert/insightdump/pkg/sourcemeta"
)

// Asset file names, relative to the asset base URL
const (
	StylesheetName = "insight-dumper.css"
	ScriptName     = "insight-dumper.js"
)

//go:embed assets
var assets embed.FS

// Meta describes the dump itself
type Meta struct {
	Source  sourcemeta.Meta
	Elapsed time.Duration
}

// IsZero reports whether there is nothing to show about the dump
func (m Meta) IsZero() bool {
	return m.Source.IsZero() && m.Elapsed == 0
}

// Option configures a Dumper
type Option func(*Dumper)

// WithAssetBase links the stylesheet and the script from base instead of
// inlining them
func WithAssetBase(base string) Option {
	return func(d *Dumper) {
		d.assetBase = strings.TrimRight(base, "/")
		d.assets = assetsLinked
	}
}

// WithoutAssets leaves the stylesheet and the script out of the output,
// for pages that include them once themselves
func WithoutAssets() Option {
	return func(d *Dumper) {
		d.assets = assetsNone
	}
}

type assetMode int

const (
	assetsInline assetMode = iota
	assetsLinked
	assetsNone
)

// Dumper wraps engine output into an HTML fragment
type Dumper struct {
	engine    *render.Engine
	assets    assetMode
	assetBase string
}

// New creates a dumper. A nil engine uses render.Default().
func New(engine *render.Engine, opts ...Option) *Dumper {
	if engine == nil {
		engine = render.Default()
	}
	d := &Dumper{engine: engine}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dump renders v into a wrapped fragment
func (d *Dumper) Dump(v any, meta Meta) string {
	var b strings.Builder
	b.WriteString(d.Preamble())
	b.WriteString(`<div class="insight-dump-wrapper">`)
	if !meta.IsZero() {
		b.WriteString(`<div class="insight-dump-meta">`)
		b.WriteString(meta.Source.String())
		fmt.Fprintf(&b, "Time: %.4f seconds", meta.Elapsed.Seconds())
		b.WriteString(`</div>`)
	}
	b.WriteString(d.engine.Render(v))
	b.WriteString(`</div>`)
	return b.String()
}

// Preamble returns what Dump puts in front of each fragment to bring in the
// stylesheet and the script
func (d *Dumper) Preamble() string {
	switch d.assets {
	case assetsNone:
		return ""
	case assetsLinked:
		return fmt.Sprintf(
			"<link rel=\"stylesheet\" type=\"text/css\" href=\"%s/%s\">\n<script src=\"%s/%s\"></script>\n",
			d.assetBase, StylesheetName, d.assetBase, ScriptName)
	default:
		return "<style>\n" + Stylesheet() + "</style>\n<script>\n" + Script() + "</script>\n"
	}
}

// Stylesheet returns the embedded stylesheet
func Stylesheet() string {
	return mustRead(StylesheetName)
}

// Script returns the embedded collapse/expand script
func Script() string {
	return mustRead(ScriptName)
}

// Assets exposes the embedded asset files at the root of the returned FS
func Assets() fs.FS {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}

func mustRead(name string) string {
	data, err := assets.ReadFile("assets/" + name)
	if err != nil {
		panic(err)
	}
	return string(data)
}
