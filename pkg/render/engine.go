package render

import (
	"html"
	"reflect"
	"strings"
	"time"

	"github.com/arthur-debert/insightdump/pkg/logging"
	"github.com/arthur-debert/insightdump/pkg/markup"
	"github.com/rs/zerolog"
)

// Engine renders values into markup. It is immutable once built and safe for
// concurrent use.
type Engine struct {
	maxDepth int
	indent   string
	escape   bool
	now      func() time.Time
	logger   *zerolog.Logger
}

// New creates an engine with the given options applied over the defaults
func New(opts ...Option) *Engine {
	e := &Engine{
		maxDepth: DefaultMaxDepth,
		indent:   DefaultIndent,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MaxDepth returns the configured depth limit
func (e *Engine) MaxDepth() int {
	return e.maxDepth
}

var defaultEngine = New()

// Default returns the engine used by the package-level functions
func Default() *Engine {
	return defaultEngine
}

// Render renders v with the default engine
func Render(v any) string {
	return defaultEngine.Render(v)
}

// Render renders v starting at indent level 0 and depth 0
func (e *Engine) Render(v any) string {
	return e.RenderWith(v, 0, 0, nil)
}

// RenderAt renders v starting at the given indent level and depth
func (e *Engine) RenderAt(v any, indentLevel, depth int) string {
	return e.RenderWith(v, indentLevel, depth, nil)
}

// RenderWith renders v using an explicit visited registry. Passing the same
// registry to several calls makes records rendered by an earlier call show up
// as back-references in later ones. A nil registry starts a fresh pass.
func (e *Engine) RenderWith(v any, indentLevel, depth int, visited *Registry) string {
	if visited == nil {
		visited = NewRegistry()
	}
	s := &state{engine: e, visited: visited}
	return s.render(reflect.ValueOf(v), indentLevel, depth, false)
}

func (e *Engine) log() *zerolog.Logger {
	if e.logger != nil {
		return e.logger
	}
	logger := logging.GetLogger("render")
	return &logger
}

// state is the per-pass rendering context threaded through every recursive
// call. It is never shared between passes.
type state struct {
	engine  *Engine
	visited *Registry
}

func (s *state) indent(level int) string {
	if level <= 0 {
		return ""
	}
	return strings.Repeat(s.engine.indent, level)
}

func (s *state) text(str string) string {
	if s.engine.escape {
		return html.EscapeString(str)
	}
	return str
}

func (s *state) maxDepthMarker() string {
	return markup.Wrap(ClassMaxDepth, MaxDepthMessage)
}

// render is the dispatcher. quoteText is set by the collection formatter so
// string items are shown as 'value'.
func (s *state) render(v reflect.Value, indentLevel, depth int, quoteText bool) (out string) {
	if depth > s.engine.maxDepth {
		return s.maxDepthMarker()
	}

	defer func() {
		if r := recover(); r != nil {
			s.engine.log().Warn().
				Interface("panic", r).
				Str("type", typeString(v)).
				Int("depth", depth).
				Msg("Recovered while rendering value")
			out = ""
		}
	}()

	v, category, ok := resolve(v, s.engine.maxDepth)
	if !ok {
		return s.maxDepthMarker()
	}

	switch category {
	case CategoryNull:
		return s.null()
	case CategoryTemporal:
		return s.temporal(v, indentLevel)
	case CategoryText:
		str := v.String()
		if quoteText {
			return s.quotedString(str)
		}
		return s.string(str)
	case CategoryBoolean:
		return s.boolean(v.Bool())
	case CategoryNumber:
		return s.number(v)
	case CategoryHandle:
		return s.handle(v, indentLevel)
	case CategoryIterable:
		return s.iterable(v, indentLevel, depth)
	case CategoryRecord:
		return s.record(v, indentLevel, depth)
	case CategoryCollection:
		return s.collection(v, indentLevel, depth)
	default:
		return ""
	}
}

func typeString(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}
	return v.Type().String()
}
