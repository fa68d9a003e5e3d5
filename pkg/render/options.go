package render

import (
	"time"

	"github.com/rs/zerolog"
)

// Default settings used by New
const (
	DefaultMaxDepth = 10
	DefaultIndent   = "  "
)

// Option configures an Engine
type Option func(*Engine)

// WithMaxDepth sets the depth past which subtrees are replaced by the
// max-depth marker. Negative values are treated as zero.
func WithMaxDepth(n int) Option {
	return func(e *Engine) {
		if n < 0 {
			n = 0
		}
		e.maxDepth = n
	}
}

// WithIndent sets the string repeated once per indent level
func WithIndent(indent string) Option {
	return func(e *Engine) {
		e.indent = indent
	}
}

// WithClock sets the time source used for the diffWithNow field of temporal values
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithEscapeText HTML-escapes text values, keys and type names. Off by
// default: the markup is meant for trusted debugging output.
func WithEscapeText(escape bool) Option {
	return func(e *Engine) {
		e.escape = escape
	}
}

// WithLogger sets the logger used to report recovered formatter failures
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = &logger
	}
}
