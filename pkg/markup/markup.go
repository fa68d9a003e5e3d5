// Package markup wraps text fragments in class-annotated tags.
//
// Every formatter of the dump engine goes through Wrap so the tag shape stays
// in one place:
//
//	markup.Wrap("insight-dump-string", "hello")
//	// <span class="insight-dump-string">hello</span>
//
// Open and Close modes split a tag around content produced elsewhere, which is
// how collapsible collection bodies are built:
//
//	markup.Wrap("insight-dump-array-content-opened", "", markup.WithMode(markup.Open))
//	// <span class="insight-dump-array-content-opened">
//
// Neither the class nor the content is escaped here.
package markup

import "fmt"

// DefaultTag is used when no tag (or an empty one) is given
const DefaultTag = "span"

// Mode selects which parts of the tag Wrap emits
type Mode int

const (
	// Full emits the opening tag, the content and the closing tag
	Full Mode = iota
	// Open emits the opening tag followed by the content
	Open
	// Close emits the content followed by the closing tag
	Close
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case Full:
		return "full"
	case Open:
		return "open"
	case Close:
		return "close"
	default:
		return "unknown"
	}
}

type wrapOptions struct {
	tag  string
	mode Mode
}

// Option configures a single Wrap call
type Option func(*wrapOptions)

// WithTag sets the tag name. An empty name keeps DefaultTag.
func WithTag(tag string) Option {
	return func(o *wrapOptions) {
		if tag != "" {
			o.tag = tag
		}
	}
}

// WithMode sets the wrap mode
func WithMode(mode Mode) Option {
	return func(o *wrapOptions) {
		o.mode = mode
	}
}

// Wrap surrounds content with a tag carrying the given class
func Wrap(class, content string, opts ...Option) string {
	o := wrapOptions{tag: DefaultTag, mode: Full}
	for _, opt := range opts {
		opt(&o)
	}

	switch o.mode {
	case Open:
		return fmt.Sprintf(`<%s class="%s">%s`, o.tag, class, content)
	case Close:
		return fmt.Sprintf(`%s</%s>`, content, o.tag)
	default:
		return fmt.Sprintf(`<%[1]s class="%[2]s">%[3]s</%[1]s>`, o.tag, class, content)
	}
}

// OpenTag is shorthand for Wrap(class, content, WithMode(Open))
func OpenTag(class, content string) string {
	return Wrap(class, content, WithMode(Open))
}

// CloseTag is shorthand for Wrap("", content, WithMode(Close))
func CloseTag(content string) string {
	return Wrap("", content, WithMode(Close))
}
