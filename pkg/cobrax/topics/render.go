package topics

import (
	"github.com/charmbracelet/glamour"
)

// Renderer turns raw topic content into what is printed
type Renderer interface {
	Render(content, ext string) string
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(content, ext string) string

// Render calls f
func (f RendererFunc) Render(content, ext string) string { return f(content, ext) }

// Plain prints topics unchanged
var Plain Renderer = RendererFunc(func(content, _ string) string { return content })

// Markdown renders .md topics through glamour with the given style ("auto",
// "dark", "light", "notty" or a style file path). Other topics and rendering
// failures fall back to the raw content.
func Markdown(style string, width int) Renderer {
	return RendererFunc(func(content, ext string) string {
		if ext != ".md" {
			return content
		}

		opts := []glamour.TermRendererOption{}
		switch style {
		case "", "auto":
			opts = append(opts, glamour.WithAutoStyle())
		default:
			opts = append(opts, glamour.WithStylePath(style))
		}
		if width > 0 {
			opts = append(opts, glamour.WithWordWrap(width))
		}

		r, err := glamour.NewTermRenderer(opts...)
		if err != nil {
			return content
		}
		out, err := r.Render(content)
		if err != nil {
			return content
		}
		return out
	})
}
