package console

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef is an adaptive color in the theme file
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is the style of one dump class in the theme file
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Faint      bool   `yaml:"faint,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// ThemeConfig is the theme file layout
type ThemeConfig struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed theme.yaml
var embeddedTheme []byte

// Theme maps dump classes to terminal styles
type Theme struct {
	renderer *lipgloss.Renderer
	styles   map[string]lipgloss.Style
}

// LoadTheme parses a theme file. Styles are bound to r, or to the default
// renderer when r is nil.
func LoadTheme(data []byte, r *lipgloss.Renderer) (Theme, error) {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	var cfg ThemeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Theme{}, fmt.Errorf("failed to parse theme: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	t := Theme{renderer: r, styles: make(map[string]lipgloss.Style, len(cfg.Styles))}
	for class, def := range cfg.Styles {
		t.styles[class] = buildStyle(r, def, colors)
	}
	return t, nil
}

// ThemeFor returns the built-in theme bound to r
func ThemeFor(r *lipgloss.Renderer) Theme {
	t, err := LoadTheme(embeddedTheme, r)
	if err != nil {
		if r == nil {
			r = lipgloss.DefaultRenderer()
		}
		return Theme{renderer: r, styles: map[string]lipgloss.Style{}}
	}
	return t
}

// DefaultTheme returns the built-in theme on the default renderer
func DefaultTheme() Theme {
	return ThemeFor(nil)
}

func buildStyle(r *lipgloss.Renderer, def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	style := r.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if def.Faint {
		style = style.Faint(true)
	}

	if color, ok := colors[def.Foreground]; ok {
		style = style.Foreground(color)
	}
	if color, ok := colors[def.Background]; ok {
		style = style.Background(color)
	}

	return style
}

// Style returns the style for a class attribute. Styles of several classes
// are combined, earlier classes taking precedence.
func (t Theme) Style(classes string) (lipgloss.Style, bool) {
	var (
		style lipgloss.Style
		found bool
	)
	for _, class := range strings.Fields(classes) {
		s, ok := t.styles[class]
		if !ok {
			continue
		}
		if !found {
			style, found = s, true
			continue
		}
		style = style.Inherit(s)
	}
	return style, found
}

// Has reports whether the theme styles class
func (t Theme) Has(class string) bool {
	_, ok := t.styles[class]
	return ok
}
