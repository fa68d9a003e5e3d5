// Package console converts dump markup for terminals: ANSI-styled through a
// lipgloss theme, or plain text.
package console

import (
	"html"
	"os"
	"strings"

	"github.com/beevik/etree"
	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/insightdump/pkg/logging"
)

// Convert renders markup in the given format. FormatAuto is resolved
// against os.Stdout.
func Convert(markup string, f Format, theme Theme) string {
	switch f.Resolve(os.Stdout) {
	case FormatHTML:
		return markup
	case FormatTerminal:
		return ToANSI(markup, theme)
	default:
		return ToText(markup)
	}
}

// ToANSI styles every text run with the theme styles of its enclosing
// elements. Markup that is not well formed (unescaped text values) falls
// back to StripTags.
func ToANSI(markup string, theme Theme) string {
	root, ok := parse(markup)
	if !ok {
		return StripTags(markup)
	}

	var b strings.Builder
	walk(root, nil, func(text string, stack []string) {
		style, ok := theme.Style(strings.Join(innermostFirst(stack), " "))
		if !ok {
			b.WriteString(text)
			return
		}
		b.WriteString(styleLines(style, text))
	})
	return b.String()
}

// ToText returns the text content of markup
func ToText(markup string) string {
	root, ok := parse(markup)
	if !ok {
		return StripTags(markup)
	}

	var b strings.Builder
	walk(root, nil, func(text string, _ []string) {
		b.WriteString(text)
	})
	return b.String()
}

func parse(markup string) (*etree.Element, bool) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString("<root>" + markup + "</root>"); err != nil {
		logger := logging.GetLogger("console")
		logger.Debug().Err(err).Msg("Markup is not well formed, stripping tags")
		return nil, false
	}
	root := doc.SelectElement("root")
	return root, root != nil
}

// walk visits the text runs under e in document order, with the class
// attributes of the enclosing elements, outermost first
func walk(e *etree.Element, classes []string, visit func(text string, classes []string)) {
	if class := e.SelectAttrValue("class", ""); class != "" {
		classes = append(classes[:len(classes):len(classes)], class)
	}
	for _, tok := range e.Child {
		switch t := tok.(type) {
		case *etree.Element:
			walk(t, classes, visit)
		case *etree.CharData:
			visit(t.Data, classes)
		}
	}
}

func innermostFirst(classes []string) []string {
	out := make([]string, len(classes))
	for i, c := range classes {
		out[len(classes)-1-i] = c
	}
	return out
}

// styleLines styles each line on its own, so lipgloss does not pad
// multi-line runs to a common width
func styleLines(style lipgloss.Style, text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}

// StripTags removes every tag from markup and unescapes entities
func StripTags(markup string) string {
	var b strings.Builder
	b.Grow(len(markup))

	inTag := false
	for _, r := range markup {
		switch {
		case r == '<':
			inTag = true
		case r == '>' && inTag:
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return html.UnescapeString(b.String())
}
