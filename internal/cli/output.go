package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/insightdump/pkg/config"
	"github.com/arthur-debert/insightdump/pkg/console"
	"github.com/arthur-debert/insightdump/pkg/dumper"
	"github.com/arthur-debert/insightdump/pkg/render"
)

// outputFormat resolves the configured format against w. Writers that are
// not files are never terminals.
func outputFormat(cfg *config.Config, w io.Writer) console.Format {
	f := cfg.Format()
	if f != console.FormatAuto {
		return f
	}
	if file, ok := w.(*os.File); ok {
		return f.Resolve(file)
	}
	return console.FormatText
}

// renderHTML dumps docs into one fragment that brings in the assets once
func renderHTML(engine *render.Engine, opts []dumper.Option, docs []document) string {
	var b strings.Builder
	b.WriteString(dumper.New(engine, opts...).Preamble())
	bare := dumper.New(engine, dumper.WithoutAssets())
	for _, doc := range docs {
		b.WriteString(bare.Dump(doc.Value, doc.meta()))
		b.WriteString("\n")
	}
	return b.String()
}

// writeDocs writes docs to w in the format cfg asks for
func writeDocs(w io.Writer, cfg *config.Config, docs []document) error {
	engine := render.New(cfg.EngineOptions()...)
	format := outputFormat(cfg, w)

	if format == console.FormatHTML {
		_, err := io.WriteString(w, renderHTML(engine, cfg.DumperOptions(), docs))
		return err
	}

	renderer := lipgloss.NewRenderer(w)
	if format == console.FormatTerminal && renderer.ColorProfile() == termenv.Ascii {
		renderer.SetColorProfile(termenv.ANSI256)
	}
	theme := console.ThemeFor(renderer)

	for _, doc := range docs {
		if len(docs) > 1 {
			if _, err := fmt.Fprintf(w, MsgFileHeader, doc.Name); err != nil {
				return err
			}
		}
		out := console.Convert(engine.Render(doc.Value), format, theme)
		if _, err := io.WriteString(w, out+"\n"); err != nil {
			return err
		}
	}
	return nil
}
