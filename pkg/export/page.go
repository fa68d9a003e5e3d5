package export

import (
	"html"
	"strings"

	"github.com/arthur-debert/insightdump/pkg/dumper"
)

// Document is one dump shown on a page
type Document struct {
	Title string
	// Body is a dump fragment without assets (see dumper.WithoutAssets)
	Body string
}

// Page builds a standalone HTML page listing docs. The stylesheet and the
// script are linked from assetBase; an empty base links them relative to the
// page.
func Page(title string, docs []Document, assetBase string) string {
	prefix := ""
	if base := strings.TrimRight(assetBase, "/"); base != "" {
		prefix = base + "/"
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>" + html.EscapeString(title) + "</title>\n")
	b.WriteString("<link rel=\"stylesheet\" type=\"text/css\" href=\"" + prefix + dumper.StylesheetName + "\">\n")
	b.WriteString("<script src=\"" + prefix + dumper.ScriptName + "\"></script>\n")
	b.WriteString("</head>\n<body>\n")
	for _, doc := range docs {
		b.WriteString("<section>\n")
		if doc.Title != "" {
			b.WriteString("<h2>" + html.EscapeString(doc.Title) + "</h2>\n")
		}
		b.WriteString(doc.Body)
		b.WriteString("\n</section>\n")
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}
