package console

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format is the shape dump output takes when written out
type Format int

const (
	// FormatAuto picks FormatTerminal or FormatText from the output's capabilities
	FormatAuto Format = iota
	// FormatHTML keeps the markup as produced by the engine
	FormatHTML
	// FormatTerminal renders the markup with ANSI styles
	FormatTerminal
	// FormatText renders the markup as plain text
	FormatText
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatHTML:
		return "html"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "html":
		return FormatHTML, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	default:
		return FormatAuto, fmt.Errorf("unknown format: %s", s)
	}
}

// DetectFormat determines the output format from the environment and the
// terminal capabilities of output
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	if output == nil || (!isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd())) {
		return FormatText
	}

	if termenv.NewOutput(output).ColorProfile() == termenv.Ascii {
		return FormatText
	}

	return FormatTerminal
}

// Resolve turns FormatAuto into the detected format for output
func (f Format) Resolve(output *os.File) Format {
	if f == FormatAuto {
		return DetectFormat(output)
	}
	return f
}
