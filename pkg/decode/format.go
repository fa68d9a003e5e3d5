package decode

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/insightdump/pkg/errors"
)

// Format is an input encoding
type Format int

const (
	FormatUnknown Format = iota
	FormatJSON
	FormatYAML
	FormatTOML
	FormatXML
	FormatHCL
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatXML:
		return "xml"
	case FormatHCL:
		return "hcl"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name or file extension
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "xml":
		return FormatXML, nil
	case "hcl", "tf":
		return FormatHCL, nil
	default:
		return FormatUnknown, errors.Newf(errors.ErrUnsupportedFormat, "unsupported input format %q", s).
			WithDetail("format", s)
	}
}

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return FormatUnknown, errors.Newf(errors.ErrUnsupportedFormat, "cannot tell the format of %s", path).
			WithDetail("path", path)
	}
	return ParseFormat(ext)
}
