// Package decode reads structured files into values the render engine
// shows faithfully. Mappings keep their document order as
// *render.OrderedMap, XML becomes a tree of *Element records and HCL a tree
// of *Block records.
package decode

import (
	"io"
	"os"

	"github.com/arthur-debert/insightdump/pkg/errors"
	"github.com/arthur-debert/insightdump/pkg/logging"
)

// Load decodes the file at path, picking the format from its extension
func Load(path string) (any, error) {
	logger := logging.GetLogger("decode")

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to open %s", path).
			WithDetail("path", path)
	}
	defer func() { _ = f.Close() }()

	logger.Debug().Str("path", path).Str("format", format.String()).Msg("Loading input")

	v, err := decode(f, format, path)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Decode reads r in the given format
func Decode(r io.Reader, format Format) (any, error) {
	return decode(r, format, "input."+format.String())
}

func decode(r io.Reader, format Format, name string) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to read input").
			WithDetail("name", name)
	}

	var v any
	switch format {
	case FormatJSON, FormatYAML:
		v, err = decodeYAML(data)
	case FormatTOML:
		v, err = decodeTOML(data)
	case FormatXML:
		v, err = decodeXML(data)
	case FormatHCL:
		v, err = decodeHCL(data, name)
	default:
		return nil, errors.Newf(errors.ErrUnsupportedFormat, "unsupported input format %s", format).
			WithDetail("name", name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDecode, "failed to decode %s as %s", name, format).
			WithDetail("name", name).
			WithDetail("format", format.String())
	}
	return v, nil
}
