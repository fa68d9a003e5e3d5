package decode

import (
	"github.com/pelletier/go-toml/v2"
)

// decodeTOML reads a TOML document. Tables come back as Go maps, which the
// engine shows in sorted key order; dates and times keep their TOML types.
func decodeTOML(data []byte) (any, error) {
	var v map[string]any
	if err := toml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}
