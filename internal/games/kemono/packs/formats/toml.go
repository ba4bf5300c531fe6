package formats

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// ParseTOML parses a TOML content pack.
func ParseTOML(data []byte) (FilePack, error) {
	var fp FilePack
	if err := toml.Unmarshal(data, &fp); err != nil {
		return FilePack{}, fmt.Errorf("toml unmarshal: %w", err)
	}
	fp.applyDefaults()
	return fp, nil
}
