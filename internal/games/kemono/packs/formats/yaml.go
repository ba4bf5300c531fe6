package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses a YAML content pack.
func ParseYAML(data []byte) (FilePack, error) {
	var fp FilePack
	if err := yaml.Unmarshal(data, &fp); err != nil {
		return FilePack{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	fp.applyDefaults()
	return fp, nil
}

// MarshalYAML encodes a pack back to YAML, used by `kemono validate --print`.
func MarshalYAML(fp FilePack) ([]byte, error) {
	out, err := yaml.Marshal(fp)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return out, nil
}
