package config

import (
	"encoding/json"
	"sort"

	burnt "github.com/BurntSushi/toml"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/abasp/errors"
)

// Output formats accepted by Marshal.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ErrUnsupportedFormat indicates a format other than toml, yaml or json.
var ErrUnsupportedFormat = errors.New("config: unsupported format")

// Marshal renders c in the given format.
func Marshal(c *Config, format string) ([]byte, error) {
	switch format {
	case FormatTOML:
		data, err := toml.Marshal(c)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal config to TOML")
		}
		return data, nil
	case FormatYAML:
		data, err := yaml.Marshal(c)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal config to YAML")
		}
		return data, nil
	case FormatJSON:
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal config to JSON")
		}
		return append(data, '\n'), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%s (supported: toml, yaml, json)", format)
	}
}

// UnknownKeys decodes the TOML file at path strictly and returns the keys
// that map to no configuration field, sorted.
func UnknownKeys(path string) ([]string, error) {
	var c Config
	md, err := burnt.DecodeFile(path, &c)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", path)
	}
	var keys []string
	for _, k := range md.Undecoded() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)
	return keys, nil
}
