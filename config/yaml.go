package config

import (
	"github.com/pkg/errors"
)

// yamlConfig is the on-disk shape of a Config. The padding key is a string so
// that multi-byte symbols survive the trip; it holds exactly one rune or is
// absent for unpadded variants.
type yamlConfig struct {
	Alphabet string `yaml:"alphabet"`
	Padding  string `yaml:"padding,omitempty"`
}

// MarshalYAML implements yaml.InterfaceMarshaler so that host applications can
// embed a Config in their own configuration files.
func (c *Config) MarshalYAML() (interface{}, error) {
	out := yamlConfig{
		Alphabet: c.Alphabet(),
	}
	if c.Padded() {
		out.Padding = string(c.pad)
	}
	return out, nil
}

// UnmarshalYAML implements yaml.InterfaceUnmarshaler. The decoded alphabet and
// padding go through New, so an invalid configuration can never enter the
// process through YAML.
func (c *Config) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw yamlConfig
	if err := unmarshal(&raw); err != nil {
		return errors.WithStack(err)
	}

	padding := NoPadding
	if raw.Padding != "" {
		runes := []rune(raw.Padding)
		if len(runes) != 1 {
			return errors.Errorf("padding must be a single symbol, got %q", raw.Padding)
		}
		padding = runes[0]
	}

	parsed, err := New(raw.Alphabet, padding)
	if err != nil {
		return errors.WithStack(err)
	}

	*c = *parsed
	return nil
}
