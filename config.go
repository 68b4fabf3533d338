package figmarender

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultConfigFile is the config path tried when --config is not given.
// A missing file at this path is not an error.
const DefaultConfigFile = "figma-render.toml"

// Config holds defaults loaded from an optional TOML file. Explicit
// flags and environment variables take precedence over these values.
type Config struct {
	Token  string `toml:"token"`
	Frame  string `toml:"frame"`
	Output string `toml:"output"`
}

// LoadConfig reads a TOML config file. Unknown keys are rejected so
// typos surface instead of being silently ignored.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("parse config %s: unknown key %q", path, undecoded[0].String())
	}

	return cfg, nil
}
