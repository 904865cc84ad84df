package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPrompt = ">>> "
	defaultPath   = ".lume.yaml"
)

type Config struct {
	Prompt  string `yaml:"prompt"`
	DumpAST string `yaml:"dump_ast"`
}

// Load reads a config file, falling back to .lume.yaml in the working
// directory when no path is given. A missing default file is not an error;
// a missing explicit path is.
func Load(path string) (*Config, error) {
	cfg := &Config{Prompt: DefaultPrompt}

	explicit := path != ""
	if !explicit {
		path = defaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}

	return cfg, nil
}
