package adapter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/doxycov/internal/model"
)

// DefaultConfigFileName is looked up inside the scanned directory when no
// explicit config path is given.
const DefaultConfigFileName = ".doxycov.yml"

// ConfigStore loads optional doxycov configuration files.
type ConfigStore interface {
	// Load reads a YAML config file. A missing file is not an error and
	// yields a zero Config.
	Load(path m.Path) (m.Config, error)
}

type configStore struct{}

// NewConfigStore constructs a ConfigStore implementation.
func NewConfigStore() ConfigStore {
	return &configStore{}
}

func (cs *configStore) Load(path m.Path) (m.Config, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		if os.IsNotExist(err) {
			return m.Config{}, nil
		}

		return m.Config{}, err
	}

	var cfg m.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return m.Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
