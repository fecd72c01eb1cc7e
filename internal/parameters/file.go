package parameters

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlParameters represents the parameters file structure.
type yamlParameters struct {
	Parameters map[string]string `yaml:"parameters"`
}

// LoadFile reads a YAML parameters file into a Store.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var doc yamlParameters
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	for key := range doc.Parameters {
		if err := validateKey(key); err != nil {
			return nil, fmt.Errorf("parameters file %s: %w", path, err)
		}
	}

	return NewStore(doc.Parameters), nil
}
