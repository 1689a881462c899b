package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads the YAML document at path into the provided struct using its
// `yaml` field tags. Unlike Load, results are not cached; every call reads
// the file, so operators can reload edited documents without restarting.
func LoadYAML[T any](path string, v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrReadingConfigFile, err)
	}

	if err := yaml.Unmarshal(data, v); err != nil {
		return errors.Join(ErrParsingConfigFile, err)
	}

	return nil
}
