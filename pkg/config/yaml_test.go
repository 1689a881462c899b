package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murcoder/helperkit/pkg/config"
)

type yamlConfig struct {
	AllowedTags []string `yaml:"allowed_tags"`
	Strict      bool     `yaml:"strict"`
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "whitelist.yaml", "allowed_tags:\n  - p\n  - a\n  - em\nstrict: true\n")

	var cfg yamlConfig
	require.NoError(t, config.LoadYAML(path, &cfg))

	assert.Equal(t, []string{"p", "a", "em"}, cfg.AllowedTags)
	assert.True(t, cfg.Strict)
}

func TestLoadYAML_NotCached(t *testing.T) {
	path := writeFile(t, "whitelist.yaml", "allowed_tags: [p]\n")

	var cfg yamlConfig
	require.NoError(t, config.LoadYAML(path, &cfg))
	require.Equal(t, []string{"p"}, cfg.AllowedTags)

	require.NoError(t, os.WriteFile(path, []byte("allowed_tags: [p, a]\n"), 0o644))

	var reloaded yamlConfig
	require.NoError(t, config.LoadYAML(path, &reloaded))
	assert.Equal(t, []string{"p", "a"}, reloaded.AllowedTags)
}

func TestLoadYAML_MissingFile(t *testing.T) {
	var cfg yamlConfig
	err := config.LoadYAML(filepath.Join(t.TempDir(), "nope.yaml"), &cfg)
	assert.ErrorIs(t, err, config.ErrReadingConfigFile)
}

func TestLoadYAML_InvalidDocument(t *testing.T) {
	path := writeFile(t, "broken.yaml", "allowed_tags: [p\n")

	var cfg yamlConfig
	err := config.LoadYAML(path, &cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfigFile)
}

func TestLoadYAML_NilPointer(t *testing.T) {
	err := config.LoadYAML[yamlConfig]("irrelevant.yaml", nil)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}
