package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `{"inventory": "basic", "log-level": "DEBUG", "store-name": "Roadside Stand"}`)

	config, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "basic", config.Inventory)
	assert.Equal(t, "DEBUG", config.LogLevel)
	assert.Equal(t, "Roadside Stand", config.StoreName)
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, `{"inventory": "fancy"}`)

	config, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "INFO", config.LogLevel)
	assert.Equal(t, "Farm Shop", config.StoreName)
}

func TestLoadConfigMissingRequiredField(t *testing.T) {
	path := writeConfigFile(t, `{"log-level": "INFO"}`)

	_, err := LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "inventory")
}

func TestLoadConfigUnknownInventoryStrategy(t *testing.T) {
	path := writeConfigFile(t, `{"inventory": "bottomless"}`)

	_, err := LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bottomless")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))

	require.Error(t, err)
}
