package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Inventory string `json:"inventory" mapstructure:"inventory"`
	LogLevel  string `json:"log-level" mapstructure:"log-level"`
	StoreName string `json:"store-name" mapstructure:"store-name"`
}

var requiredFields = []string{
	"inventory",
}

// field: default value
var optionalFields = map[string]interface{}{
	"log-level":  "INFO",
	"store-name": "Farm Shop",
}

// LoadConfig reads the configuration from a JSON file, with environment
// variables taking precedence over file values.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)
	v.SetConfigType("json")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	for _, field := range requiredFields {
		v.BindEnv(field)
	}
	for field, defaultValue := range optionalFields {
		v.SetDefault(field, defaultValue)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	for _, field := range requiredFields {
		if !v.IsSet(field) {
			return nil, fmt.Errorf("missing required config field: %s", field)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}

	if config.Inventory != "basic" && config.Inventory != "fancy" {
		return nil, fmt.Errorf("unknown inventory strategy: %q", config.Inventory)
	}

	return &config, nil
}
