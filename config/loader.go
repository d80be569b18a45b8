package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/transport-catalogue/router"
)

// Config is the global application configuration
var Config = Default()

// Default returns the configuration used when no file is given
func Default() AppConfig {
	return AppConfig{
		Server: ServerConfig{
			Port:               16181,
			ReadTimeoutSec:     10,
			WriteTimeoutSec:    30,
			ShutdownTimeoutSec: 10,
		},
		Logging:  LoggingConfig{Level: "info", Format: "text"},
		Snapshot: SnapshotConfig{File: "transport_catalogue.db"},
		Routing:  router.Settings{BusVelocity: 40, BusWaitTime: 6},
	}
}

// Load reads and validates the configuration at path. Keys missing from
// the file keep their default values. An empty path yields Default.
func Load(path string) (AppConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return AppConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadAppConfig loads the configuration at path into Config
func LoadAppConfig(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}
