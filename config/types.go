package config

import "github.com/theoremus-urban-solutions/transport-catalogue/router"

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port               int `yaml:"port" validate:"gt=0,lte=65535"`
	ReadTimeoutSec     int `yaml:"readTimeoutSec" validate:"gte=0"`
	WriteTimeoutSec    int `yaml:"writeTimeoutSec" validate:"gte=0"`
	ShutdownTimeoutSec int `yaml:"shutdownTimeoutSec" validate:"gte=0"`
}

// LoggingConfig selects the log level and output format
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// SnapshotConfig names the default snapshot file
type SnapshotConfig struct {
	File string `yaml:"file"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server   ServerConfig    `yaml:"server" validate:"required"`
	Logging  LoggingConfig   `yaml:"logging"`
	Snapshot SnapshotConfig  `yaml:"snapshot"`
	Routing  router.Settings `yaml:"routing"`
}
