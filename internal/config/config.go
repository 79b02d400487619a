package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Jobs     JobsConfig     `mapstructure:"jobs"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	// Path is the SQLite database file, or ":memory:" for an ephemeral one.
	Path string `mapstructure:"path" validate:"required"`
}

// JobsConfig contains the background job settings.
type JobsConfig struct {
	// RollupEnabled toggles the nightly daily-stats rollup.
	RollupEnabled bool `mapstructure:"rollup_enabled"`
}
