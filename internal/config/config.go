// Package config loads and validates application configuration.
package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains the credential-signing settings. Two independent
// secrets sign the access credential and the identity-claim credential;
// both are injected at startup and never hardcoded.
type AuthConfig struct {
	AccessTokenSecret string `mapstructure:"access_token_secret" validate:"required,min=32"`
	IDTokenSecret     string `mapstructure:"id_token_secret"     validate:"required,min=32"`
	BcryptCost        int    `mapstructure:"bcrypt_cost"         validate:"gte=0,lte=31"`
}
