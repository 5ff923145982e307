package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string       `mapstructure:"environment"`
	Server      ServerConfig `mapstructure:"server"`
	Store       StoreConfig  `mapstructure:"store"`
	Chain       ChainConfig  `mapstructure:"chain"`
	Logger      LoggerConfig `mapstructure:"logger"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// StoreConfig contains persistence settings. Backend selects the document
// store implementation: "file", "redis" or "postgres".
type StoreConfig struct {
	Backend string `mapstructure:"backend"`
	Strict  bool   `mapstructure:"strict"`

	// File backing
	Dir string `mapstructure:"dir"`

	// Redis backing
	RedisAddr     string `mapstructure:"redisAddr"`
	RedisPassword string `mapstructure:"redisPassword"`
	RedisDB       int    `mapstructure:"redisDb"`

	// Postgres backing
	PostgresDSN  string `mapstructure:"postgresDsn"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
	MaxIdleConns int    `mapstructure:"maxIdleConns"`
}

// ChainConfig contains TON chain verification settings
type ChainConfig struct {
	// Recipient is the wallet address payments must credit
	Recipient string `mapstructure:"recipient"`
	// Endpoints lists toncenter API base URLs, tried in order
	Endpoints []string `mapstructure:"endpoints"`
	// APIKey authenticates against toncenter, optional
	APIKey string `mapstructure:"apiKey"`
	// RequestTimeout bounds each chain API attempt
	RequestTimeout time.Duration `mapstructure:"requestTimeout"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
