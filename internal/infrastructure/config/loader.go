package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./.env",
	"../.env",
	"./configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// Environment variables from .env come first so they can steer everything else
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine: defaults plus env vars fully
		// configure the file backend.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("TA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("store.backend", "file")
	v.SetDefault("store.strict", false)
	v.SetDefault("store.dir", "./data")
	v.SetDefault("store.redisAddr", "localhost:6379")
	v.SetDefault("store.redisDb", 0)
	v.SetDefault("store.maxOpenConns", 25)
	v.SetDefault("store.maxIdleConns", 10)

	v.SetDefault("chain.endpoints", []string{"https://toncenter.com/api/v2"})
	v.SetDefault("chain.requestTimeout", 20) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
}

// getEnvironment determines the environment based on TA_ENV
func getEnvironment() string {
	env := os.Getenv("TA_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	if backend := os.Getenv("TA_STORE_BACKEND"); backend != "" {
		v.Set("store.backend", backend)
	}
	if dir := os.Getenv("TA_STORE_DIR"); dir != "" {
		v.Set("store.dir", dir)
	}
	if addr := os.Getenv("TA_REDIS_ADDR"); addr != "" {
		v.Set("store.redisAddr", addr)
	}
	if password := os.Getenv("TA_REDIS_PASSWORD"); password != "" {
		v.Set("store.redisPassword", password)
	}
	if dsn := os.Getenv("TA_POSTGRES_DSN"); dsn != "" {
		v.Set("store.postgresDsn", dsn)
	}

	if recipient := os.Getenv("TA_CHAIN_RECIPIENT"); recipient != "" {
		v.Set("chain.recipient", recipient)
	}
	if endpoints := os.Getenv("TA_CHAIN_ENDPOINTS"); endpoints != "" {
		v.Set("chain.endpoints", strings.Split(endpoints, ","))
	}
	if apiKey := os.Getenv("TA_CHAIN_API_KEY"); apiKey != "" {
		v.Set("chain.apiKey", apiKey)
	}

	if serverPort := os.Getenv("TA_SERVER_PORT"); serverPort != "" {
		v.Set("server.port", serverPort)
	}
	if logLevel := os.Getenv("TA_LOGGER_LEVEL"); logLevel != "" {
		v.Set("logger.level", logLevel)
	}
}

// processDurations converts duration fields from raw second counts
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Chain.RequestTimeout = time.Duration(config.Chain.RequestTimeout) * time.Second
}
