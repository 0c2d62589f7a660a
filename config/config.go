package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage backends accepted by storage.backend.
const (
	StorageBackendMemory = "memory"
	StorageBackendFile   = "file"
	StorageBackendMongo  = "mongo"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Shopping list specifics
	Storage      StorageConfig
	Persistence  PersistenceConfig
	Notification NotificationConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// StorageConfig selects the key-value backend the item list is persisted to.
type StorageConfig struct {
	Backend string
	Key     string
	File    FileStorageConfig
	Mongo   MongoStorageConfig
}

type FileStorageConfig struct {
	Dir string
}

type MongoStorageConfig struct {
	URI        string
	Database   string
	Collection string
}

// PersistenceConfig tunes the save/load retry policy and save debouncing.
type PersistenceConfig struct {
	MaxRetries      int
	RetryBackoff    time.Duration
	MaxPayloadBytes int
	Debounce        time.Duration
}

type NotificationConfig struct {
	TTL      time.Duration
	Capacity int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Storage
	cfg.Storage.Backend = strings.ToLower(viper.GetString("storage.backend"))
	cfg.Storage.Key = viper.GetString("storage.key")
	cfg.Storage.File.Dir = viper.GetString("storage.file.dir")
	cfg.Storage.Mongo.URI = viper.GetString("storage.mongo.uri")
	cfg.Storage.Mongo.Database = viper.GetString("storage.mongo.database")
	cfg.Storage.Mongo.Collection = viper.GetString("storage.mongo.collection")
	if mongoURI := viper.GetString("mongo_uri"); mongoURI != "" {
		cfg.Storage.Mongo.URI = mongoURI
	}

	// Persistence
	cfg.Persistence.MaxRetries = viper.GetInt("persistence.max_retries")
	cfg.Persistence.RetryBackoff = viper.GetDuration("persistence.retry_backoff")
	cfg.Persistence.MaxPayloadBytes = viper.GetInt("persistence.max_payload_bytes")
	cfg.Persistence.Debounce = viper.GetDuration("persistence.debounce")

	// Notifications
	cfg.Notification.TTL = viper.GetDuration("notification.ttl")
	cfg.Notification.Capacity = viper.GetInt("notification.capacity")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 120)

	viper.SetDefault("storage.backend", StorageBackendFile)
	viper.SetDefault("storage.key", "@shopping_list_items")
	viper.SetDefault("storage.file.dir", "./data")
	viper.SetDefault("storage.mongo.database", "shopping_list")
	viper.SetDefault("storage.mongo.collection", "kv")

	viper.SetDefault("persistence.max_retries", 3)
	viper.SetDefault("persistence.retry_backoff", "500ms")
	viper.SetDefault("persistence.max_payload_bytes", 10*1024*1024)
	viper.SetDefault("persistence.debounce", "250ms")

	viper.SetDefault("notification.ttl", "3s")
	viper.SetDefault("notification.capacity", 50)
}

func (cfg *Config) validate() error {
	switch cfg.Storage.Backend {
	case StorageBackendMemory, StorageBackendFile:
	case StorageBackendMongo:
		if cfg.Storage.Mongo.URI == "" {
			return fmt.Errorf("storage.mongo.uri is required for the mongo backend")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	if cfg.Storage.Key == "" {
		return fmt.Errorf("storage.key is required")
	}
	if cfg.Persistence.MaxRetries < 0 {
		return fmt.Errorf("persistence.max_retries must not be negative")
	}
	if cfg.Persistence.MaxPayloadBytes <= 0 {
		return fmt.Errorf("persistence.max_payload_bytes must be positive")
	}
	if cfg.Notification.Capacity <= 0 {
		return fmt.Errorf("notification.capacity must be positive")
	}
	return nil
}
