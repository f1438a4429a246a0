package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverDynamoDB = "dynamodb"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config defines service configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Store  StoreConfig  `yaml:"store"`
	Events EventsConfig `yaml:"events"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type StoreConfig struct {
	Driver   string         `yaml:"driver"`
	DynamoDB DynamoDBConfig `yaml:"dynamodb"`
	// DSN is the gorm connection string for the postgres and sqlite drivers.
	DSN   string      `yaml:"dsn"`
	Cache CacheConfig `yaml:"cache"`
	Retry RetryConfig `yaml:"retry"`
}

type DynamoDBConfig struct {
	Table           string `yaml:"table"`
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
}

type CacheConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts"`
	BaseDelay   time.Duration `yaml:"base_delay"`
}

// EventsConfig points at the AMQP broker. An empty URL disables publishing.
type EventsConfig struct {
	AMQPURL  string `yaml:"amqp_url"`
	Exchange string `yaml:"exchange"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{Port: "8080"},
		Store: StoreConfig{
			Driver: DriverMemory,
			DynamoDB: DynamoDBConfig{
				Table:           "records",
				Region:          "us-east-1",
				AccessKeyID:     "local",
				SecretAccessKey: "local",
			},
			Cache: CacheConfig{TTL: 5 * time.Second},
			Retry: RetryConfig{MaxAttempts: 5, BaseDelay: time.Second},
		},
		Events: EventsConfig{Exchange: "gestao.events"},
	}
}

// Load reads configuration from defaults, an optional YAML file named by
// GESTAO_CONFIG_PATH, then environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("GESTAO_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Store.Driver {
	case DriverMemory, DriverDynamoDB:
	case DriverPostgres, DriverSQLite:
		if c.Store.DSN == "" {
			return fmt.Errorf("store driver %s requires a dsn", c.Store.Driver)
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if c.Store.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry max_attempts must be at least 1, got %d", c.Store.Retry.MaxAttempts)
	}
	if c.Store.Cache.TTL < 0 || c.Store.Retry.BaseDelay < 0 {
		return fmt.Errorf("cache ttl and retry base_delay must not be negative")
	}
	return nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Server.Port, "PORT")
	setString(&cfg.Store.Driver, "GESTAO_STORE_DRIVER")
	cfg.Store.Driver = strings.ToLower(cfg.Store.Driver)
	setString(&cfg.Store.DSN, "GESTAO_STORE_DSN")

	// AWS names match what the SDK and local DynamoDB tooling already use.
	setString(&cfg.Store.DynamoDB.Table, "DYNAMODB_TABLE")
	setString(&cfg.Store.DynamoDB.Region, "AWS_REGION")
	setString(&cfg.Store.DynamoDB.Endpoint, "DYNAMODB_ENDPOINT")
	setString(&cfg.Store.DynamoDB.AccessKeyID, "AWS_ACCESS_KEY_ID")
	setString(&cfg.Store.DynamoDB.SecretAccessKey, "AWS_SECRET_ACCESS_KEY")

	if err := setDuration(&cfg.Store.Cache.TTL, "GESTAO_CACHE_TTL"); err != nil {
		return err
	}
	if err := setDuration(&cfg.Store.Retry.BaseDelay, "GESTAO_RETRY_BASE_DELAY"); err != nil {
		return err
	}
	if v := os.Getenv("GESTAO_RETRY_MAX_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid GESTAO_RETRY_MAX_ATTEMPTS: %w", err)
		}
		cfg.Store.Retry.MaxAttempts = n
	}

	setString(&cfg.Events.AMQPURL, "AMQP_URL")
	setString(&cfg.Events.Exchange, "GESTAO_EVENTS_EXCHANGE")
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = d
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
