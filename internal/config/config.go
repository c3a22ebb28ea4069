package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Event store backends.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendDynamoDB = "dynamodb"
)

// ValidBackends lists every supported event store backend.
var ValidBackends = []string{BackendMemory, BackendSQLite, BackendPostgres, BackendDynamoDB}

// Config holds the service configuration.
type Config struct {
	Port int `yaml:"port"`

	Logging    LoggingConfig    `yaml:"logging"`
	EventStore EventStoreConfig `yaml:"event_store"`
	AWS        AWSConfig        `yaml:"aws"`
	Render     RenderConfig     `yaml:"render"`
	Archive    ArchiveConfig    `yaml:"archive"`
	Security   SecurityConfig   `yaml:"security"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// EventStoreConfig selects and sizes the usage event store.
type EventStoreConfig struct {
	Backend     string `yaml:"backend"`
	MaxEvents   int    `yaml:"max_events"` // memory and sqlite only
	SQLitePath  string `yaml:"sqlite_path"`
	DatabaseURL string `yaml:"database_url"`
	Table       string `yaml:"table"`
}

type AWSConfig struct {
	Region           string `yaml:"region"`
	DynamoDBEndpoint string `yaml:"dynamodb_endpoint"`
	AccessKeyID      string `yaml:"access_key_id"`
	SecretAccessKey  string `yaml:"secret_access_key"`
}

type RenderConfig struct {
	ChromePath string `yaml:"chrome_path"`
	Timeout    string `yaml:"timeout"`
}

// ArchiveConfig enables MinIO retention of bulk archives when Endpoint is set.
type ArchiveConfig struct {
	Endpoint    string `yaml:"endpoint"`
	AccessKey   string `yaml:"access_key"`
	SecretKey   string `yaml:"secret_key"`
	Bucket      string `yaml:"bucket"`
	UseSSL      bool   `yaml:"use_ssl"`
	ExpireHours int    `yaml:"expire_hours"`
}

type SecurityConfig struct {
	InternalMetricsKey string `yaml:"internal_metrics_key"`
	RateLimitPerMinute int    `yaml:"rate_limit_per_minute"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Port: 8080,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		EventStore: EventStoreConfig{
			Backend:    BackendMemory,
			MaxEvents:  1000,
			SQLitePath: "data/events.db",
			Table:      "usage_events",
		},
		AWS: AWSConfig{
			Region:          "us-east-1",
			AccessKeyID:     "local",
			SecretAccessKey: "local",
		},
		Render: RenderConfig{
			Timeout: "30s",
		},
		Archive: ArchiveConfig{
			Bucket:      "packing-slips",
			ExpireHours: 24,
		},
		Security: SecurityConfig{
			RateLimitPerMinute: 120,
		},
	}
}

// Load reads the YAML file at path (a missing file means defaults) and then
// applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by CONFIG_FILE, if any.
func LoadFromEnv() (*Config, error) {
	return Load(os.Getenv("CONFIG_FILE"))
}

func (c *Config) applyEnvOverrides() error {
	setString(&c.Logging.Level, "LOG_LEVEL")
	setString(&c.Logging.Format, "LOG_FORMAT")

	setString(&c.EventStore.Backend, "EVENT_STORE_BACKEND")
	setString(&c.EventStore.SQLitePath, "SQLITE_PATH")
	setString(&c.EventStore.DatabaseURL, "DATABASE_URL")
	setString(&c.EventStore.Table, "EVENTS_TABLE")

	setString(&c.AWS.Region, "AWS_REGION")
	setString(&c.AWS.DynamoDBEndpoint, "DYNAMODB_ENDPOINT")
	setString(&c.AWS.AccessKeyID, "AWS_ACCESS_KEY_ID")
	setString(&c.AWS.SecretAccessKey, "AWS_SECRET_ACCESS_KEY")

	setString(&c.Render.ChromePath, "CHROME_PATH")
	setString(&c.Render.Timeout, "RENDER_TIMEOUT")

	setString(&c.Archive.Endpoint, "MINIO_ENDPOINT")
	setString(&c.Archive.AccessKey, "MINIO_ACCESS_KEY")
	setString(&c.Archive.SecretKey, "MINIO_SECRET_KEY")
	setString(&c.Archive.Bucket, "MINIO_BUCKET")

	setString(&c.Security.InternalMetricsKey, "INTERNAL_METRICS_KEY")

	if err := setInt(&c.Port, "PORT"); err != nil {
		return err
	}
	if err := setInt(&c.EventStore.MaxEvents, "EVENT_STORE_MAX_EVENTS"); err != nil {
		return err
	}
	if err := setInt(&c.Archive.ExpireHours, "MINIO_EXPIRE_HOURS"); err != nil {
		return err
	}
	if err := setInt(&c.Security.RateLimitPerMinute, "RATE_LIMIT_PER_MINUTE"); err != nil {
		return err
	}
	if v := os.Getenv("MINIO_USE_SSL"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid MINIO_USE_SSL %q: %w", v, err)
		}
		c.Archive.UseSSL = b
	}
	return nil
}

// Validate checks the values that have no safe fallback.
func (c *Config) Validate() error {
	c.EventStore.Backend = strings.ToLower(strings.TrimSpace(c.EventStore.Backend))

	valid := false
	for _, b := range ValidBackends {
		if c.EventStore.Backend == b {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid event store backend: %s (valid: %v)", c.EventStore.Backend, ValidBackends)
	}
	if c.EventStore.Backend == BackendPostgres && c.EventStore.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required for the postgres event store")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.EventStore.MaxEvents <= 0 {
		return fmt.Errorf("event store max_events must be positive, got %d", c.EventStore.MaxEvents)
	}
	if c.Security.RateLimitPerMinute < 0 {
		return fmt.Errorf("rate_limit_per_minute must not be negative, got %d", c.Security.RateLimitPerMinute)
	}
	return nil
}

// GetRenderTimeout returns the per-document render timeout.
func (c *Config) GetRenderTimeout() time.Duration {
	d, err := time.ParseDuration(c.Render.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// GetArchiveURLExpiry returns how long presigned archive links stay valid.
func (c *Config) GetArchiveURLExpiry() time.Duration {
	if c.Archive.ExpireHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.Archive.ExpireHours) * time.Hour
}

// IsArchiveEnabled reports whether finished archives are uploaded to MinIO.
func (c *Config) IsArchiveEnabled() bool {
	return c.Archive.Endpoint != ""
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = n
	return nil
}
