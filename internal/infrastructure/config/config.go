package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/packhouse/backend/internal/domain/fulfillment"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App         AppConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Log         LogConfig
	HTTP        HTTPConfig
	OrderSource OrderSourceConfig
	Printing    PrintingConfig
	Layout      LayoutConfig
	BoxSizes    []fulfillment.BoxSizeEntry
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// DatabaseConfig holds the SQLite settings for the printed-status store
type DatabaseConfig struct {
	Path string // file path, or ":memory:" for tests
}

// RedisConfig holds Redis connection settings for the asset cache
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int
	TrustedProxies []string
}

// OrderSourceConfig holds the connection settings for the external
// order-management system
type OrderSourceConfig struct {
	BaseURL        string
	Token          string
	TimeoutSeconds int
}

// PrintingConfig holds PDF renderer settings
type PrintingConfig struct {
	RemoteChromeURL string        // remote DevTools URL; empty launches locally
	NoSandbox       bool          // required when running as root in a container
	RenderTimeout   time.Duration // per-document rendering budget
}

// LayoutConfig holds document layout options
type LayoutConfig struct {
	// TwoUpSmallestPack also pairs the smallest fixed pack category onto
	// shared pages, not just single-item orders.
	TwoUpSmallestPack bool
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with PACKHOUSE_ prefix (e.g., PACKHOUSE_REDIS_PASSWORD)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	// Set config file settings
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("./backend")
	v.AddConfigPath("/app")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	// Enable environment variable override
	v.SetEnvPrefix("PACKHOUSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Build config struct
	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Database: DatabaseConfig{
			Path: v.GetString("database.path"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("redis.host"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:    v.GetDuration("http.read_timeout"),
			WriteTimeout:   v.GetDuration("http.write_timeout"),
			IdleTimeout:    v.GetDuration("http.idle_timeout"),
			MaxHeaderBytes: v.GetInt("http.max_header_bytes"),
			TrustedProxies: v.GetStringSlice("http.trusted_proxies"),
		},
		OrderSource: OrderSourceConfig{
			BaseURL:        v.GetString("order_source.base_url"),
			Token:          v.GetString("order_source.token"),
			TimeoutSeconds: v.GetInt("order_source.timeout_seconds"),
		},
		Printing: PrintingConfig{
			RemoteChromeURL: v.GetString("printing.remote_chrome_url"),
			NoSandbox:       v.GetBool("printing.no_sandbox"),
			RenderTimeout:   v.GetDuration("printing.render_timeout"),
		},
		Layout: LayoutConfig{
			TwoUpSmallestPack: v.GetBool("layout.two_up_smallest_pack"),
		},
	}

	// Box-size categories are an ordered list: classification tries combos
	// in file order, so they unmarshal as a TOML array of tables.
	if err := v.UnmarshalKey("boxsize", &cfg.BoxSizes); err != nil {
		return nil, fmt.Errorf("error parsing box size catalog: %w", err)
	}

	// Apply defaults for empty values
	applyDefaults(cfg)

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "packhouse-backend"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "packhouse.db"
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		// Document generation renders inside the request.
		cfg.HTTP.WriteTimeout = 120 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.HTTP.MaxHeaderBytes == 0 {
		cfg.HTTP.MaxHeaderBytes = 1 << 20 // 1MB
	}
	if cfg.Printing.RenderTimeout == 0 {
		cfg.Printing.RenderTimeout = 60 * time.Second
	}
	if cfg.OrderSource.BaseURL == "" && cfg.App.Env != "production" {
		// Development default pointing at a local fixture server.
		cfg.OrderSource.BaseURL = "http://localhost:9000"
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.OrderSource.BaseURL != "" {
		if _, err := url.ParseRequestURI(c.OrderSource.BaseURL); err != nil {
			return fmt.Errorf("order_source.base_url is invalid: %w", err)
		}
	}

	seen := make(map[string]bool, len(c.BoxSizes))
	for i, b := range c.BoxSizes {
		if strings.TrimSpace(b.Key) == "" {
			return fmt.Errorf("boxsize[%d].key must not be empty", i)
		}
		if seen[b.Key] {
			return fmt.Errorf("boxsize key %q appears twice", b.Key)
		}
		seen[b.Key] = true
		if b.MaxItems <= 0 {
			return fmt.Errorf("boxsize %q: max_items must be positive", b.Key)
		}
	}

	// Production-specific validations
	if c.App.Env == "production" {
		if c.OrderSource.BaseURL == "" {
			return fmt.Errorf("order_source.base_url is required in production")
		}
		if c.OrderSource.Token == "" {
			return fmt.Errorf("order_source.token is required in production")
		}
	}

	return nil
}

// SmallestPackKey returns the key of the box-size category with the
// lowest item capacity, used by the compact two-up layout variant. Empty
// when no categories are configured.
func (c *Config) SmallestPackKey() string {
	key := ""
	min := 0
	for _, b := range c.BoxSizes {
		if key == "" || b.MaxItems < min {
			key = b.Key
			min = b.MaxItems
		}
	}
	return key
}

// DSN returns the SQLite connection string
func (d *DatabaseConfig) DSN() string {
	return d.Path
}
