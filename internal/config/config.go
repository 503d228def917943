package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	AI        AIConfig        `yaml:"ai"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
	Progress  ProgressConfig  `yaml:"progress"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StorageConfig selects where the progress ledger lives.
type StorageConfig struct {
	Driver         string `yaml:"driver"` // "sqlite" or "postgres"
	SQLitePath     string `yaml:"sqlite_path"`
	MigrationsPath string `yaml:"migrations_path"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

type AuthConfig struct {
	APIKey string `yaml:"api_key"`
}

// AIConfig configures the Gemini client. An empty APIKey disables the coach
// and the body simulator; both then answer with their fallback messages.
type AIConfig struct {
	APIKey     string `yaml:"api_key"`
	TextModel  string `yaml:"text_model"`
	ImageModel string `yaml:"image_model"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

type ProgressConfig struct {
	// Timezone decides which calendar day a session counts for.
	// Empty means the server's local zone.
	Timezone         string        `yaml:"timezone"`
	CelebrationDelay time.Duration `yaml:"celebration_delay"`
}

// DSN returns a PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	sslmode := d.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, sslmode)
}

// Location loads the configured timezone.
func (p ProgressConfig) Location() (*time.Location, error) {
	if p.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", p.Timezone, err)
	}
	return loc, nil
}

// Load reads config from a YAML file, then applies defaults and environment
// variable overrides. Env vars use the prefix GYMTRACKER_ and
// underscore-separated paths:
//
//	GYMTRACKER_SERVER_HOST, GYMTRACKER_SERVER_PORT,
//	GYMTRACKER_STORAGE_DRIVER, GYMTRACKER_STORAGE_SQLITE_PATH,
//	GYMTRACKER_DB_HOST, GYMTRACKER_DB_PORT, GYMTRACKER_DB_NAME,
//	GYMTRACKER_DB_USER, GYMTRACKER_DB_PASSWORD, GYMTRACKER_DB_SSLMODE,
//	GYMTRACKER_AUTH_API_KEY, GYMTRACKER_AI_API_KEY, GYMTRACKER_TIMEZONE
//
// GEMINI_API_KEY is honored when GYMTRACKER_AI_API_KEY is unset.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyDefaults(cfg)
	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = "sqlite"
	}
	if cfg.Storage.SQLitePath == "" {
		cfg.Storage.SQLitePath = "data/gymtracker.db"
	}
	if cfg.Storage.MigrationsPath == "" {
		cfg.Storage.MigrationsPath = "migrations"
	}
	if cfg.Progress.CelebrationDelay == 0 {
		cfg.Progress.CelebrationDelay = 2500 * time.Millisecond
	}
	if cfg.Tailscale.Hostname == "" {
		cfg.Tailscale.Hostname = "gymtracker"
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GYMTRACKER_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("GYMTRACKER_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("GYMTRACKER_STORAGE_DRIVER"); v != "" {
		cfg.Storage.Driver = v
	}
	if v := os.Getenv("GYMTRACKER_STORAGE_SQLITE_PATH"); v != "" {
		cfg.Storage.SQLitePath = v
	}
	if v := os.Getenv("GYMTRACKER_DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("GYMTRACKER_DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("GYMTRACKER_DB_NAME"); v != "" {
		cfg.Database.Name = v
	}
	if v := os.Getenv("GYMTRACKER_DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("GYMTRACKER_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("GYMTRACKER_DB_SSLMODE"); v != "" {
		cfg.Database.SSLMode = v
	}
	if v := os.Getenv("GYMTRACKER_AUTH_API_KEY"); v != "" {
		cfg.Auth.APIKey = v
	}
	if v := os.Getenv("GYMTRACKER_AI_API_KEY"); v != "" {
		cfg.AI.APIKey = v
	} else if v := os.Getenv("GEMINI_API_KEY"); v != "" && cfg.AI.APIKey == "" {
		cfg.AI.APIKey = v
	}
	if v := os.Getenv("GYMTRACKER_TIMEZONE"); v != "" {
		cfg.Progress.Timezone = v
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 && !c.Tailscale.Enabled {
		return fmt.Errorf("server.port is required")
	}
	switch c.Storage.Driver {
	case "sqlite":
	case "postgres":
		if c.Database.Host == "" {
			return fmt.Errorf("database.host is required")
		}
		if c.Database.Port == 0 {
			return fmt.Errorf("database.port is required")
		}
		if c.Database.Name == "" {
			return fmt.Errorf("database.name is required")
		}
		if c.Database.User == "" {
			return fmt.Errorf("database.user is required")
		}
	default:
		return fmt.Errorf("storage.driver must be sqlite or postgres, got %q", c.Storage.Driver)
	}
	if c.Auth.APIKey == "" {
		return fmt.Errorf("auth.api_key is required")
	}
	if c.Progress.CelebrationDelay < 0 {
		return fmt.Errorf("progress.celebration_delay must not be negative")
	}
	if _, err := c.Progress.Location(); err != nil {
		return err
	}
	return nil
}
