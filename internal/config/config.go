package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"storefront/internal/money"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v2"
)

const defaultConfigPath = "config/config.yaml"

type Config struct {
	Server struct {
		Host string `yaml:"host" env:"SERVER_HOST"`
		Port int    `yaml:"port" env:"SERVER_PORT"`
		Env  string `yaml:"env" env:"SERVER_ENV"`
	} `yaml:"server"`

	Database struct {
		Driver      string `yaml:"driver" env:"DATABASE_DRIVER"` // postgres, sqlite
		DSN         string `yaml:"url" env:"DATABASE_URL"`
		AutoMigrate bool   `yaml:"auto_migrate" env:"DATABASE_AUTO_MIGRATE"`
		Seed        bool   `yaml:"seed" env:"DATABASE_SEED"`
	} `yaml:"database"`

	JWT struct {
		Secret    string `yaml:"secret" env:"JWT_SECRET"`
		PublicKey string `yaml:"public_key" env:"JWT_PUBLIC_KEY"` // PEM, включает RS256
		Issuer    string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Store struct {
		Currency string `yaml:"currency" env:"STORE_CURRENCY"` // ISO 4217
	} `yaml:"store"`

	Identity struct {
		Provider  string        `yaml:"provider" env:"IDENTITY_PROVIDER"` // clerk, static
		BaseURL   string        `yaml:"base_url" env:"IDENTITY_BASE_URL"`
		SecretKey string        `yaml:"secret_key" env:"IDENTITY_SECRET_KEY"`
		Timeout   time.Duration `yaml:"timeout" env:"IDENTITY_TIMEOUT"`
	} `yaml:"identity"`
}

var AppConfig *Config

// Default возвращает конфиг со значениями по умолчанию
func Default() *Config {
	var cfg Config
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 4000
	cfg.Server.Env = "development"

	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = "file:storefront.db"
	cfg.Database.AutoMigrate = true

	cfg.Store.Currency = money.USD.Code

	cfg.Identity.Provider = "static"
	cfg.Identity.BaseURL = "https://api.clerk.com"
	cfg.Identity.Timeout = 5 * time.Second
	return &cfg
}

// Load читает YAML (если файл есть) поверх значений по умолчанию,
// затем применяет переменные окружения.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	f, err := os.Open(path)
	switch {
	case err == nil:
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// без файла работаем на значениях по умолчанию и окружении
	default:
		return nil, fmt.Errorf("open config file %s: %w", path, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет значения, без которых сервер не стартует
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return errors.New("database url is required")
	}

	switch c.Identity.Provider {
	case "static":
	case "clerk":
		if c.Identity.SecretKey == "" {
			return errors.New("identity secret key is required for the clerk provider")
		}
	default:
		return fmt.Errorf("unsupported identity provider %q", c.Identity.Provider)
	}

	if _, err := money.CurrencyFromCode(c.Store.Currency); err != nil {
		return fmt.Errorf("store currency: %w", err)
	}

	if c.JWT.Secret == "" && c.JWT.PublicKey == "" {
		return errors.New("jwt secret or public key is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	return nil
}

// Address - host:port для gin
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// LoadConfig загружает конфиг в AppConfig
func LoadConfig() error {
	cfg, err := Load("")
	if err != nil {
		return err
	}
	AppConfig = cfg
	return nil
}

