package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	Upstream struct {
		BaseURL string
		Timeout time.Duration
	}
	Page struct {
		Size int
	}
	DB struct {
		Driver string
		DSN    string
	}
	SessionLifetime time.Duration
}

// Load reads config from environment (BARCART_ prefix) and optional barcart.yaml.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BARCART")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("barcart")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("upstream.base_url", "https://www.thecocktaildb.com/api/json/v1/1")
	v.SetDefault("upstream.timeout", "10s")
	v.SetDefault("page.size", 10)
	v.SetDefault("db.driver", "sqlite3")
	v.SetDefault("db.dsn", "barcart.db")
	v.SetDefault("session.lifetime", "720h")

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.Upstream.BaseURL = strings.TrimRight(v.GetString("upstream.base_url"), "/")
	cfg.Page.Size = v.GetInt("page.size")
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")

	timeout, err := time.ParseDuration(v.GetString("upstream.timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid BARCART_UPSTREAM_TIMEOUT: %w", err)
	}
	cfg.Upstream.Timeout = timeout

	lifetime, err := time.ParseDuration(v.GetString("session.lifetime"))
	if err != nil {
		return nil, fmt.Errorf("invalid BARCART_SESSION_LIFETIME: %w", err)
	}
	cfg.SessionLifetime = lifetime

	if cfg.Upstream.BaseURL == "" {
		return nil, fmt.Errorf("BARCART_UPSTREAM_BASE_URL is required")
	}
	if cfg.Page.Size <= 0 {
		return nil, fmt.Errorf("BARCART_PAGE_SIZE must be a positive integer")
	}
	if cfg.DB.Driver == "" {
		return nil, fmt.Errorf("BARCART_DB_DRIVER is required (sqlite3, mysql, postgres)")
	}
	if cfg.DB.DSN == "" {
		return nil, fmt.Errorf("BARCART_DB_DSN is required")
	}

	return cfg, nil
}
