package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	DatabaseURL       string   `yaml:"database_url"`
	HTTPListenAddr    string   `yaml:"http_listen_addr"`
	MetricsListenAddr string   `yaml:"metrics_listen_addr"`
	LogLevel          string   `yaml:"log_level"`
	StoreDriver       string   `yaml:"store_driver"`
	CORSOrigins       []string `yaml:"cors_origins"`
	ServiceName       string   `yaml:"service_name"`
}

// Load builds the config from, in increasing precedence: built-in defaults,
// the YAML file named by CONFIG_FILE, and environment variables. A .env file
// in the working directory is loaded into the environment first if present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	base := &Config{
		HTTPListenAddr: ":8080",
		LogLevel:       "info",
		StoreDriver:    StoreDriverPostgres,
		ServiceName:    "customer-api",
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, base); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		DatabaseURL:       getEnv("DATABASE_URL", base.DatabaseURL),
		HTTPListenAddr:    getEnv("HTTP_LISTEN_ADDR", base.HTTPListenAddr),
		MetricsListenAddr: getEnv("METRICS_LISTEN_ADDR", base.MetricsListenAddr),
		LogLevel:          getEnv("LOG_LEVEL", base.LogLevel),
		StoreDriver:       getEnv("STORE_DRIVER", base.StoreDriver),
		CORSOrigins:       base.CORSOrigins,
		ServiceName:       getEnv("SERVICE_NAME", base.ServiceName),
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitList(v)
	}

	return cfg, nil
}

// Validate reports every missing or invalid setting in one error.
func (c *Config) Validate() error {
	var problems []string

	if c.HTTPListenAddr == "" {
		problems = append(problems, "HTTP_LISTEN_ADDR is required")
	}

	switch c.StoreDriver {
	case StoreDriverPostgres:
		if c.DatabaseURL == "" {
			problems = append(problems, "DATABASE_URL is required for the postgres store")
		}
	case StoreDriverMemory:
	default:
		problems = append(problems, fmt.Sprintf("STORE_DRIVER %q is not one of postgres, memory", c.StoreDriver))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
