package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is built once at startup and passed explicitly to the components
// that need it; handlers never read the environment.
type Config struct {
	Addr          string        `yaml:"addr"`
	JWTSecret     string        `yaml:"jwt_secret"`
	APITimeout    time.Duration `yaml:"timeout"`
	DatabasePath  string        `yaml:"database_path"`
	TokenDuration time.Duration `yaml:"token_duration"`

	// Origins allowed to call the API from a browser.
	AllowedOrigins []string `yaml:"allowed_origins"`

	// Shared key the external AI service must present on the results
	// ingestion endpoint. Empty leaves the endpoint open.
	ServiceKey string `yaml:"service_key"`

	// Bcrypt work factor for password hashing.
	BcryptCost int `yaml:"bcrypt_cost"`
}

func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:          getEnv("PREPWISE_ADDR", ":8080"),
		JWTSecret:     os.Getenv("PREPWISE_JWT_SECRET"),
		APITimeout:    15 * time.Second,
		DatabasePath:  getEnv("PREPWISE_DATABASE_PATH", "prepwise.db"),
		TokenDuration: 7 * 24 * time.Hour,
		ServiceKey:    os.Getenv("PREPWISE_SERVICE_KEY"),
		BcryptCost:    12,
	}
	if origins := os.Getenv("PREPWISE_ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = splitOrigins(origins)
	}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	// The token authority cannot run without a signing key.
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("PREPWISE_JWT_SECRET is not set")
	}

	return cfg, nil
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
