// Package config loads service configuration from an optional YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Provider struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout"`
}

type Config struct {
	Listen       string   `yaml:"listen"`
	Provider     string   `yaml:"provider"`
	Ticketmaster Provider `yaml:"ticketmaster"`
	Skiddle      Provider `yaml:"skiddle"`
	PostgresURL  string   `yaml:"postgres_url"`
	RedisAddr    string   `yaml:"redis_addr"`
}

func Default() Config {
	return Config{
		Listen:   ":8080",
		Provider: "ticketmaster",
		Ticketmaster: Provider{
			BaseURL: "https://app.ticketmaster.com/discovery/v2",
			Timeout: 10 * time.Second,
		},
		Skiddle: Provider{
			BaseURL: "https://www.skiddle.com/api/v1",
			Timeout: 10 * time.Second,
		},
		RedisAddr: "localhost:6379",
	}
}

// Load reads the YAML file at path (skipped when path is empty) on top of the
// defaults, then applies environment overrides.
func Load(path string) (Config, error) {
	c := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnv(&c)

	return c, nil
}

func applyEnv(c *Config) {
	setFromEnv(&c.Listen, "LISTEN_ADDR")
	setFromEnv(&c.Provider, "EVENT_PROVIDER")
	setFromEnv(&c.Ticketmaster.APIKey, "TICKETMASTER_API_KEY")
	setFromEnv(&c.Skiddle.APIKey, "SKIDDLE_API_KEY")
	setFromEnv(&c.PostgresURL, "POSTGRES_URL")
	setFromEnv(&c.RedisAddr, "REDIS_ADDR")
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
