package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Database struct {
		URI string `yaml:"uri"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
	} `yaml:"jwt"`

	Gemini struct {
		ApiKey string `yaml:"apiKey"`
	} `yaml:"gemini"`
}

// LoadConfig reads the configuration file and applies environment overrides.
// The file may be absent; environment variables alone are enough to run.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT value %q: %w", port, err)
		}
		cfg.Server.Port = p
	}
	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		cfg.Database.URI = uri
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWT.Secret = secret
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg.Gemini.ApiKey = key
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}

	return &cfg, nil
}

// Validate rejects configurations the server must not start with.
// There is deliberately no fallback signing secret.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("JWT secret is not configured (set JWT_SECRET or jwt.secret)")
	}
	if c.Database.URI == "" {
		return errors.New("MongoDB URI is not configured (set MONGODB_URI or database.uri)")
	}
	return nil
}
