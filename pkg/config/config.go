// Package config loads CLI configuration from a YAML file and the
// environment.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sensiblecode/pdftables-go/pkg/pdftables"
)

// Config holds the settings for the pdftables CLI.
type Config struct {
	// APIKey authenticates against the service. Supports ${VAR} expansion.
	APIKey string `yaml:"api_key,omitempty"`

	// APIURL overrides the default service endpoint.
	APIURL string `yaml:"api_url,omitempty"`

	// ConnectTimeout bounds connection establishment, in seconds.
	ConnectTimeout int `yaml:"connect_timeout,omitempty"`

	// ReadTimeout bounds a whole conversion request, in seconds.
	ReadTimeout int `yaml:"read_timeout,omitempty"`

	// Extractor selects the backend extraction algorithm
	// (standard, ai-1, ai-2).
	Extractor string `yaml:"extractor,omitempty"`

	// Extract refines an AI extractor's output
	// (tables, tables-paragraphs).
	Extract string `yaml:"extract,omitempty"`

	// LogLevel sets CLI logging verbosity (debug, info, warn, error).
	LogLevel string `yaml:"log_level,omitempty"`
}

// SetDefaults applies default values.
func (c *Config) SetDefaults() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("PDFTABLES_API_KEY")
	}
	if c.APIURL == "" {
		c.APIURL = pdftables.DefaultAPIURL
	}
	if c.ConnectTimeout == 0 {
		c.ConnectTimeout = int(pdftables.DefaultConnectTimeout / time.Second)
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = int(pdftables.DefaultReadTimeout / time.Second)
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.ConnectTimeout < 0 || c.ReadTimeout < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}
	switch c.Extractor {
	case "", "standard", "ai-1", "ai-2":
	default:
		return fmt.Errorf("unknown extractor %q (valid: standard, ai-1, ai-2)", c.Extractor)
	}
	switch c.Extract {
	case "", "tables", "tables-paragraphs":
	default:
		return fmt.Errorf("unknown extract value %q (valid: tables, tables-paragraphs)", c.Extract)
	}
	return nil
}

// Load reads a YAML config file, expands ${VAR} references, applies
// defaults and validates. An empty path yields a default configuration.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		expanded := expandEnvVars(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ClientOptions translates the configuration into client options.
func (c *Config) ClientOptions() []pdftables.Option {
	opts := []pdftables.Option{
		pdftables.WithAPIURL(c.APIURL),
		pdftables.WithTimeouts(
			time.Duration(c.ConnectTimeout)*time.Second,
			time.Duration(c.ReadTimeout)*time.Second,
		),
	}
	if c.Extractor != "" {
		opts = append(opts, pdftables.WithExtractor(
			pdftables.Extractor(c.Extractor),
			pdftables.ExtractMode(c.Extract),
		))
	}
	return opts
}
