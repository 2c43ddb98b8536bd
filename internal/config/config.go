package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"

	"github.com/brogergvhs/mangaso/internal/comics"
)

type Config struct {
	Listen           string        `yaml:"listen" env:"MANGASO_LISTEN" env-default:":8787"`
	Upstream         string        `yaml:"upstream" env:"MANGASO_UPSTREAM" env-default:"http://manwaso.cc"`
	UserAgent        string        `yaml:"user_agent" env:"MANGASO_USER_AGENT"`
	CloudflareBypass bool          `yaml:"cloudflare_bypass" env:"MANGASO_CLOUDFLARE_BYPASS"`
	ProxyURL         string        `yaml:"proxy_url" env:"MANGASO_PROXY_URL" env-default:"http://localhost:8787"`
	Timeout          time.Duration `yaml:"timeout" env:"MANGASO_TIMEOUT"`
	Debug            bool          `yaml:"debug" env:"MANGASO_DEBUG"`
}

// Options carries CLI flag values. Zero values leave the config untouched.
type Options struct {
	IgnoreConfig     bool
	Debug            bool
	Listen           string
	Upstream         string
	UserAgent        string
	CloudflareBypass bool
	ProxyURL         string
	Timeout          time.Duration
}

func DefaultConfig() *Config {
	return &Config{
		Listen:   ":8787",
		Upstream: comics.Upstream,
		ProxyURL: "http://localhost:8787",
	}
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// LoadMerged resolves the effective config: the active profile (or the
// built-in defaults), then MANGASO_* environment variables, then flags.
// The second return value describes where the config came from.
func LoadMerged(opts Options) (*Config, string, error) {
	if opts.IgnoreConfig {
		cfg, err := fromEnv(opts)
		return cfg, "(ignored config)", err
	}

	activePath, err := ActiveConfigPath()
	if errors.Is(err, ErrNoConfig) || activePath == "" {
		cfg, err := fromEnv(opts)
		return cfg, "(default config in memory)\nRun `mangaso config init` to create an actual config\n", err
	}
	if err != nil {
		return nil, "", err
	}

	var cfg Config
	if err := cleanenv.ReadConfig(activePath, &cfg); err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", activePath, err)
	}

	mergeConfig(&cfg, opts)
	normalizeDefaults(&cfg)

	return &cfg, activePath, nil
}

func fromEnv(opts Options) (*Config, error) {
	cfg := DefaultConfig()
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	mergeConfig(cfg, opts)
	normalizeDefaults(cfg)

	return cfg, nil
}

func mergeConfig(c *Config, o Options) {
	if o.Debug {
		c.Debug = true
	}
	if o.Listen != "" {
		c.Listen = o.Listen
	}
	if o.Upstream != "" {
		c.Upstream = o.Upstream
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
	if o.CloudflareBypass {
		c.CloudflareBypass = true
	}
	if o.ProxyURL != "" {
		c.ProxyURL = o.ProxyURL
	}
	if o.Timeout != 0 {
		c.Timeout = o.Timeout
	}
}

func normalizeDefaults(c *Config) {
	def := DefaultConfig()
	if c.Listen == "" {
		c.Listen = def.Listen
	}
	if c.Upstream == "" {
		c.Upstream = def.Upstream
	}
	if c.ProxyURL == "" {
		c.ProxyURL = def.ProxyURL
	}
}

func (c *Config) Print() {
	fmt.Printf(" -listen: %s\n", c.Listen)
	fmt.Printf(" -upstream: %s\n", c.Upstream)
	fmt.Printf(" -proxy_url: %s\n", c.ProxyURL)
	if c.UserAgent != "" {
		fmt.Printf(" -user_agent: %s\n", c.UserAgent)
	}
	if c.CloudflareBypass {
		fmt.Printf(" -cloudflare_bypass: %t\n", c.CloudflareBypass)
	}
	if c.Timeout != 0 {
		fmt.Printf(" -timeout: %s\n", c.Timeout)
	}
	if c.Debug {
		fmt.Printf(" -debug: %t\n", c.Debug)
	}
}
