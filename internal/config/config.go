package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Site struct {
	BaseURL string `yaml:"base_url"`
}

type Config struct {
	App struct {
		UserAgent string `yaml:"user_agent"`
		LogLevel  string `yaml:"log_level"`
	} `yaml:"app"`

	HTTP struct {
		TimeoutSeconds    int     `yaml:"timeout_seconds"`
		RequestsPerSecond float64 `yaml:"requests_per_second"`
		Burst             int     `yaml:"burst"`
	} `yaml:"http"`

	Defaults struct {
		Site       string `yaml:"site"`
		Days       int    `yaml:"days"`
		MaxResults int    `yaml:"max_results"`
	} `yaml:"defaults"`

	Sites map[string]Site `yaml:"sites"`
}

func Default() Config {
	var cfg Config
	cfg.App.UserAgent = "jobscout/1.0 (+local)"
	cfg.App.LogLevel = "info"
	cfg.HTTP.TimeoutSeconds = 10
	cfg.HTTP.RequestsPerSecond = 2
	cfg.HTTP.Burst = 1
	cfg.Defaults.Site = "themuse"
	cfg.Defaults.Days = 7
	cfg.Defaults.MaxResults = 50
	cfg.Sites = map[string]Site{
		"themuse":  {BaseURL: "https://www.themuse.com"},
		"remotive": {BaseURL: "https://remotive.com"},
	}
	return cfg
}

// Load reads the optional yaml config and applies environment overrides.
// An empty path falls back to JOBSCOUT_CONFIG; if that is empty too, the
// built-in defaults are used as-is.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path == "" {
		path = os.Getenv("JOBSCOUT_CONFIG")
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	// a config file may list sites without repeating base URLs
	def := Default()
	for name, site := range def.Sites {
		if s, ok := cfg.Sites[name]; !ok || s.BaseURL == "" {
			if cfg.Sites == nil {
				cfg.Sites = map[string]Site{}
			}
			cfg.Sites[name] = site
		}
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if ua := os.Getenv("JOBSCOUT_USER_AGENT"); ua != "" {
		cfg.App.UserAgent = ua
	}
	if lvl := os.Getenv("JOBSCOUT_LOG_LEVEL"); lvl != "" {
		cfg.App.LogLevel = lvl
	}
	if t := os.Getenv("JOBSCOUT_TIMEOUT_SECONDS"); t != "" {
		if secs, err := strconv.Atoi(t); err == nil && secs > 0 {
			cfg.HTTP.TimeoutSeconds = secs
		}
	}
}

func (c Config) Timeout() time.Duration {
	secs := c.HTTP.TimeoutSeconds
	if secs <= 0 {
		secs = 10
	}
	return time.Duration(secs) * time.Second
}

// SiteBaseURL returns the configured base URL for a site, or "" so the
// scraper falls back to its built-in endpoint.
func (c Config) SiteBaseURL(name string) string {
	return c.Sites[name].BaseURL
}
