package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// CORSProxyURL prefixes outbound requests when the proxy is enabled.
	CORSProxyURL = "https://cors.deno.dev"
	// SoundSrc is a sample playable preview from the audio archive.
	SoundSrc = "https://cdn.freesound.org/previews/153/153140_2364561-lq.ogg"

	APIKeyEnv = "FREESOUND_API_KEY"
)

type Config struct {
	Images   ImagesConfig   `yaml:"images"`
	Sounds   SoundsConfig   `yaml:"sounds"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	Watch    WatchConfig    `yaml:"watch"`
	LogLevel string         `yaml:"log_level"`
}

type ImagesConfig struct {
	BaseURL  string        `yaml:"base_url"`
	UseProxy bool          `yaml:"use_proxy"`
	Timeout  time.Duration `yaml:"timeout"`
}

// ProxyURL returns the proxy prefix, or "" when the proxy is disabled.
func (c ImagesConfig) ProxyURL() string {
	if !c.UseProxy {
		return ""
	}
	return CORSProxyURL
}

type SoundsConfig struct {
	BaseURL        string        `yaml:"base_url"`
	APIKey         string        `yaml:"api_key"`
	SearchPrefix   string        `yaml:"search_prefix"`
	Timeout        time.Duration `yaml:"timeout"`
	ResolveWorkers int           `yaml:"resolve_workers"`
}

// RabbitMQConfig configures the state publisher. An empty URL disables it.
type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

type WatchConfig struct {
	Interval   time.Duration `yaml:"interval"`
	RunTimeout time.Duration `yaml:"run_timeout"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	return Parse(data)
}

// Parse expands environment references in data and decodes it.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Images.BaseURL == "" {
		c.Images.BaseURL = "https://images-api.nasa.gov"
	}
	if c.Images.Timeout == 0 {
		c.Images.Timeout = 30 * time.Second
	}
	if c.Sounds.BaseURL == "" {
		c.Sounds.BaseURL = "https://freesound.org/apiv2"
	}
	if c.Sounds.APIKey == "" {
		c.Sounds.APIKey = os.Getenv(APIKeyEnv)
	}
	if c.Sounds.SearchPrefix == "" {
		c.Sounds.SearchPrefix = "ambient"
	}
	if c.Sounds.Timeout == 0 {
		c.Sounds.Timeout = 30 * time.Second
	}
	if c.Sounds.ResolveWorkers == 0 {
		c.Sounds.ResolveWorkers = 4
	}
	if c.RabbitMQ.URL != "" {
		if c.RabbitMQ.Exchange == "" {
			c.RabbitMQ.Exchange = "media_explorer"
		}
		if c.RabbitMQ.RoutingKey == "" {
			c.RabbitMQ.RoutingKey = "state"
		}
		if c.RabbitMQ.QueueName == "" {
			c.RabbitMQ.QueueName = "media_explorer_state"
		}
	}
	if c.Watch.Interval == 0 {
		c.Watch.Interval = 5 * time.Minute
	}
	if c.Watch.RunTimeout == 0 {
		c.Watch.RunTimeout = time.Minute
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
