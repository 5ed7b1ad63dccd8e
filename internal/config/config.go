package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server Server `yaml:"server"`
	CORS   CORS   `yaml:"cors"`
	Market Market `yaml:"market"`
	Client Client `yaml:"client"`
	Store  Store  `yaml:"store"`
}

type Server struct {
	Port int `yaml:"port"`
}

type CORS struct {
	FrontendOrigin string `yaml:"frontend_origin"`
}

type Market struct {
	TimeoutMs    int `yaml:"timeout_ms"`
	CacheTTLSec  int `yaml:"cache_ttl_sec"`
	BatchSize    int `yaml:"batch_size"`
	BatchPauseMs int `yaml:"batch_pause_ms"`
}

type Client struct {
	APIBaseURL         string `yaml:"api_base_url"`
	RefreshIntervalSec int    `yaml:"refresh_interval_sec"`
}

type Store struct {
	Sqlite Sqlite `yaml:"sqlite"`
}

type Sqlite struct {
	Path string `yaml:"path"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Config{
		Server: Server{Port: 4010},
		Market: Market{
			TimeoutMs:    5000,
			CacheTTLSec:  10,
			BatchSize:    5,
			BatchPauseMs: 500,
		},
		Client: Client{
			APIBaseURL:         "http://localhost:4010",
			RefreshIntervalSec: 15,
		},
		Store: Store{
			Sqlite: Sqlite{Path: "data/portfolio.db"},
		},
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p <= 0 || p > 65535 {
			return fmt.Errorf("invalid PORT: %q", v)
		}
		cfg.Server.Port = p
	}
	if v := os.Getenv("FRONTEND_URL"); v != "" {
		cfg.CORS.FrontendOrigin = v
	}
	if v := os.Getenv("API_BASE_URL"); v != "" {
		cfg.Client.APIBaseURL = v
	}
	return nil
}
