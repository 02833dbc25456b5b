package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration. It is parsed once at startup and
// never mutated afterwards; everything that needs a value receives it
// explicitly.
type Config struct {
	// Server configuration
	HTTPPort  string `env:"WEBSCRAPER_HTTP_PORT" envDefault:"8080"`
	LogLevel  string `env:"WEBSCRAPER_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"WEBSCRAPER_LOG_FORMAT" envDefault:"json"` // json or console

	// Google Custom Search credentials and endpoint
	SearchAPIKey   string `env:"GOOGLE_SEARCH_API_KEY"`
	SearchEngineID string `env:"GOOGLE_SEARCH_ENGINE_ID"`
	SearchBaseURL  string `env:"GOOGLE_SEARCH_BASE_URL" envDefault:"https://www.googleapis.com/customsearch/v1"`

	// Outbound HTTP timeouts in seconds
	SearchTimeout int `env:"WEBSCRAPER_SEARCH_TIMEOUT" envDefault:"15"`
	FetchTimeout  int `env:"WEBSCRAPER_FETCH_TIMEOUT" envDefault:"30"`

	// Action-group function schema served for orchestrator setup
	FunctionsFile string `env:"WEBSCRAPER_FUNCTIONS_FILE" envDefault:"configs/functions.yml"`
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(os.Getenv("WEBSCRAPER_LOG_LEVEL")) == "" {
		if global := strings.TrimSpace(os.Getenv("LOG_LEVEL")); global != "" {
			cfg.LogLevel = global
		}
	}
	if strings.TrimSpace(os.Getenv("WEBSCRAPER_LOG_FORMAT")) == "" {
		if global := strings.TrimSpace(os.Getenv("LOG_FORMAT")); global != "" {
			cfg.LogFormat = global
		}
	}

	if strings.TrimSpace(cfg.SearchAPIKey) == "" {
		return nil, fmt.Errorf("GOOGLE_SEARCH_API_KEY is required")
	}
	if strings.TrimSpace(cfg.SearchEngineID) == "" {
		return nil, fmt.Errorf("GOOGLE_SEARCH_ENGINE_ID is required")
	}

	return cfg, nil
}
