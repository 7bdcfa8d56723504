package config

import (
	"errors"
	"fmt"
	"io/fs"
	"mssos-scraper/internal/scrapers/mssos"
	"mssos-scraper/lib/configutil"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	ENV_STATE    = "STATE"
	ENV_BASE_URL = "MSSOS_BASE_URL"
)

type Config struct {
	// State is stamped into every record the scraper produces.
	State            string `json:"state" validate:"required"`
	BaseUrl          string `json:"base_url" validate:"required,url"`
	TimeoutSeconds   int    `json:"timeout_seconds" validate:"gte=0"`
	BypassCloudflare bool   `json:"bypass_cloudflare"`
}

var validate = validator.New()

// Load reads the optional json5 config at path, then the optional .env file
// in the cwd, then applies environment overrides and defaults. The result is
// validated before it is returned.
func Load(path string) (Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg, err := configutil.ReadConfig[Config](path)
	if err != nil && !errors.Is(err, configutil.ErrNotFound) {
		return Config{}, err
	}

	return finalize(cfg)
}

func finalize(cfg Config) (Config, error) {
	if state := os.Getenv(ENV_STATE); state != "" {
		cfg.State = state
	}
	if baseUrl := os.Getenv(ENV_BASE_URL); baseUrl != "" {
		cfg.BaseUrl = baseUrl
	}
	if cfg.BaseUrl == "" {
		cfg.BaseUrl = mssos.DEFAULT_BASE_URL
	}
	if cfg.TimeoutSeconds == 0 {
		cfg.TimeoutSeconds = 30
	}

	err := validate.Struct(cfg)
	if err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c Config) ScraperOptions() mssos.Options {
	return mssos.Options{
		State:            c.State,
		BaseUrl:          c.BaseUrl,
		Timeout:          time.Duration(c.TimeoutSeconds) * time.Second,
		BypassCloudflare: c.BypassCloudflare,
	}
}
