package core

import (
	"fmt"
	"strings"
)

const defaultAPIBaseURL = "https://openapi.etsy.com/v2"

// Config is the full set of options recognized by the signing core. Nothing
// else affects signature computation or the exchange protocol.
type Config struct {
	ConsumerKey    string `koanf:"consumer_key" mapstructure:"consumer_key"`
	ConsumerSecret string `koanf:"consumer_secret" mapstructure:"consumer_secret"`
	RetryAttempts  int    `koanf:"retry_attempts" mapstructure:"retry_attempts"`
	APIBaseURL     string `koanf:"api_base_url" mapstructure:"api_base_url"`
}

func DefaultConfig() Config {
	return Config{
		RetryAttempts: 3,
		APIBaseURL:    defaultAPIBaseURL,
	}
}

func (c Config) Validate() error {
	if c.RetryAttempts < 0 {
		return fmt.Errorf("core: retry_attempts must be zero or greater")
	}
	if strings.TrimSpace(c.APIBaseURL) == "" {
		return fmt.Errorf("core: api_base_url is required")
	}
	return nil
}
