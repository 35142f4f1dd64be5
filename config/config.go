package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Gemini  GeminiConfig
	Shopify ShopifyConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// GeminiConfig holds generative model configuration. APIKeys is ordered:
// the first key is the preferred credential, later keys are failover.
type GeminiConfig struct {
	APIKeys        []string      `mapstructure:"api_keys"`
	Model          string        `mapstructure:"model"`
	AttemptTimeout time.Duration `mapstructure:"attempt_timeout"`
}

// ShopifyConfig holds storefront catalog API configuration
type ShopifyConfig struct {
	StoreDomain     string `mapstructure:"store_domain"`
	StorefrontToken string `mapstructure:"storefront_token"`
	APIVersion      string `mapstructure:"api_version"`
	PageSize        int    `mapstructure:"page_size"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/dermalens/")

	// Environment variable settings
	v.SetEnvPrefix("DERMALENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Env vars deliver list values as a single comma-separated string
	config.Gemini.APIKeys = splitList(config.Gemini.APIKeys)
	config.Server.AllowedOrigins = splitList(config.Server.AllowedOrigins)

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Gemini defaults. The empty api_keys default registers the key with
	// viper so the env var is visible to Unmarshal.
	v.SetDefault("gemini.api_keys", []string{})
	v.SetDefault("gemini.model", "gemini-2.0-flash")
	v.SetDefault("gemini.attempt_timeout", "60s")

	// Shopify defaults
	v.SetDefault("shopify.store_domain", "")
	v.SetDefault("shopify.storefront_token", "")
	v.SetDefault("shopify.api_version", "2024-07")
	v.SetDefault("shopify.page_size", 250)
}

// splitList expands single comma-separated entries into separate values
func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}

// validate validates the configuration
func validate(config *Config) error {
	if len(config.Gemini.APIKeys) == 0 {
		return fmt.Errorf("at least one Gemini API key is required (set DERMALENS_GEMINI_API_KEYS)")
	}

	if config.Shopify.StoreDomain == "" {
		return fmt.Errorf("Shopify store domain is required (set DERMALENS_SHOPIFY_STORE_DOMAIN)")
	}

	if config.Shopify.StorefrontToken == "" {
		return fmt.Errorf("Shopify storefront token is required (set DERMALENS_SHOPIFY_STOREFRONT_TOKEN)")
	}

	if config.Shopify.PageSize < 1 || config.Shopify.PageSize > 250 {
		return fmt.Errorf("Shopify page size must be between 1 and 250, got: %d", config.Shopify.PageSize)
	}

	if config.Gemini.AttemptTimeout <= 0 {
		return fmt.Errorf("Gemini attempt timeout must be positive, got: %s", config.Gemini.AttemptTimeout)
	}

	return nil
}
