// Package config provides configuration management for the zakat command.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	zakat "github.com/IRedDragonICY/zakat-calculator"
	"github.com/joho/godotenv"
)

// Output formats understood by the report package.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds application configuration
type Config struct {
	GoldPrice   string // price per gram of gold, decimal string
	SilverPrice string // price per gram of silver, decimal string
	Currency    string // display currency code
	NisabMetal  string // "silver" or "gold"
	Format      string // text, json or yaml
	LogLevel    string
	LogPretty   bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	defaults := zakat.DefaultMetalPrices()
	cfg := &Config{
		GoldPrice:   getEnv("ZAKAT_GOLD_PRICE", defaults.Gold.String()),
		SilverPrice: getEnv("ZAKAT_SILVER_PRICE", defaults.Silver.String()),
		Currency:    getEnv("ZAKAT_CURRENCY", string(zakat.USD)),
		NisabMetal:  getEnv("ZAKAT_NISAB_METAL", zakat.SilverStr),
		Format:      getEnv("ZAKAT_FORMAT", FormatText),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogPretty:   getEnvAsBool("LOG_PRETTY", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that every value can be used by the calculator
func (c *Config) Validate() error {
	if _, err := c.Prices(); err != nil {
		return err
	}
	if _, err := zakat.ParseCurrency(c.Currency); err != nil {
		return fmt.Errorf("ZAKAT_CURRENCY: %w", err)
	}
	if _, err := zakat.ParseMetal(c.NisabMetal); err != nil {
		return fmt.Errorf("ZAKAT_NISAB_METAL: %w", err)
	}
	switch strings.ToLower(c.Format) {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("ZAKAT_FORMAT: unsupported format %q", c.Format)
	}
	return nil
}

// Prices parses the configured metal prices.
func (c *Config) Prices() (zakat.MetalPrices, error) {
	prices, err := zakat.NewMetalPrices(c.GoldPrice, c.SilverPrice)
	if err != nil {
		return zakat.MetalPrices{}, fmt.Errorf("metal prices: %w", err)
	}
	if prices.Gold.IsNegative() || prices.Silver.IsNegative() {
		return zakat.MetalPrices{}, fmt.Errorf("metal prices: must not be negative")
	}
	return prices, nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
