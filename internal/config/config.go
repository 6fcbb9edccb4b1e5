package config

import (
	"os"
	"strconv"
)

type Config struct {
	Server   ServerConfig   `json:"server"`
	Matching MatchingConfig `json:"matching"`
	Units    UnitsConfig    `json:"units"`
	Pricing  PricingConfig  `json:"pricing"`
}

type ServerConfig struct {
	Addr string `json:"addr"`
}

type MatchingConfig struct {
	// Threshold is the fuzzy similarity score (0-100) at which two
	// ingredient names are grouped.
	Threshold int `json:"threshold"`
}

type UnitsConfig struct {
	// ExactOnly disables cross-unit conversion: quantities are summed per
	// exact unit instead. Chosen at startup so both modes are
	// deterministic under test.
	ExactOnly bool `json:"exact_only"`
}

type PricingConfig struct {
	// Endpoint of the store price API. Empty means estimate from the
	// category heuristic only.
	Endpoint string `json:"endpoint"`
	APIKey   string `json:"api_key"`
}

func Load() (*Config, error) {
	threshold := 85
	if v := os.Getenv("MATCH_THRESHOLD"); v != "" {
		t, err := strconv.Atoi(v)
		if err != nil || t < 0 || t > 100 {
			return nil, &InvalidError{Key: "MATCH_THRESHOLD", Value: v}
		}
		threshold = t
	}

	config := &Config{
		Server: ServerConfig{
			Addr: getEnvOrDefault("ADDR", ":8080"),
		},
		Matching: MatchingConfig{
			Threshold: threshold,
		},
		Units: UnitsConfig{
			ExactOnly: os.Getenv("UNITS_EXACT_ONLY") == "true",
		},
		Pricing: PricingConfig{
			Endpoint: os.Getenv("PRICE_API_ENDPOINT"),
			APIKey:   os.Getenv("PRICE_API_KEY"),
		},
	}

	return config, nil
}

type InvalidError struct {
	Key   string
	Value string
}

func (e *InvalidError) Error() string {
	return "invalid value for " + e.Key + ": " + e.Value
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
