package hadatetime

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults applied when the environment or config file leaves a value unset
const (
	DefaultBaseURL  = "https://my-home-assistant.local:8123"
	DefaultTimezone = "Europe/London"
	DefaultLogLevel = "info"
)

type Config struct {
	BaseURL    string `yaml:"baseUrl"`
	APIToken   string `yaml:"apiToken"`
	SensorName string `yaml:"sensorName"`
	Timezone   string `yaml:"timezone"`
	LogLevel   string `yaml:"logLevel"`
}

// Read environment variables
func LoadConfig() Config {
	return Config{
		BaseURL:    getEnv("HA_URL", DefaultBaseURL),
		APIToken:   getEnv("HA_API_TOKEN", ""),
		SensorName: getEnv("HA_DATE_TIME_SENSOR_NAME", ""),
		Timezone:   getEnv("HA_TIMEZONE", DefaultTimezone),
		LogLevel:   getEnv("LOG_LEVEL", DefaultLogLevel),
	}
}

// Read a YAML config file, keeping the usual defaults for absent keys
func ReadConfig(path string) (Config, error) {
	cfg := Config{
		BaseURL:  DefaultBaseURL,
		Timezone: DefaultTimezone,
		LogLevel: DefaultLogLevel,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// Copy with surrounding whitespace removed from every value
func (c Config) trimmed() Config {
	c.BaseURL = strings.TrimSpace(c.BaseURL)
	c.APIToken = strings.TrimSpace(c.APIToken)
	c.SensorName = strings.TrimSpace(c.SensorName)
	c.Timezone = strings.TrimSpace(c.Timezone)
	c.LogLevel = strings.TrimSpace(c.LogLevel)
	return c
}

// Name the first required field without a value, empty string if none missing
func (c Config) missing() string {
	switch {
	case c.BaseURL == "":
		return "base URL"
	case c.APIToken == "":
		return "API token"
	case c.SensorName == "":
		return "sensor name"
	}
	return ""
}

// Get a string env variable
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
