package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config carries the CLI settings resolved from the config file, environment
// variables, and .env, in ascending precedence. Command-line flags override
// fields after loading.
type Config struct {
	AccessToken  string
	BaseURL      string
	LogLevel     string
	LogFormat    string
	DatabasePath string
}

// Load resolves the configuration. cfgFile, when non-empty, names an explicit
// config file and a failure to read it is an error; otherwise the default
// locations (~/.oura/config.yaml, ./config.yaml) are searched and a missing
// file is fine.
//
// Environment variables use the OURA_ prefix (OURA_ACCESS_TOKEN,
// OURA_BASE_URL, ...). PERSONAL_ACCESS_TOKEN is honored as a token fallback:
// it is the name Oura's own examples put in .env files.
func Load(cfgFile string) (*Config, error) {
	// A .env in the working directory feeds the environment before viper
	// reads it. Missing .env is the normal case.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("base_url", "https://api.ouraring.com")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("database", "oura.db")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".oura"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("OURA")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		AccessToken:  v.GetString("access_token"),
		BaseURL:      v.GetString("base_url"),
		LogLevel:     v.GetString("log_level"),
		LogFormat:    v.GetString("log_format"),
		DatabasePath: v.GetString("database"),
	}

	if cfg.AccessToken == "" {
		cfg.AccessToken = os.Getenv("PERSONAL_ACCESS_TOKEN")
	}

	return cfg, nil
}
