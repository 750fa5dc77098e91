// Package cli implements the oura command line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arvarik/oura-go/internal/config"
	"github.com/arvarik/oura-go/internal/logging"
	"github.com/arvarik/oura-go/oura"
)

var (
	cfgFile    string
	token      string
	baseURL    string
	logLevel   string
	logFormat  string
	jsonOutput bool

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "oura",
	Short: "oura is a command line client for the Oura Ring API",
	Long: `oura fetches health records from the Oura Ring REST API v2.

A personal access token is required for all commands that talk to the API.
Set it with --token, the OURA_ACCESS_TOKEN environment variable, a .env
file, or access_token in ~/.oura/config.yaml.`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}

func setup(_ *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Flags take precedence over environment and file values.
	if token != "" {
		cfg.AccessToken = token
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}

	logger = logging.NewLogger(cfg.LogLevel, cfg.LogFormat)
	return nil
}

// newAPIClient builds an API client from the resolved configuration.
func newAPIClient() (*oura.Client, error) {
	if cfg.AccessToken == "" {
		return nil, fmt.Errorf("no access token: set --token, OURA_ACCESS_TOKEN, or access_token in the config file")
	}
	return oura.NewClient(
		oura.WithToken(cfg.AccessToken),
		oura.WithBaseURL(cfg.BaseURL),
		oura.WithLogger(logger),
	), nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.oura/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "personal access token")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "API base URL")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text, json)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print raw JSON instead of tables")
}
