// Package config provides configuration utilities for the application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/budgetlens-dev/budgetlens/internal/common"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything the server needs at startup. The Gemini API key is
// required up front; the default spreadsheet id is only required at the point
// a store-touching tool runs without an explicit id.
type Config struct {
	GeminiAPIKey    string
	GeminiModel     string
	SpreadsheetID   string
	CredentialsPath string
	TokenPath       string
	LogLevel        string
	LogFormat       string
}

// Init wires viper to the environment and an optional config file. A .env
// file in the working directory is honored, matching how the server is
// typically launched by an MCP host with a bare environment.
func Init(cfgFile string) error {
	// Missing .env is fine; a malformed one is not.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		viper.AddConfigPath(filepath.Join(home, ".config", "budgetlens"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("BUDGETLENS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("google.credentials_path", "budgetlens_credentials.json")
	viper.SetDefault("google.token_path", "~/.config/budgetlens/token.json")
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "console")

	// Direct env names kept for parity with the usual Google/Gemini setup docs.
	_ = viper.BindEnv("gemini.api_key", "BUDGETLENS_GEMINI_API_KEY", "GEMINI_API_KEY")
	_ = viper.BindEnv("sheets.spreadsheet_id", "BUDGETLENS_SHEETS_SPREADSHEET_ID", "BUDGET_SHEET_ID")
	_ = viper.BindEnv("google.credentials_path", "BUDGETLENS_GOOGLE_CREDENTIALS_PATH", "GOOGLE_CREDENTIALS_PATH")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// No config file is fine, env vars cover everything.
	}

	return nil
}

// Load materializes the current viper state into a Config. The Gemini API
// key is validated here because the server cannot do anything useful
// without it.
func Load() (*Config, error) {
	cfg := &Config{
		GeminiAPIKey:    viper.GetString("gemini.api_key"),
		GeminiModel:     viper.GetString("gemini.model"),
		SpreadsheetID:   viper.GetString("sheets.spreadsheet_id"),
		CredentialsPath: ExpandPath(viper.GetString("google.credentials_path")),
		TokenPath:       ExpandPath(viper.GetString("google.token_path")),
		LogLevel:        viper.GetString("logging.level"),
		LogFormat:       viper.GetString("logging.format"),
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini.api_key (GEMINI_API_KEY)", common.ErrConfig)
	}

	return cfg, nil
}

// ResolveSpreadsheetID picks the explicit id when given, else the configured
// default. An empty result is a configuration error: the caller asked for a
// store operation with nowhere to point it.
func (c *Config) ResolveSpreadsheetID(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if c.SpreadsheetID != "" {
		return c.SpreadsheetID, nil
	}
	return "", fmt.Errorf("%w: sheets.spreadsheet_id (BUDGET_SHEET_ID)", common.ErrConfig)
}

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}
