// budgetlens is an MCP server that parses bank-statement PDFs with a
// multimodal model and tracks the results in a Google Sheet.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/budgetlens-dev/budgetlens/internal/common"
	"github.com/budgetlens-dev/budgetlens/internal/config"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "budgetlens",
		Short: "Bank statement parsing and budget tracking over MCP",
		Long: `budgetlens exposes a set of MCP tools that let an AI assistant read
bank-statement PDFs from Google Drive, extract their transactions with
Gemini, store them in a Google Sheet, and answer questions about spending.`,
		PersistentPreRunE: initConfig,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/budgetlens/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")

	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(authCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	if err := config.Init(cfgFile); err != nil {
		return err
	}

	common.SetupLogger(
		common.ParseLevel(viper.GetString("logging.level")),
		viper.GetString("logging.format"),
	)
	slog.Debug("configuration loaded", "config_file", viper.ConfigFileUsed())

	return nil
}
