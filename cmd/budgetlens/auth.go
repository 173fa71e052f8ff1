package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/budgetlens-dev/budgetlens/internal/config"
	"github.com/budgetlens-dev/budgetlens/internal/googleauth"
)

func authCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Authenticate with Google Drive and Sheets",
		Long: `Runs the interactive OAuth flow and caches the resulting token. Run this
once before starting the server; the cached token is refreshed
automatically afterwards.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			manager, err := googleauth.NewManager(cfg.CredentialsPath, cfg.TokenPath, slog.Default())
			if err != nil {
				return err
			}

			return manager.AuthenticateInteractive(cmd.Context())
		},
	}
}
