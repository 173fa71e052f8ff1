package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/budgetlens-dev/budgetlens/internal/config"
	"github.com/budgetlens-dev/budgetlens/internal/server"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server over stdio",
		Long: `Starts the MCP server on stdin/stdout. This is the command an MCP host
(e.g. Claude Desktop) should be configured to launch. All logging goes to
stderr; stdout carries the protocol.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			srv, err := server.New(cmd.Context(), cfg, slog.Default())
			if err != nil {
				return err
			}

			return srv.Run()
		},
	}
}
