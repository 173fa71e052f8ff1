package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/budgetlens-dev/budgetlens/internal/server"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("budgetlens %s\n", server.Version)
		},
	}
}
