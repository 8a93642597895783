package main

import (
	"os"

	"github.com/spf13/cobra"

	"pepperminto/internal/interfaces/cli/migrate"
	"pepperminto/internal/interfaces/cli/server"
)

// @title Pepperminto API
// @version 1.0
// @description Helpdesk and ticketing API.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:   "pepperminto",
		Short: "Pepperminto - helpdesk and ticketing server",
		Long:  `Pepperminto serves the helpdesk REST API, converts incoming email into tickets, and hosts the public knowledge base.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
