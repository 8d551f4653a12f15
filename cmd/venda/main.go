package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/venda-inc/venda/internal/interfaces/cli/migrate"
	"github.com/venda-inc/venda/internal/interfaces/cli/seed"
	"github.com/venda-inc/venda/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "venda",
		Short: "Venda - point of sale administration service",
		Long:  `Venda is the back office for a point of sale: catalog, sales, users and reports.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
