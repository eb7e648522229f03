package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/openpress/newsroom/internal/cli"
	"github.com/openpress/newsroom/internal/config"
	"github.com/openpress/newsroom/internal/entrypoint"
)

// Populated at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "newsroom",
		Short: "News CMS with WordPress and CSV import pipelines",
		Run: func(cmd *cobra.Command, args []string) {
			entrypoint.Run(config.NewConfig(), Version)
		},
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default)",
		Run: func(cmd *cobra.Command, args []string) {
			entrypoint.Run(config.NewConfig(), Version)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("newsroom %s (%s)\n", Version, Commit)
		},
	})

	rootCmd.AddCommand(cli.NewWordPressImportCommand())
	rootCmd.AddCommand(cli.NewCSVImportCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
