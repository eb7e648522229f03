// Package cli hosts the command-line entry points for running imports
// without the HTTP server.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/openpress/newsroom/internal/config"
	"github.com/openpress/newsroom/internal/database"
	"github.com/openpress/newsroom/internal/importer"
	"github.com/openpress/newsroom/internal/wordpress"
)

// NewWordPressImportCommand builds the wordpress-import command.
func NewWordPressImportCommand() *cobra.Command {
	var (
		sourceURL    string
		username     string
		password     string
		statuses     []string
		skipExisting bool
		verbose      bool
		databasePath string
	)

	cmd := &cobra.Command{
		Use:   "wordpress-import",
		Short: "Import users, categories and posts from a WordPress site",
		Long: `Import users, categories and posts from a WordPress site's REST API
into the local database.

Without credentials only publicly published posts are visible; supply an
application password with --username/--password to import drafts and
scheduled posts as well.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDBPath, err := filepath.Abs(databasePath)
			if err != nil {
				return fmt.Errorf("failed to resolve database path: %w", err)
			}

			db, err := database.NewDatabase(absDBPath)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer db.Close()

			log := cliLogger(verbose)

			client := wordpress.NewClient(wordpress.Config{
				BaseURL:  sourceURL,
				Username: username,
				Password: password,
			})

			fmt.Println("WordPress Import")
			fmt.Println("================")
			fmt.Printf("Source: %s\n", sourceURL)
			fmt.Printf("Database: %s\n\n", absDBPath)

			imp := importer.NewImporter(client, db.DB, log)
			report, err := imp.Run(cmd.Context(), importer.Options{
				Statuses:     statuses,
				SkipExisting: skipExisting,
			})
			if err != nil {
				return err
			}

			printReport(report, verbose)

			if report.HasFailures() {
				return fmt.Errorf("some items failed to import")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&sourceURL, "url", "u", "", "WordPress site URL (required)")
	cmd.Flags().StringVarP(&username, "username", "U", "", "WordPress username")
	cmd.Flags().StringVarP(&password, "password", "P", "", "WordPress application password")
	cmd.Flags().StringSliceVar(&statuses, "status", []string{"publish"}, "Post statuses to import (only effective with credentials)")
	cmd.Flags().BoolVar(&skipExisting, "skip-existing", false, "Leave existing records untouched instead of updating them")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.Flags().StringVar(&databasePath, "db", config.DefaultDatabasePath, "Path to the local database file")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}

func cliLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func printReport(report *importer.Report, verbose bool) {
	summary := report.Summary()

	fmt.Println("=== Import Summary ===")
	printPhase("Users", summary.Users)
	printPhase("Categories", summary.Categories)
	printPhase("Articles", summary.Articles)

	if verbose {
		for _, phase := range [][]importer.ItemResult{report.Users, report.Categories, report.Articles} {
			for _, item := range phase {
				if item.Success {
					fmt.Printf("  [OK] %s %q (%s)\n", item.Type, item.Title, item.Action)
				}
			}
		}
	}

	// Failures are always printed so a non-verbose run still explains a
	// non-zero exit.
	for _, phase := range [][]importer.ItemResult{report.Users, report.Categories, report.Articles} {
		for _, item := range phase {
			if !item.Success {
				fmt.Printf("  [ERROR] %s %d %q: %v\n", item.Type, item.ExternalID, item.Title, item.Errors)
			}
		}
	}
}

func printPhase(name string, s importer.PhaseSummary) {
	fmt.Printf("%s: %d total, %d created, %d updated, %d failed\n",
		name, s.Total, s.Created, s.Updated, s.Failed)
}
