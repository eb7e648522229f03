package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/openpress/newsroom/internal/config"
	"github.com/openpress/newsroom/internal/database"
	"github.com/openpress/newsroom/internal/importer"
)

// NewCSVImportCommand builds the csv-import command.
func NewCSVImportCommand() *cobra.Command {
	var (
		filePath     string
		verbose      bool
		databasePath string
	)

	cmd := &cobra.Command{
		Use:          "csv-import",
		Short:        "Import articles from a CSV or TSV export file",
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

			f, err := os.Open(filePath)
			if err != nil {
				return fmt.Errorf("failed to open import file: %w", err)
			}
			defer f.Close()

			fmt.Println("CSV Import")
			fmt.Println("==========")
			fmt.Printf("File: %s\n", filePath)
			fmt.Printf("Database: %s\n\n", absDBPath)

			ci := importer.NewCSVImporter(db.DB, cliLogger(verbose))
			result, err := ci.Import(f)
			if err != nil {
				return err
			}

			fmt.Printf("Imported: %d\n", result.Success)
			fmt.Printf("Failed:   %d\n", result.Failed)
			for _, rowErr := range result.Errors {
				fmt.Printf("  %s\n", rowErr)
			}

			if result.Failed > 0 {
				return fmt.Errorf("%d rows failed to import", result.Failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Path to the CSV/TSV file (required)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.Flags().StringVar(&databasePath, "db", config.DefaultDatabasePath, "Path to the local database file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
