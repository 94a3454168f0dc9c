// Command bandcheck is the terminal interface to the band compatibility
// checker: analyze pasted spec text, browse history, compare devices,
// and export comparisons to CSV.
package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bandcheck/bandcheck/internal/analysis"
	"github.com/bandcheck/bandcheck/internal/bands"
	"github.com/bandcheck/bandcheck/internal/config"
	"github.com/bandcheck/bandcheck/internal/repository/sqlite"
)

var (
	dbPath  string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "bandcheck",
	Short: "Cell phone band compatibility checker",
	Long: `bandcheck extracts 4G/LTE and 5G NR band numbers from pasted device
spec text and checks them against US carrier band requirements.

Analyses are kept in a local history database so devices can be
compared and ranked per carrier.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "history database path (default from DATABASE_PATH)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(carriersCmd)
}

// openService wires the service against the history database. The caller
// closes the returned handle.
func openService() (analysis.Service, *sql.DB, error) {
	path := dbPath
	if path == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		path = cfg.Database.Path
	}

	db, err := sqlite.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open history database %s: %w", path, err)
	}

	repo := sqlite.NewSQLiteAnalysisRepository(db)
	return analysis.NewService(repo, bands.DefaultCarriers()), db, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
