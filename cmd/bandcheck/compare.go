package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/bandcheck/bandcheck/internal/export"
)

var compareCmd = &cobra.Command{
	Use:   "compare <id> <id> [id...]",
	Short: "Compare two or more stored analyses",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, db, err := openService()
		if err != nil {
			return err
		}
		defer db.Close()

		ids, err := parseIDArgs(args)
		if err != nil {
			return err
		}

		cmp, err := svc.Compare(cmd.Context(), ids)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "=== Multi-device comparison ===")
		for _, m := range cmp.Metrics {
			fmt.Fprintf(out, "\n--- %s ---\n", m.Model)
			fmt.Fprintf(out, "  Detected bands: %d LTE, %d 5G\n", m.DetectedLTECount, m.DetectedNRCount)
			fmt.Fprintf(out, "  Supported LTE across carriers: %s\n", formatBands(m.OverallSupportedLTE))
			fmt.Fprintf(out, "  Supported 5G across carriers:  %s\n", formatBands(m.OverallSupportedNR))
			fmt.Fprintf(out, "  Total missing core LTE bands:  %d\n", m.TotalMissingCore)
		}

		fmt.Fprintln(out, "\n=== Per-carrier breakdown ===")
		for _, row := range cmp.Rows {
			fmt.Fprintf(out, "%-10s %-25s %5.1f pts  %s\n", row.Carrier, row.Model, row.Score, row.Status)
		}

		fmt.Fprintln(out, "\n=== Best performers ===")
		fmt.Fprintf(out, "Most supported LTE bands:     %s\n", strings.Join(cmp.BestLTE, ", "))
		fmt.Fprintf(out, "Most supported 5G bands:      %s\n", strings.Join(cmp.BestNR, ", "))
		fmt.Fprintf(out, "Best core LTE coverage:       %s\n", strings.Join(cmp.BestCoverage, ", "))
		return nil
	},
}

var bestCmd = &cobra.Command{
	Use:   "best <carrier>",
	Short: "Find the best analyzed device for a carrier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, db, err := openService()
		if err != nil {
			return err
		}
		defer db.Close()

		best, err := svc.BestDevice(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "=== Best device for %s ===\n", best.Carrier)
		fmt.Fprintf(out, "%s (%.1f points, analyzed %s)\n",
			best.Analysis.Model, best.Score, best.Analysis.CreatedAt.Local().Format("2006-01-02"))
		fmt.Fprintln(out, "\nRanking:")
		for i, ds := range best.Ranking {
			fmt.Fprintf(out, "  #%d %s: %.1f points\n", i+1, ds.Model, ds.Score)
		}
		return nil
	},
}

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <id> <id> [id...]",
	Short: "Export a comparison of stored analyses to CSV",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, db, err := openService()
		if err != nil {
			return err
		}
		defer db.Close()

		ids, err := parseIDArgs(args)
		if err != nil {
			return err
		}

		cmp, err := svc.Compare(cmd.Context(), ids)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if exportOut != "" {
			f, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", exportOut, err)
			}
			defer f.Close()
			w = f
		}
		if err := export.WriteComparison(w, cmp); err != nil {
			return fmt.Errorf("failed to write CSV: %w", err)
		}
		if exportOut != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Comparison exported to %s\n", exportOut)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
}

func parseIDArgs(args []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(args))
	for _, arg := range args {
		id, err := uuid.Parse(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid analysis ID %q: %w", arg, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
