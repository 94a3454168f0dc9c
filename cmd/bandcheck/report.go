package main

import (
	"fmt"
	"io"

	"github.com/bandcheck/bandcheck/internal/bands"
	"github.com/bandcheck/bandcheck/pkg/models"
)

// printReport renders one analysis as a plain-text carrier report, best
// carrier first.
func printReport(w io.Writer, record *models.AnalysisRecord, ranking []bands.RankedCarrier) {
	fmt.Fprintf(w, "=== Compatibility report for %s ===\n", record.Model)
	fmt.Fprintf(w, "Detected LTE bands: %s (%d total)\n", formatBands(record.LTEBands), len(record.LTEBands))
	fmt.Fprintf(w, "Detected 5G bands:  %s (%d total)\n", formatBands(record.NRBands), len(record.NRBands))

	for i, rc := range ranking {
		fmt.Fprintf(w, "\n----- #%d %s: %.1f points -----\n", i+1, rc.Carrier, rc.Score)
		fmt.Fprintf(w, "  Supported LTE bands: %s\n", formatBands(rc.Report.SupportedLTE))
		fmt.Fprintf(w, "  Missing LTE bands:   %s\n", formatMissing(rc.Report.MissingLTE))
		if len(rc.Report.MissingCoreLTE) > 0 {
			fmt.Fprintf(w, "  CRITICAL: missing core LTE bands: %s\n", formatBands(rc.Report.MissingCoreLTE))
		} else {
			fmt.Fprintln(w, "  All core LTE bands are supported.")
		}
		fmt.Fprintf(w, "  Supported 5G bands:  %s\n", formatBands(rc.Report.SupportedNR))
		fmt.Fprintf(w, "  Missing 5G bands:    %s\n", formatMissing(rc.Report.MissingNR))
	}
}

func formatBands(values []int) string {
	if len(values) == 0 {
		return "none"
	}
	return fmt.Sprint(values)
}

func formatMissing(values []int) string {
	if len(values) == 0 {
		return "none (all supported!)"
	}
	return fmt.Sprint(values)
}
