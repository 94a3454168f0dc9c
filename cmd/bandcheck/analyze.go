package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var analyzeModel string

var analyzeCmd = &cobra.Command{
	Use:   "analyze [band text]",
	Short: "Analyze device band text against the carrier table",
	Long: `Extracts LTE and 5G NR bands from the given text and reports carrier
compatibility. Text is taken from the arguments, or from stdin when no
arguments are given (paste, then Ctrl-D):

  bandcheck analyze --model "Pixel 9" "5G n77, 4G B2, B4"
  pbpaste | bandcheck analyze --model "Pixel 9"`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeModel, "model", "m", "", "device model name")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if text == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(data)
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("no band text given")
	}

	svc, db, err := openService()
	if err != nil {
		return err
	}
	defer db.Close()

	record, duplicate, err := svc.Analyze(cmd.Context(), analyzeModel, text)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if duplicate {
		fmt.Fprintln(out, "Note: this model and band combination was already analyzed; showing the stored result.")
	}
	printReport(out, record, svc.Rank(record))

	if len(record.LTEBands) == 0 && len(record.NRBands) == 0 {
		fmt.Fprintln(out, "\nNo LTE or 5G bands could be extracted from the provided text.")
		fmt.Fprintln(out, "Ensure the text contains band numbers in formats like 'B1', 'LTE 66', or 'n41'.")
	}
	return nil
}
