package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored analyses, oldest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, db, err := openService()
		if err != nil {
			return err
		}
		defer db.Close()

		records, err := svc.History(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(records) == 0 {
			fmt.Fprintln(out, "No analyses in history.")
			return nil
		}
		for _, record := range records {
			fmt.Fprintf(out, "%s  %s  %s  (%d LTE, %d 5G)\n",
				record.ID,
				record.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				record.Model,
				len(record.LTEBands),
				len(record.NRBands))
		}
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id> [id...]",
	Short: "Delete stored analyses",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, db, err := openService()
		if err != nil {
			return err
		}
		defer db.Close()

		for _, arg := range args {
			id, err := uuid.Parse(arg)
			if err != nil {
				return fmt.Errorf("invalid analysis ID %q: %w", arg, err)
			}
			if err := svc.Delete(cmd.Context(), id); err != nil {
				return fmt.Errorf("failed to delete %s: %w", arg, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", arg)
		}
		return nil
	},
}

var carriersCmd = &cobra.Command{
	Use:   "carriers",
	Short: "Show the carrier band requirement table",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, db, err := openService()
		if err != nil {
			return err
		}
		defer db.Close()

		out := cmd.OutOrStdout()
		for _, c := range svc.Carriers() {
			fmt.Fprintf(out, "%s\n", c.Name)
			fmt.Fprintf(out, "  LTE bands:      %v\n", c.LTE)
			fmt.Fprintf(out, "  Core LTE bands: %v\n", c.CoreLTE)
			fmt.Fprintf(out, "  5G bands:       %v\n", c.NR)
		}
		return nil
	},
}
