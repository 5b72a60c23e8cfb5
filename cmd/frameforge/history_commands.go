package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"frameforge/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Render history utilities",
	}

	historyCmd.AddCommand(newHistoryListCommand(ctx))
	historyCmd.AddCommand(newHistoryShowCommand(ctx))

	return historyCmd
}

func newHistoryListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent renders, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(store *history.Store) error {
				records, err := store.Recent(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, map[string]any{"records": records})
				}

				out := cmd.OutOrStdout()
				if len(records) == 0 {
					fmt.Fprintln(out, "No renders recorded")
					return nil
				}
				rows := make([][]string, 0, len(records))
				for _, rec := range records {
					rows = append(rows, []string{
						strconv.FormatInt(rec.ID, 10),
						rec.Template,
						fmt.Sprintf("%dx%d", rec.Width, rec.Height),
						rec.Duration.Round(time.Millisecond).String(),
						rec.CreatedAt.Local().Format("2006-01-02 15:04:05"),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"ID", "Template", "Size", "Duration", "Created"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum records to show (0 means 50)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit records as JSON")
	return cmd
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one render record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid record id %q", args[0])
			}
			return ctx.withHistory(func(store *history.Store) error {
				rec, err := store.GetByID(cmd.Context(), id)
				if err != nil {
					return err
				}
				if rec == nil {
					return fmt.Errorf("record %d not found", id)
				}
				if asJSON {
					return writeJSON(cmd, rec)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "ID:       %d\n", rec.ID)
				fmt.Fprintf(out, "Template: %s\n", rec.Template)
				fmt.Fprintf(out, "Output:   %s\n", rec.OutputPath)
				fmt.Fprintf(out, "Size:     %dx%d\n", rec.Width, rec.Height)
				fmt.Fprintf(out, "Duration: %s\n", rec.Duration.Round(time.Millisecond))
				fmt.Fprintf(out, "Created:  %s\n", rec.CreatedAt.Local().Format(time.RFC3339))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the record as JSON")
	return cmd
}
