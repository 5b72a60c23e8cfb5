package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"frameforge/internal/preflight"
)

func newPreflightCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "preflight",
		Short: "Check that rendering dependencies are available",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			results := preflight.RunAll(cmd.Context(), cfg.Renderer.ChromePath)

			if asJSON {
				return writeJSON(cmd, map[string]any{"checks": results})
			}

			out := cmd.OutOrStdout()
			failed := false
			for _, res := range results {
				status := "ok"
				if !res.Passed {
					status = "FAIL"
					failed = true
				}
				fmt.Fprintf(out, "%-8s %-5s %s\n", res.Name, status, res.Detail)
			}
			if failed {
				return fmt.Errorf("one or more preflight checks failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit check results as JSON")
	return cmd
}
