package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"frameforge/internal/template"
)

func newParamsCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "params <template-ref>",
		Short: "Show a template's parameter schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := ctx.resolver()
			if err != nil {
				return err
			}
			path, err := resolver.Resolve(args[0])
			if err != nil {
				return err
			}
			tpl, err := template.Load(args[0], path)
			if err != nil {
				return err
			}
			schema := template.ParseSchema(tpl)

			if asJSON {
				return writeJSON(cmd, schema)
			}

			out := cmd.OutOrStdout()
			if tpl.HasSize() {
				fmt.Fprintf(out, "Media size: %dx%d\n", schema.MediaWidth, schema.MediaHeight)
			} else {
				fmt.Fprintln(out, "Media size: (none)")
			}
			if len(schema.Params) == 0 {
				fmt.Fprintln(out, "No declared parameters")
				return nil
			}
			rows := make([][]string, 0, len(schema.Params))
			for _, name := range schema.ParamNames() {
				spec := schema.Params[name]
				rows = append(rows, []string{spec.Name, string(spec.Type), spec.Default})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Name", "Type", "Default"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the schema as JSON")
	return cmd
}
