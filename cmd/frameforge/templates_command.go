package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"frameforge/internal/template"
)

func newTemplatesCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List available templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := ctx.resolver()
			if err != nil {
				return err
			}
			refs, err := resolver.List()
			if err != nil {
				return err
			}
			collate.New(language.English).SortStrings(refs)

			if asJSON {
				return writeJSON(cmd, map[string]any{"templates": refs})
			}

			out := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(out, "No templates found")
				for _, root := range resolver.Roots() {
					fmt.Fprintf(out, "  searched %s\n", root)
				}
				return nil
			}
			rows := make([][]string, 0, len(refs))
			for _, ref := range refs {
				size := "-"
				if w, h, ok := template.SizeFromPath(ref); ok {
					size = fmt.Sprintf("%dx%d", w, h)
				}
				rows = append(rows, []string{ref, size})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Template", "Size"},
				rows,
				[]columnAlignment{alignLeft, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the template list as JSON")
	return cmd
}
