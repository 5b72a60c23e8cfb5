package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"frameforge/internal/frame"
	"frameforge/internal/template"
)

func newRenderCommand(ctx *commandContext) *cobra.Command {
	var (
		title    string
		text     string
		image    string
		setPairs []string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "render <template-ref>",
		Short: "Render a template to a PNG frame",
		Long: `Render substitutes the given fields into the referenced template and
rasterizes it at the media size encoded in the template path, for example
1080x1920/default.html. The rendered frame lands in the configured output
directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ext, err := parseSetPairs(setPairs)
			if err != nil {
				return err
			}
			fields := template.Fields{Title: title, Text: text, Image: image}

			return ctx.withEngine(func(engine *frame.Engine) error {
				res, err := engine.RenderFrame(cmd.Context(), args[0], fields, ext)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, res)
				}
				fmt.Fprintln(cmd.OutOrStdout(), res.OutputPath)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Title text for the frame")
	cmd.Flags().StringVar(&text, "text", "", "Body text for the frame")
	cmd.Flags().StringVar(&image, "image", "", "Image path or URL for the frame")
	cmd.Flags().StringArrayVar(&setPairs, "set", nil, "Extra substitution as key=value (repeatable)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the render result as JSON")
	return cmd
}

func parseSetPairs(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	ext := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --set value %q, expected key=value", pair)
		}
		ext[key] = value
	}
	return ext, nil
}
