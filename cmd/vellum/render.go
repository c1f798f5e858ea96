package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vellum-dev/vellum/pkg/decode"
	"github.com/vellum-dev/vellum/pkg/render"
)

func renderCmd() *cobra.Command {
	var out string
	var compact bool

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a description file to HTML",
		Long: `Render reads a YAML or JSON document description, builds its node
tree, and writes the escaped HTML to stdout or a file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			nodes, err := decode.Nodes(data)
			if err != nil {
				return cliError(err)
			}

			r := render.New(render.Config{Compact: compact})
			html, err := r.RenderToString(nodes...)
			if err != nil {
				return err
			}

			if out == "" || out == "-" {
				fmt.Print(html)
				return nil
			}

			if err := os.WriteFile(out, []byte(html), 0o644); err != nil {
				return err
			}
			success("wrote %s (%d bytes)", out, len(html))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&compact, "compact", false, "omit the cosmetic line breaks")
	return cmd
}
