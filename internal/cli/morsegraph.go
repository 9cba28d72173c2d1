package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/morsedb/morsedb/pkg/database"
	"github.com/morsedb/morsedb/pkg/pipeline"
	"github.com/morsedb/morsedb/pkg/render/morsegraph"
)

// morsegraphCommand creates the morsegraph command.
func (c *CLI) morsegraphCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.RenderOptions{Format: pipeline.DefaultRenderFormat}

	cmd := &cobra.Command{
		Use:   "morsegraph [bundle]",
		Short: "Draw the Morse graph of one parameter",
		Long: `Draw the Morse graph of one parameter.

Nodes are Morse sets labelled with their annotation; edges follow the Morse
poset and rows group sets of equal rank. Output is Graphviz DOT or SVG
(rendered in-process), or PNG/PDF via rsvg-convert. Use "-o -" to write to
standard output.`,
		Example: `  morsedb morsegraph toggle.yaml --param 2
  morsedb morsegraph toggle.yaml --param 2 -f dot -o - | dot -Tpng > p2.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Bundle = args[0]
			if err := morsegraph.ValidateFormat(opts.Format); err != nil {
				return err
			}
			if output == "" {
				base := strings.TrimSuffix(opts.Bundle, filepath.Ext(opts.Bundle))
				output = fmt.Sprintf("%s.p%d.%s", base, opts.Parameter, opts.Format)
			}
			return c.runMorsegraph(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().IntVar(&opts.Parameter, "param", 0, "parameter index")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", opts.Format, "output format: "+strings.Join(morsegraph.Formats, ", "))
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, - for stdout (default: <bundle>.p<N>.<format>)")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "show rank and Morse set size in labels")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "re-render even if cached")

	return cmd
}

func (c *CLI) runMorsegraph(ctx context.Context, opts pipeline.RenderOptions, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	data, cached, err := runner.RenderMorseGraph(ctx, opts)
	if err != nil {
		return err
	}

	if output == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := database.SaveBytes(output, data); err != nil {
		return err
	}

	status := iconFresh
	if cached {
		status = iconCached
	}
	printSuccess("Rendered parameter %d", opts.Parameter)
	printFile(output)
	printDetail("%s · %s", formatBytes(len(data)), status)
	return nil
}
