package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/morsedb/morsedb/pkg/database"
	"github.com/morsedb/morsedb/pkg/pipeline"
)

// exportCommand creates the export command.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		paramsStr string
		noCache   bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "export [bundle]",
		Short: "Export a dynamics bundle to a JSON database",
		Long: `Export a dynamics bundle to a JSON database.

The bundle (JSON, YAML or TOML) holds a network, its parameter graph and the
precomputed dynamics of its parameters. The export adds the network's cubical
complex and renumbers every cell reference into complex indices.

By default every parameter is exported; --params selects a subset in the
given order, e.g. --params 0,2,5-9. Results are cached locally, so
re-exporting an unchanged bundle is instant.`,
		Example: `  morsedb export toggle.yaml
  morsedb export toggle.yaml -o db.json --params 0-3 --indent
  morsedb export big.toml --compress`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Bundle = args[0]
			if paramsStr != "" {
				params, err := database.ParseParameters(paramsStr)
				if err != nil {
					return err
				}
				opts.Parameters = params
			}
			if opts.Output == "" {
				opts.Output = defaultOutput(opts.Bundle, opts.Compress)
			}
			return c.runExport(cmd.Context(), opts, noCache)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (default: bundle name with .json)")
	cmd.Flags().StringVarP(&paramsStr, "params", "p", "", "parameters to export, e.g. 0,2,5-9 (default: all)")
	cmd.Flags().BoolVar(&opts.Indent, "indent", false, "indent the JSON output")
	cmd.Flags().BoolVar(&opts.Compress, "compress", false, "snappy-compress the output")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even if cached")

	return cmd
}

// runExport executes the export pipeline and reports the result.
func (c *CLI) runExport(ctx context.Context, opts pipeline.Options, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Exporting %s...", filepath.Base(opts.Bundle)))
	spinner.Start()

	opts.Logger = c.Logger
	opts.Progress = func(done, total, parameter int) {
		spinner.SetMessage("Exporting parameter %d (%d/%d)...", parameter, done, total)
	}

	prog := newProgress(c.Logger)
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Export failed")
		return err
	}
	spinner.Stop()
	prog.done("export finished")

	printSuccess("Exported %s", opts.Bundle)
	printFile(opts.Output)
	printExportStats(result.Parameters, len(result.Data), result.CacheHit)
	return nil
}

// defaultOutput derives the database path from the bundle path.
func defaultOutput(bundlePath string, compress bool) string {
	base := strings.TrimSuffix(bundlePath, filepath.Ext(bundlePath))
	if strings.HasSuffix(strings.ToLower(bundlePath), ".json") {
		base += ".db"
	}
	if compress {
		return base + ".json.sz"
	}
	return base + ".json"
}
