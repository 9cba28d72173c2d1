package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/morsedb/morsedb/pkg/database"
)

// maxListedLabels caps the labels shown per parameter.
const maxListedLabels = 4

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var entries bool

	cmd := &cobra.Command{
		Use:   "inspect [database]",
		Short: "Summarize an exported database",
		Long: `Summarize an exported database.

Prints the size of each section. With --entries, also lists every dynamics
entry with its Morse graph size, height and labels. Compressed databases
are detected automatically.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(args[0], entries)
		},
	}

	cmd.Flags().BoolVarP(&entries, "entries", "e", false, "list every dynamics entry")

	return cmd
}

func (c *CLI) runInspect(path string, entries bool) error {
	db, err := database.Load(path)
	if err != nil {
		return err
	}
	c.Logger.Debug("loaded database", "path", path)

	s := database.Summarize(db)
	printTitle(path)
	printKeyValue("network", fmt.Sprintf("%d nodes, %d links", s.Nodes, s.Links))
	printKeyValue("complex", fmt.Sprintf("dimension %d, %d cells (%d top)", s.Dimension, s.Cells, s.TopCells))
	printKeyValue("vertices", strconv.Itoa(s.Vertices))
	printKeyValue("parameters", fmt.Sprintf("%d nodes, %d links", s.Parameters, s.ParamLinks))
	printKeyValue("dynamics", fmt.Sprintf("%d entries", len(s.Entries)))

	if !entries || len(s.Entries) == 0 {
		return nil
	}
	fmt.Println()
	fmt.Println(entryTable(s.Entries))
	return nil
}

// entryTable formats per-parameter summaries.
func entryTable(entries []database.EntrySummary) string {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{
			strconv.Itoa(e.Parameter),
			strconv.Itoa(e.MorseNodes),
			strconv.Itoa(e.MaxRank),
			fmt.Sprintf("%d/%d", e.STGNodes, e.STGEdges),
			labelList(e.Labels),
		}
	}
	return renderTable([]string{"PARAM", "MORSE", "HEIGHT", "STG", "LABELS"}, rows)
}

// labelList joins the non-empty labels, truncating long lists.
func labelList(labels []string) string {
	var out []string
	for _, l := range labels {
		if l != "" {
			out = append(out, l)
		}
	}
	if len(out) > maxListedLabels {
		more := len(out) - maxListedLabels
		out = append(out[:maxListedLabels], fmt.Sprintf("+%d more", more))
	}
	return strings.Join(out, ", ")
}
