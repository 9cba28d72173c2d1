package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/morsedb/morsedb/pkg/bundle"
	"github.com/morsedb/morsedb/pkg/database"
)

// complexCommand creates the complex command.
func (c *CLI) complexCommand() *cobra.Command {
	var showMap bool

	cmd := &cobra.Command{
		Use:   "complex [bundle]",
		Short: "Show the cubical complex of a bundle's network",
		Long: `Show the cubical complex of a bundle's network.

Prints the network's domains, the cell count of each dimension and how many
cells survive once the right fringe is dropped. With --map, also prints the
bijection from analysis top-cell indices to complex cell indices.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runComplex(args[0], showMap)
		},
	}

	cmd.Flags().BoolVar(&showMap, "map", false, "print the top-cell bijection")

	return cmd
}

func (c *CLI) runComplex(path string, showMap bool) error {
	b, err := bundle.Load(path)
	if err != nil {
		return err
	}
	net, err := b.BuildNetwork()
	if err != nil {
		return err
	}
	cm, err := database.NewCellMap(net)
	if err != nil {
		return err
	}
	cx := cm.CubicalComplex()

	printTitle(path)
	printKeyValue("nodes", strings.Join(net.Names(), ", "))
	printKeyValue("domains", joinInts(net.Domains(), " x "))
	printKeyValue("boxes", joinInts(cx.Boxes(), " x "))

	rows := make([][]string, 0, cx.Dimension()+1)
	for k := 0; k <= cx.Dimension(); k++ {
		total, kept := 0, 0
		cx.Each(k, func(cell int) bool {
			total++
			if !cx.RightFringe(cell) {
				kept++
			}
			return true
		})
		rows = append(rows, []string{strconv.Itoa(k), strconv.Itoa(total), strconv.Itoa(kept)})
	}
	fmt.Println()
	fmt.Println(renderTable([]string{"DIM", "CELLS", "EXPORTED"}, rows))

	if !showMap {
		return nil
	}
	mapRows := make([][]string, cm.Len())
	for i := range cm.Len() {
		cell, err := cm.Complex(i)
		if err != nil {
			return err
		}
		mapRows[i] = []string{strconv.Itoa(i), strconv.Itoa(cell), joinInts(cx.Coordinates(cell), ",")}
	}
	fmt.Println()
	fmt.Println(renderTable([]string{"ANALYSIS", "CELL", "CORNER"}, mapRows))
	return nil
}

func joinInts(xs []int, sep string) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, sep)
}
