package cli

import (
	"github.com/spf13/cobra"
)

// kruskalCommand creates the kruskal command.
func (c *CLI) kruskalCommand() *cobra.Command {
	var (
		graphPath  string
		output     string
		formatsStr string
	)

	cmd := &cobra.Command{
		Use:   "kruskal",
		Short: "Compute a minimum spanning tree with Kruskal's algorithm",
		Long: `Compute a minimum spanning tree with Kruskal's algorithm.

Reads an undirected weighted edge list from a CSV file, sorts the edges by
ascending weight, and accepts each edge that joins two components. On a
disconnected graph the result is a minimum spanning forest.

Writes a diagram of the full graph with the forest edges highlighted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.newRunner().RunKruskal(cmd.Context(), c.graphOptions(graphPath, output, formatsStr))
			if err != nil {
				return err
			}
			printMSTResult("Kruskal", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&graphPath, "graph", "g", "", "edge-list file (.csv or .json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output directory for diagrams")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png (default), svg, pdf (comma-separated)")

	return cmd
}
