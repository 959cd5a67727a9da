package cli

import (
	"github.com/spf13/cobra"
)

// dijkstraCommand creates the dijkstra command.
func (c *CLI) dijkstraCommand() *cobra.Command {
	var (
		graphPath  string
		source     string
		output     string
		formatsStr string
	)

	cmd := &cobra.Command{
		Use:   "dijkstra",
		Short: "Compute single-source shortest paths with Dijkstra's algorithm",
		Long: `Compute single-source shortest paths with Dijkstra's algorithm.

Reads an undirected weighted edge list from a CSV file and computes the
shortest distance and path from the source node to every other node.
Unreachable nodes are reported as such.

Writes a diagram of the full graph with every shortest-path edge highlighted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.graphOptions(graphPath, output, formatsStr)
			opts.Source = fallback(source, c.Config.Source)

			out, err := c.newRunner().RunDijkstra(cmd.Context(), opts)
			if err != nil {
				return err
			}
			printPathsResult(out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&graphPath, "graph", "g", "", "edge-list file (.csv or .json)")
	cmd.Flags().StringVarP(&source, "source", "s", "", "source node (default: smallest node)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output directory for diagrams")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png (default), svg, pdf (comma-separated)")

	return cmd
}
