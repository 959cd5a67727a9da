package cli

import (
	"github.com/spf13/cobra"
)

// primCommand creates the prim command.
func (c *CLI) primCommand() *cobra.Command {
	var (
		graphPath  string
		root       string
		output     string
		formatsStr string
	)

	cmd := &cobra.Command{
		Use:   "prim",
		Short: "Compute a minimum spanning tree with Prim's algorithm",
		Long: `Compute a minimum spanning tree with Prim's algorithm.

Reads an undirected weighted edge list from a CSV file (source, destination,
weight; one header row), grows the tree from a root node, and writes a
diagram of the full graph with the tree edges highlighted.

On a disconnected graph only the root's component is spanned.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.graphOptions(graphPath, output, formatsStr)
			opts.Root = fallback(root, c.Config.Root)

			out, err := c.newRunner().RunPrim(cmd.Context(), opts)
			if err != nil {
				return err
			}
			printMSTResult("Prim", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&graphPath, "graph", "g", "", "edge-list file (.csv or .json)")
	cmd.Flags().StringVarP(&root, "root", "r", "", "start node (default: smallest node)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output directory for diagrams")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png (default), svg, pdf (comma-separated)")

	return cmd
}
