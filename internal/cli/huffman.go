package cli

import (
	"github.com/spf13/cobra"
)

// huffmanCommand creates the huffman command.
func (c *CLI) huffmanCommand() *cobra.Command {
	var (
		textPath   string
		output     string
		formatsStr string
	)

	cmd := &cobra.Command{
		Use:   "huffman",
		Short: "Build a Huffman coding for a text file",
		Long: `Build a Huffman coding for a text file.

Counts symbol frequencies, builds the prefix-free coding tree, and prints
the code table sorted by descending frequency. Whitespace symbols are
displayed escaped (NL, TAB, SP).

Writes a diagram of the coding tree with 0/1 branch labels and a bar chart
of the symbol frequencies.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.newRunner().RunHuffman(cmd.Context(), c.textOptions(textPath, output, formatsStr))
			if err != nil {
				return err
			}
			printHuffmanResult(out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&textPath, "text", "t", "", "input text file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output directory for diagrams")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png (default), svg, pdf (comma-separated)")

	return cmd
}
