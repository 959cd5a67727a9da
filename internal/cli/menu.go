package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Juan-Garzaro/algoviz/pkg/errors"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// MenuModel - Interactive algorithm selection
// =============================================================================

// menuEntries are the selectable algorithms, in menu order.
var menuEntries = []string{
	"Prim's minimum spanning tree",
	"Kruskal's minimum spanning tree",
	"Dijkstra's shortest paths",
	"Huffman coding",
}

// noChoice marks a quit without selection.
const noChoice = -1

// MenuModel is the bubbletea model for the algorithm menu.
type MenuModel struct {
	Cursor int
	Choice int
}

// NewMenuModel creates a menu model with nothing selected.
func NewMenuModel() MenuModel {
	return MenuModel{Choice: noChoice}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c", "esc":
			m.Choice = noChoice
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(menuEntries)-1 {
				m.Cursor++
			}
		case "enter":
			m.Choice = m.Cursor
			return m, tea.Quit
		case "1", "2", "3", "4":
			m.Choice = int(key[0] - '1')
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Algorithm"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ or 1-4 select  ⏎ run  q quit"))
	b.WriteString("\n\n")

	for i, entry := range menuEntries {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%d. %s", cursor, i+1, entry)
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// =============================================================================
// Menu Command
// =============================================================================

// menuCommand creates the interactive menu command.
func (c *CLI) menuCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Run algorithms from an interactive menu",
		Long: `Run algorithms from an interactive menu.

Each selection executes one run using the configured input files and output
directory. A failed run reports its error and returns to the menu; quit
with q or esc.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMenu(cmd.Context())
		},
	}
	return cmd
}

// runMenu loops the menu until the user quits. Run failures are reported and
// do not end the loop.
func (c *CLI) runMenu(ctx context.Context) error {
	for {
		model, err := tea.NewProgram(NewMenuModel(), tea.WithContext(ctx)).Run()
		if err != nil {
			return err
		}

		final := model.(MenuModel)
		if final.Choice == noChoice {
			return nil
		}

		if err := c.runMenuChoice(ctx, final.Choice); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			printError("%s", errors.UserMessage(err))
		}
	}
}

// runMenuChoice executes one algorithm run with config-level defaults.
func (c *CLI) runMenuChoice(ctx context.Context, choice int) error {
	runner := c.newRunner()
	graphOpts := c.graphOptions("", "", "")
	graphOpts.Root = c.Config.Root
	graphOpts.Source = c.Config.Source

	switch choice {
	case 0:
		out, err := runner.RunPrim(ctx, graphOpts)
		if err != nil {
			return err
		}
		printMSTResult("Prim", out)
	case 1:
		out, err := runner.RunKruskal(ctx, graphOpts)
		if err != nil {
			return err
		}
		printMSTResult("Kruskal", out)
	case 2:
		out, err := runner.RunDijkstra(ctx, graphOpts)
		if err != nil {
			return err
		}
		printPathsResult(out)
	case 3:
		out, err := runner.RunHuffman(ctx, c.textOptions("", "", ""))
		if err != nil {
			return err
		}
		printHuffmanResult(out)
	}
	return nil
}
