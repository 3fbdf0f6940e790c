// Package helptable renders the pairwise outcome matrix shown by the "?"
// command.
package helptable

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/fairplay/internal/rules"
)

// Build returns the (n+1)x(n+1) outcome grid for moves. Row 0 is the header
// (an empty corner followed by the move names); every other row starts with
// a move name and holds that move's outcome against each column's move.
func Build(moves rules.MoveSet) [][]string {
	n := moves.Len()
	grid := make([][]string, 0, n+1)

	header := make([]string, 0, n+1)
	header = append(header, "")
	header = append(header, moves.Names()...)
	grid = append(grid, header)

	for i := 0; i < n; i++ {
		row := make([]string, 0, n+1)
		row = append(row, moves.Name(i))
		for j := 0; j < n; j++ {
			row = append(row, moves.Resolve(i, j).String())
		}
		grid = append(grid, row)
	}
	return grid
}

// Styles colours the rendered table.
type Styles struct {
	Border lipgloss.Style
	Header lipgloss.Style
	Label  lipgloss.Style
	Win    lipgloss.Style
	Lose   lipgloss.Style
	Draw   lipgloss.Style
}

// DefaultStyles returns the styles used in the terminal.
func DefaultStyles() Styles {
	cell := lipgloss.NewStyle().Padding(0, 1)
	return Styles{
		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
		Header: cell.Bold(true).Foreground(lipgloss.Color("#FAFAFA")),
		Label:  cell.Bold(true).Foreground(lipgloss.Color("#96CEB4")),
		Win:    cell.Foreground(lipgloss.Color("#04B575")),
		Lose:   cell.Foreground(lipgloss.Color("#FF6B6B")),
		Draw:   cell.Foreground(lipgloss.Color("#FFEAA7")),
	}
}

// PlainStyles pads cells without colour.
func PlainStyles() Styles {
	cell := lipgloss.NewStyle().Padding(0, 1)
	return Styles{
		Border: lipgloss.NewStyle(),
		Header: cell,
		Label:  cell,
		Win:    cell,
		Lose:   cell,
		Draw:   cell,
	}
}

// Render draws grid (as returned by Build) as an ASCII table.
func Render(grid [][]string, styles Styles) string {
	if len(grid) == 0 {
		return ""
	}
	body := grid[1:]

	t := table.New().
		Border(lipgloss.ASCIIBorder()).
		BorderStyle(styles.Border).
		Headers(grid[0]...).
		Rows(body...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styles.Header
			case col == 0:
				return styles.Label
			}
			if row < 0 || row >= len(body) || col >= len(body[row]) {
				return styles.Draw
			}
			switch body[row][col] {
			case rules.Win.String():
				return styles.Win
			case rules.Lose.String():
				return styles.Lose
			default:
				return styles.Draw
			}
		})

	return t.Render()
}
