package session

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/fairplay/internal/helptable"
	"github.com/lox/fairplay/internal/round"
	"github.com/lox/fairplay/internal/rules"
)

// Styles used by the line protocol. With a plain color profile they render as
// unstyled text, so the transcript is byte-for-byte the documented protocol.
type Styles struct {
	Commit  lipgloss.Style
	Win     lipgloss.Style
	Lose    lipgloss.Style
	Draw    lipgloss.Style
	Error   lipgloss.Style
	Table   helptable.Styles
	Goodbye lipgloss.Style
}

// DefaultStyles returns the styles for an interactive terminal.
func DefaultStyles() Styles {
	return Styles{
		Commit:  lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
		Win:     lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
		Lose:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Draw:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFEAA7")).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		Table:   helptable.DefaultStyles(),
		Goodbye: lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true),
	}
}

// PlainStyles returns styles that render text unchanged.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Commit:  plain,
		Win:     plain,
		Lose:    plain,
		Draw:    plain,
		Error:   plain,
		Table:   helptable.PlainStyles(),
		Goodbye: plain,
	}
}

// Printer writes the text protocol.
type Printer struct {
	w      io.Writer
	styles Styles
}

// NewPrinter returns a printer writing to w.
func NewPrinter(w io.Writer, styles Styles) *Printer {
	return &Printer{w: w, styles: styles}
}

// Preview prints the "HMAC:" line shown before a round's input.
func (p *Printer) Preview(preview round.Preview) {
	fmt.Fprintf(p.w, "HMAC: %s\n\n", p.styles.Commit.Render(preview.Value))
}

// Menu prints the numbered move list.
func (p *Printer) Menu(moves rules.MoveSet) {
	fmt.Fprintln(p.w, "Available moves:")
	for i := 0; i < moves.Len(); i++ {
		fmt.Fprintf(p.w, "%d - %s\n", i+1, moves.Name(i))
	}
	fmt.Fprintln(p.w, "0 - Exit")
	fmt.Fprint(p.w, "? - Help\n\n")
}

// Prompt asks for the next move.
func (p *Printer) Prompt() {
	fmt.Fprintln(p.w, "Enter your move:")
}

// Help prints the outcome matrix.
func (p *Printer) Help(grid [][]string) {
	fmt.Fprintf(p.w, "\n%s\n\n", helptable.Render(grid, p.styles.Table))
}

// Played prints a resolved round. Strict mode also reveals the distinguisher.
func (p *Printer) Played(played *round.Played, mode round.CommitMode) {
	fmt.Fprintf(p.w, "\nYour move: %s\n", played.UserMove)
	fmt.Fprintf(p.w, "Computer move: %s\n", played.ComputerMove)
	fmt.Fprintf(p.w, "Result: %s\n", p.outcomeStyle(played).Render(played.Outcome.String()))
	fmt.Fprintf(p.w, "HMAC key: %s\n", played.Key)
	if mode == round.ModeStrict {
		fmt.Fprintf(p.w, "Distinguisher: %s\n", played.Distinguisher)
	}
	fmt.Fprintln(p.w)
}

func (p *Printer) outcomeStyle(played *round.Played) lipgloss.Style {
	switch played.Outcome {
	case rules.Win:
		return p.styles.Win
	case rules.Lose:
		return p.styles.Lose
	default:
		return p.styles.Draw
	}
}

// Invalid reports an unusable input line.
func (p *Printer) Invalid() {
	fmt.Fprintf(p.w, "%s\n\n", p.styles.Error.Render("Invalid choice. Please choose a valid option."))
}

// Goodbye prints the closing message.
func (p *Printer) Goodbye() {
	fmt.Fprintln(p.w, p.styles.Goodbye.Render("Thank you for playing!"))
}
