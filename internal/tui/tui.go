// Package tui runs the round protocol in a full-screen terminal UI.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/fairplay/internal/round"
	"github.com/lox/fairplay/internal/session"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// Model is the Bubble Tea model wrapping a round.Protocol.
type Model struct {
	protocol *round.Protocol
	printer  *session.Printer
	buf      *strings.Builder
	logger   *log.Logger

	logViewport viewport.Model
	input       textinput.Model

	lines    []string
	farewell string
	quitting bool
	err      error
}

// NewModel commits the first round and returns a model ready to run.
func NewModel(protocol *round.Protocol, styles session.Styles, logger *log.Logger) (*Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("1-%d to play, ? for help, 0 to exit", protocol.Moves().Len())
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.CharLimit = 32
	ti.Focus()

	buf := &strings.Builder{}
	m := &Model{
		protocol:    protocol,
		printer:     session.NewPrinter(buf, styles),
		buf:         buf,
		logger:      logger.WithPrefix("tui"),
		logViewport: viewport.New(80, 20),
		input:       ti,
	}

	preview, err := protocol.Begin()
	if err != nil {
		return nil, err
	}
	m.printer.Preview(preview)
	m.printer.Menu(protocol.Moves())
	m.flush()
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.logViewport.Width = msg.Width
		m.logViewport.Height = max(msg.Height-4, 3)
		m.input.Width = max(msg.Width-4, 10)
		m.logViewport.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			text := m.input.Value()
			m.input.Reset()
			return m, m.submit(text)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submit(text string) tea.Cmd {
	m.lines = append(m.lines, "> "+text)

	res, err := m.protocol.Handle(text)
	if err != nil {
		m.logger.Error("Round failed", "error", err)
		m.err = err
		m.quitting = true
		return tea.Quit
	}

	moves := m.protocol.Moves()
	switch res.Kind {
	case round.KindExit:
		// Run prints this once the alt screen is closed.
		m.printer.Goodbye()
		m.farewell = m.buf.String()
		m.flush()
		m.quitting = true
		return tea.Quit
	case round.KindHelp:
		m.printer.Help(res.Help)
		m.printer.Menu(moves)
	case round.KindInvalid:
		m.printer.Invalid()
		m.printer.Menu(moves)
	case round.KindPlayed:
		m.printer.Played(res.Played, m.protocol.Mode())
		m.printer.Menu(moves)
		m.printer.Preview(*res.Next)
	}
	m.flush()
	return nil
}

// flush moves printer output into the scrollback.
func (m *Model) flush() {
	if m.buf.Len() > 0 {
		m.lines = append(m.lines, strings.Split(strings.TrimRight(m.buf.String(), "\n"), "\n")...)
		m.buf.Reset()
	}
	m.logViewport.SetContent(strings.Join(m.lines, "\n"))
	m.logViewport.GotoBottom()
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("fairplay • %d moves • %s commit", m.protocol.Moves().Len(), m.protocol.Mode())))
	b.WriteString("\n")
	b.WriteString(m.logViewport.View())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("enter: submit • esc: quit"))
	return b.String()
}

// Transcript returns everything shown so far.
func (m *Model) Transcript() []string {
	return append([]string(nil), m.lines...)
}

// Farewell returns the closing message once the human has exited, or "" if
// the session ended any other way.
func (m *Model) Farewell() string { return m.farewell }

// Err returns the environment error that stopped the session, if any.
func (m *Model) Err() error { return m.err }

// Run starts the TUI and blocks until the session ends. The closing message
// is written to out after the terminal is restored.
func Run(ctx context.Context, protocol *round.Protocol, styles session.Styles, out io.Writer, logger *log.Logger) error {
	m, err := NewModel(protocol, styles, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running TUI: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.Farewell() != "" {
		fmt.Fprint(out, m.Farewell())
	}
	return m.Err()
}
