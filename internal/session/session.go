// Package session drives repeated rounds over a line-oriented text protocol.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/fairplay/internal/round"
)

// Session connects a round.Protocol to an input source and a printer.
type Session struct {
	protocol *round.Protocol
	input    InputSource
	printer  *Printer
	logger   *log.Logger
}

// New creates a session. The protocol must not have begun a round yet.
func New(protocol *round.Protocol, input InputSource, printer *Printer, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		protocol: protocol,
		input:    input,
		printer:  printer,
		logger:   logger.WithPrefix("session"),
	}
}

// Run plays rounds until the human exits, the input ends, or ctx is
// cancelled. End of input is treated like choosing Exit. Only environment
// errors and context cancellation are returned.
func (s *Session) Run(ctx context.Context) error {
	moves := s.protocol.Moves()
	s.logger.Info("Starting session", "moves", moves.Len(), "mode", s.protocol.Mode())

	preview, err := s.protocol.Begin()
	if err != nil {
		return err
	}
	s.printer.Preview(preview)
	s.printer.Menu(moves)

	for {
		s.printer.Prompt()

		text, err := s.input.ReadLine(ctx)
		if errors.Is(err, io.EOF) {
			s.logger.Debug("Input closed")
			text, err = round.ExitInput, nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		res, err := s.protocol.Handle(text)
		if err != nil {
			if res.Played != nil {
				s.printer.Played(res.Played, s.protocol.Mode())
			}
			return err
		}

		switch res.Kind {
		case round.KindExit:
			s.printer.Goodbye()
			s.logger.Info("Session finished")
			return nil
		case round.KindHelp:
			s.printer.Help(res.Help)
			s.printer.Menu(moves)
		case round.KindInvalid:
			s.printer.Invalid()
			s.printer.Menu(moves)
		case round.KindPlayed:
			s.printer.Played(res.Played, s.protocol.Mode())
			s.printer.Menu(moves)
			s.printer.Preview(*res.Next)
		}
	}
}
