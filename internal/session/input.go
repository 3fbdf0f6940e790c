package session

import (
	"bufio"
	"context"
	"io"
	"sync"
)

// InputSource supplies the human's input one line at a time. ReadLine blocks
// until a line is available, the input is exhausted (io.EOF) or ctx is done.
type InputSource interface {
	ReadLine(ctx context.Context) (string, error)
}

type line struct {
	text string
	err  error
}

// LineReader reads lines from an io.Reader on a background goroutine so that
// a pending read can be abandoned when the context is cancelled.
//
// Close stops the goroutine at its next line. A Read already blocked on the
// underlying reader is not interrupted; the goroutine exits when it returns.
type LineReader struct {
	lines     chan line
	done      chan struct{}
	closeOnce sync.Once
}

// NewLineReader starts reading lines from r.
func NewLineReader(r io.Reader) *LineReader {
	lr := &LineReader{
		lines: make(chan line, 1),
		done:  make(chan struct{}),
	}
	go lr.scan(r)
	return lr
}

func (lr *LineReader) scan(r io.Reader) {
	defer close(lr.lines)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if !lr.send(line{text: scanner.Text()}) {
			return
		}
	}
	err := scanner.Err()
	if err == nil {
		err = io.EOF
	}
	lr.send(line{err: err})
}

func (lr *LineReader) send(l line) bool {
	select {
	case lr.lines <- l:
		return true
	case <-lr.done:
		return false
	}
}

// ReadLine returns the next line without its trailing newline.
func (lr *LineReader) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-lr.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

// Close stops the background reader. It is safe to call more than once.
func (lr *LineReader) Close() error {
	lr.closeOnce.Do(func() { close(lr.done) })
	return nil
}
