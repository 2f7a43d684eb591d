package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type spinner struct {
	writer   io.Writer
	interval time.Duration
	force    bool
	err      error
}

func (s *spinner) printf(format string, args ...any) {
	if s.err != nil {
		return
	}

	_, s.err = fmt.Fprintf(s.writer, format, args...)
}

type SpinnerOption func(*spinner)

// WithWriter sets where frames are drawn. Frames are only drawn to
// terminals unless WithForce is also given.
func WithWriter(w io.Writer) SpinnerOption {
	return func(s *spinner) {
		s.writer = w
	}
}

func WithInterval(d time.Duration) SpinnerOption {
	return func(s *spinner) {
		s.interval = d
	}
}

// WithForce draws frames even when the writer is not a terminal.
func WithForce() SpinnerOption {
	return func(s *spinner) {
		s.force = true
	}
}

// Load runs fn while drawing a spinner next to message. The spinner stops
// when fn returns or ctx is done, whichever comes first; fn always runs to
// completion.
func Load[T any](ctx context.Context, message string, fn func(context.Context) (T, error), opts ...SpinnerOption) (T, error) {
	s := spinner{
		writer:   os.Stderr,
		interval: 100 * time.Millisecond,
	}

	for _, opt := range opts {
		opt(&s)
	}

	if !s.force && !IsWriterTerminal(s.writer) {
		return fn(ctx)
	}

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		defer s.printf("\033[2K\r")

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for i := 0; ; i++ {
			frame := spinnerFrames[i%len(spinnerFrames)]
			s.printf("\033[2K\r%s%s%s %s", Cyan, frame, Reset, message)

			select {
			case <-stop:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	result, err := fn(ctx)

	close(stop)
	wg.Wait()

	if err != nil {
		return result, err
	}

	return result, s.err
}
