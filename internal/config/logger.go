package config

import (
	"fmt"
	"io"
	"log"
	"os"
)

// NewLogger opens the diagnostic log described by cfg.
// The returned closer must be closed on exit; it is a no-op for discard and stderr.
func NewLogger(cfg Config) (*log.Logger, io.Closer, error) {
	var (
		w      io.Writer
		closer io.Closer = nopCloser{}
	)
	switch cfg.LogOutput {
	case OutputDiscard:
		w = io.Discard
	case OutputStderr:
		w = os.Stderr
	default:
		f, err := os.OpenFile(cfg.LogOutput, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}
	return log.New(w, "", log.Ldate|log.Ltime|log.Lmicroseconds), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
