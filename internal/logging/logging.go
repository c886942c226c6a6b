// Package logging points the standard logger at a debug file.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

const (
	Dir      = "logs"
	FileName = "bossfight.log"
)

// Setup sends log output to logs/bossfight.log when debug is set, otherwise
// to fallback (io.Discard when nil). The returned file must be closed by the caller.
func Setup(debug bool, fallback io.Writer) (*os.File, error) {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if !debug {
		if fallback == nil {
			fallback = io.Discard
		}
		log.SetOutput(fallback)
		return nil, nil
	}

	if err := os.MkdirAll(Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(Dir, FileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	log.Printf("---- session start (pid %d) ----", os.Getpid())
	return f, nil
}
