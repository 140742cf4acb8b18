package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// setupLogger builds the root logger. The --debug flag wins over the
// configured level. When a log file is configured the logger writes
// there, keeping stdout clean for the game itself; the caller owns
// closing the returned file.
func setupLogger(debug bool, level, file string) (*log.Logger, io.Closer, error) {
	var out io.Writer = os.Stderr
	var closer io.Closer

	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})

	switch level {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	}
	if debug {
		logger.SetLevel(log.DebugLevel)
	}

	return logger, closer, nil
}
