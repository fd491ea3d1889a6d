package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paddleball/internal/config"
)

// newLogger builds the process logger. Terminal backends own the tty, so
// unless toStderr is set logs go to cfg.File or nowhere.
func newLogger(cfg config.LogConfig, toStderr bool) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	switch {
	case cfg.File != "":
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("log: open %s: %w", cfg.File, err)
		}
		w = f
		closeFn = func() { f.Close() }
	case toStderr:
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "paddleball",
		Level:           cfg.ParsedLevel(),
	})
	return logger, closeFn, nil
}
