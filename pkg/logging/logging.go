// Package logging sets up log4go for the binaries. The terminal belongs to
// the UI, so log output goes to a file.
package logging

import (
	"errors"
	"fmt"
	"strings"

	log "github.com/jeanphorn/log4go"
)

var ErrUnknownLevel = errors.New("unknown log level")

var levels = map[string]log.Level{
	"debug":   log.DEBUG,
	"trace":   log.TRACE,
	"info":    log.INFO,
	"warn":    log.WARNING,
	"warning": log.WARNING,
	"error":   log.ERROR,
}

func ParseLevel(s string) (log.Level, error) {
	lvl, ok := levels[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownLevel)
	}
	return lvl, nil
}

// Init replaces the console writer with a writer appending to dest. Every
// line carries prefix. An empty dest drops all log output.
func Init(dest, prefix, level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}

	log.Close()
	if dest == "" {
		return nil
	}

	w := log.NewFileLogWriter(dest, false, false)
	if w == nil {
		return fmt.Errorf("error opening log file %s", dest)
	}
	w.SetFormat("[%D %T] [%L] " + prefix + "%M")
	log.AddFilter("file", lvl, w)

	return nil
}
