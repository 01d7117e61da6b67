// Package logging installs the apex/log handler used throughout the
// daemon: a colorized text handler on a TTY, a JSON-line handler
// otherwise, both at a configurable level.
package logging

import (
	"os"

	"emperror.dev/errors"
	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/json"
	"github.com/mattn/go-isatty"
)

// Configure installs the process-wide log.Handler and level. level must be
// one of "debug", "info", "warn", "error", or empty (meaning "info");
// anything else returns an error and leaves the level unchanged.
func Configure(level string) error {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		log.SetHandler(cli.Default)
	} else {
		log.SetHandler(json.New(os.Stdout))
	}

	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	return nil
}

func parseLevel(level string) (log.Level, error) {
	switch level {
	case "", "info":
		return log.InfoLevel, nil
	case "debug":
		return log.DebugLevel, nil
	case "warn":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, errors.Errorf("logging: unknown level %q", level)
	}
}
