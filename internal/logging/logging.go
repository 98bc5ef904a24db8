// Package logging builds the zerolog logger handed to services and adapters.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/TomoakiAbebe/rac-tourist/internal/config"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// New returns a logger writing to w at the configured level. Console format
// is colourised only when w is a terminal.
func New(cfg config.LogConfig, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	if w == nil {
		w = os.Stderr
	}

	output := w
	if strings.ToLower(cfg.Format) != "json" {
		output = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.TimeOnly,
			NoColor:    !isTerminal(w),
		}
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger(), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
