// Package logging builds the slog loggers used by the armin commands
package logging

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Manu343726/armin/pkg/utils"
	slogmulti "github.com/samber/slog-multi"
)

var ErrInvalidLogLevel error = errors.New("invalid log level")

// Logger settings
type Settings struct {
	// Minimum level of the console output: debug, info, warn or error
	Level string
	// Optional path of a JSON log file. The file records every level
	File string
}

// Parses a level name. An empty name means info
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level

	if strings.TrimSpace(name) == "" {
		return slog.LevelInfo, nil
	}

	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, utils.MakeError(ErrInvalidLogLevel, "'%v'", name)
	}

	return level, nil
}

// Returns a logger writing text records to console and, if settings.File is set, JSON records to
// that file. The returned closer releases the log file and must be called once logging is done
func New(console io.Writer, settings Settings) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(settings.Level)
	if err != nil {
		return nil, nil, err
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(console, &slog.HandlerOptions{Level: level}),
	}

	var closer io.Closer = nopCloser{}

	if settings.File != "" {
		file, err := os.OpenFile(settings.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}

		handlers = append(handlers, slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))
		closer = file
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

// Returns a logger discarding every record
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
