package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// zerologLogger implements calculation.Logger on top of zerolog
type zerologLogger struct {
	l zerolog.Logger
}

func (z zerologLogger) Debugf(format string, args ...interface{}) { z.l.Debug().Msgf(format, args...) }
func (z zerologLogger) Infof(format string, args ...interface{})  { z.l.Info().Msgf(format, args...) }
func (z zerologLogger) Warnf(format string, args ...interface{})  { z.l.Warn().Msgf(format, args...) }
func (z zerologLogger) Errorf(format string, args ...interface{}) { z.l.Error().Msgf(format, args...) }

// parseLevel maps a --log-level value to a zerolog level; debug forces DebugLevel
func parseLevel(level string, debug bool) (zerolog.Level, error) {
	if debug {
		return zerolog.DebugLevel, nil
	}
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "warn", "warning":
		return zerolog.WarnLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q (valid: debug, info, warn, error)", level)
	}
}

// newLogger writes human-readable log lines to w
func newLogger(w io.Writer, level string, debug bool) (zerologLogger, error) {
	lvl, err := parseLevel(level, debug)
	if err != nil {
		return zerologLogger{}, err
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	return zerologLogger{l: zerolog.New(out).Level(lvl).With().Timestamp().Logger()}, nil
}
