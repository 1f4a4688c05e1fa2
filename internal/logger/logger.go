// Package logger configures the application's structured logging.
//
// It uses zerolog everywhere: a console writer with colors in the local
// environment, plain JSON to stderr otherwise. It also provides the
// specialized logger the pgx tracelog adapter uses for SQL statement
// logging.
package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New builds the application's main logger for the given environment.
//
// local -> human-friendly console output at debug level.
// anything else -> JSON to stderr at info level.
func New(env string) *zerolog.Logger {
	var log zerolog.Logger
	if strings.EqualFold(env, "local") {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
	} else {
		log = zerolog.New(os.Stderr).
			Level(zerolog.InfoLevel).
			With().Timestamp().Logger()
	}
	return &log
}

// NewPgxLogger builds the logger handed to the pgx tracelog adapter. It is
// separate from the main logger so SQL noise carries its own component tag
// and can be filtered independently.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Str("component", "pgx").Logger()
}

// PgxTraceLogLevel converts a zerolog level into the tracelog numeric
// level pgx expects (tracelog.LogLevelNone..Trace, 0..6).
func PgxTraceLogLevel(level zerolog.Level) int {
	switch level {
	case zerolog.TraceLevel:
		return 6 // tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return 5 // tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return 4 // tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return 3 // tracelog.LogLevelWarn
	case zerolog.ErrorLevel:
		return 2 // tracelog.LogLevelError
	default:
		return 0 // tracelog.LogLevelNone
	}
}
