package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

type Logger struct {
	l zerolog.Logger
}

// New builds a console logger at the given level. An empty or unparseable
// level falls back to info.
func New(out io.Writer, level string) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	zl := zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	return &Logger{l: zl}
}

func (l *Logger) LogErrorf(format string, v ...any) {
	l.l.Error().Msgf(format, v...)
}

func (l *Logger) LogInfo(format string, v ...any) {
	l.l.Info().Msgf(format, v...)
}
