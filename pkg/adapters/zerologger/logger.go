// Package zerologger bridges zerolog into the logger.Logger contract.
package zerologger

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-translate/pkg/interfaces/logger"
)

// Logger adapts a zerolog.Logger.
type Logger struct {
	zl zerolog.Logger
}

var _ logger.Logger = (*Logger)(nil)

// New wraps an existing zerolog logger.
func New(zl zerolog.Logger) *Logger {
	return &Logger{zl: zl}
}

// NewWriter builds a logger writing JSON lines to w. A nil writer defaults
// to stderr.
func NewWriter(w io.Writer) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return New(zerolog.New(w).With().Timestamp().Logger())
}

// With returns a child logger carrying the extra fields.
func (l *Logger) With(fields ...logger.Field) logger.Logger {
	ctx := l.zl.With()
	for _, f := range fields {
		ctx = ctx.Interface(f.Key, f.Value)
	}
	return &Logger{zl: ctx.Logger()}
}

func (l *Logger) Debug(msg string, fields ...logger.Field) { l.emit(l.zl.Debug(), msg, fields) }
func (l *Logger) Info(msg string, fields ...logger.Field)  { l.emit(l.zl.Info(), msg, fields) }
func (l *Logger) Warn(msg string, fields ...logger.Field)  { l.emit(l.zl.Warn(), msg, fields) }
func (l *Logger) Error(msg string, fields ...logger.Field) { l.emit(l.zl.Error(), msg, fields) }

func (l *Logger) emit(event *zerolog.Event, msg string, fields []logger.Field) {
	for _, f := range fields {
		if err, ok := f.Value.(error); ok {
			event = event.AnErr(f.Key, err)
			continue
		}
		event = event.Interface(f.Key, f.Value)
	}
	event.Msg(msg)
}
