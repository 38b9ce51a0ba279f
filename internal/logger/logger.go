package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	// Level is a zerolog level name ("debug", "info", "warn", "error").
	// Empty means info.
	Level string
	// Pretty switches to the human-readable console writer. JSON otherwise.
	Pretty bool
	// Writer receives log output. Defaults to stderr so command output on
	// stdout stays machine-consumable.
	Writer io.Writer
}

// Logger wraps zerolog behind the small surface the CLI needs.
type Logger struct {
	base zerolog.Logger
}

// New creates a configured Logger instance based on Options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.Pretty {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.Kitchen
		output = console
	}

	base := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &Logger{base: base}, nil
}

// Discard returns a logger that drops everything. Used in tests and when a
// component accepts an optional logger.
func Discard() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// With returns a derived logger that always writes the supplied field.
func (l *Logger) With(key string, value any) *Logger {
	if l == nil {
		return nil
	}
	derived := Logger{base: l.base.With().Interface(key, value).Logger()}
	return &derived
}

// Debug writes a debug entry with optional alternating key/value fields.
func (l *Logger) Debug(msg string, fields ...any) {
	if l == nil {
		return
	}
	emit(l.base.Debug(), msg, fields)
}

// Info writes an informational entry with optional alternating key/value fields.
func (l *Logger) Info(msg string, fields ...any) {
	if l == nil {
		return
	}
	emit(l.base.Info(), msg, fields)
}

// Warn writes a warning entry with optional alternating key/value fields.
func (l *Logger) Warn(msg string, fields ...any) {
	if l == nil {
		return
	}
	emit(l.base.Warn(), msg, fields)
}

// Error writes an error entry including the supplied error context.
func (l *Logger) Error(err error, msg string, fields ...any) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	emit(event, msg, fields)
}

func emit(event *zerolog.Event, msg string, fields []any) {
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		event = event.Interface(key, fields[i+1])
	}
	event.Msg(msg)
}
