package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// ZeroLogger adapts zerolog to the Client interface.
type ZeroLogger struct {
	zlogger zerolog.Logger
}

var _ Client = (*ZeroLogger)(nil)

func NewZeroLog(env string) *ZeroLogger {
	return NewWithWriter(env, os.Stdout)
}

// NewWithWriter builds a logger writing to w. Production keeps Info and
// above; every other environment includes Debug.
func NewWithWriter(env string, w io.Writer) *ZeroLogger {
	level := zerolog.DebugLevel
	if env == "production" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	return &ZeroLogger{zlogger: zerolog.New(w).With().Timestamp().Logger()}
}

// emit attaches fields with typed zerolog setters where the value shape is
// known, falling back to Interface for the rest.
func (l *ZeroLogger) emit(event *zerolog.Event, msg string, fields []Field) {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			event.Str(f.Key, v)
		case int:
			event.Int(f.Key, v)
		case int64:
			event.Int64(f.Key, v)
		case float64:
			event.Float64(f.Key, v)
		case bool:
			event.Bool(f.Key, v)
		case error:
			event.AnErr(f.Key, v)
		default:
			event.Interface(f.Key, v)
		}
	}
	event.Msg(msg)
}

func (l *ZeroLogger) Debug(msg string, fields ...Field) {
	l.emit(l.zlogger.Debug(), msg, fields)
}

func (l *ZeroLogger) Info(msg string, fields ...Field) {
	l.emit(l.zlogger.Info(), msg, fields)
}

func (l *ZeroLogger) Warn(msg string, fields ...Field) {
	l.emit(l.zlogger.Warn(), msg, fields)
}

func (l *ZeroLogger) Error(msg string, fields ...Field) {
	l.emit(l.zlogger.Error(), msg, fields)
}
