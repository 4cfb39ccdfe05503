package loggerx

import (
	"context"
	"log/slog"
	"os"

	"github.com/topicboard/topicboard/slogx"
	"go.opentelemetry.io/otel/attribute"
)

type Logger struct {
	*slog.Logger
}

// New returns a JSON logger writing to stderr, tagged with the component name.
func New(name string) *Logger {
	l := slog.New(slog.NewJSONHandler(os.Stderr, nil)).With(slog.String("component", name))
	return &Logger{l}
}

func (l *Logger) WithError(err error) *Logger {
	return &Logger{l.Logger.With(slogx.ErrorAttr(err))}
}

func (l *Logger) WithFields(kvs ...attribute.KeyValue) *Logger {
	lfs := slogx.NewLogFields(kvs...)
	anys := make([]any, 0, len(lfs))
	for _, a := range lfs {
		anys = append(anys, a)
	}
	return &Logger{l.Logger.With(anys...)}
}

func (l *Logger) Error(ctx context.Context, msg string, kvs ...attribute.KeyValue) {
	l.Logger.LogAttrs(ctx, slog.LevelError, msg, slogx.NewLogFields(kvs...)...)
}

func (l *Logger) Warn(ctx context.Context, msg string, kvs ...attribute.KeyValue) {
	l.Logger.LogAttrs(ctx, slog.LevelWarn, msg, slogx.NewLogFields(kvs...)...)
}

func (l *Logger) Info(ctx context.Context, msg string, kvs ...attribute.KeyValue) {
	l.Logger.LogAttrs(ctx, slog.LevelInfo, msg, slogx.NewLogFields(kvs...)...)
}

func (l *Logger) Debug(ctx context.Context, msg string, kvs ...attribute.KeyValue) {
	l.Logger.LogAttrs(ctx, slog.LevelDebug, msg, slogx.NewLogFields(kvs...)...)
}
