package logrusx

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is the logrus-based logger handed to service-side components
// (reference server, broker-backed service). The dashboard core itself logs
// through loggerx.
type Logger struct {
	*logrus.Entry
}

func New(name string, opts ...Option) *Logger {
	o := &options{
		level:     logrus.InfoLevel,
		formatter: &logrus.JSONFormatter{},
	}
	for _, opt := range opts {
		opt(o)
	}

	l := logrus.New()
	l.SetLevel(o.level)
	l.SetFormatter(o.formatter)
	if o.out != nil {
		l.SetOutput(o.out)
	}

	return &Logger{l.WithField("service_name", name)}
}

// NewNull returns a logger that discards everything, for tests.
func NewNull() *Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &Logger{logrus.NewEntry(l)}
}

func (l *Logger) WithError(err error) *Logger {
	return &Logger{l.Entry.WithError(err)}
}

func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{l.Entry.WithField(key, value)}
}

func (l *Logger) WithFields(fields logrus.Fields) *Logger {
	return &Logger{l.Entry.WithFields(fields)}
}
