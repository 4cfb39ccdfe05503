package logrusx

import (
	"io"

	"github.com/sirupsen/logrus"
)

type options struct {
	level     logrus.Level
	formatter logrus.Formatter
	out       io.Writer
}

type Option func(*options)

func WithLevel(level logrus.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

func WithFormatter(f logrus.Formatter) Option {
	return func(o *options) {
		o.formatter = f
	}
}

func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}
