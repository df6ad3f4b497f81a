package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New builds the process logger: JSON lines in production, text otherwise.
// An unknown level falls back to info.
func New(level string, production bool) *logrus.Logger {
	return NewWithOutput(os.Stdout, level, production)
}

func NewWithOutput(w io.Writer, level string, production bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	if production {
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return l
}
