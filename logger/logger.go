package logger

import (
	"io"
	"log"

	"github.com/JusmeJr93/random-user-gen-backend/config"
)

type Log struct {
	doDebug bool
	l       *log.Logger
}

func New(cfg *config.Config) *Log {
	return &Log{doDebug: cfg.Debug, l: log.Default()}
}

// NewWriter logs to w instead of the standard logger's output.
func NewWriter(cfg *config.Config, w io.Writer) *Log {
	return &Log{doDebug: cfg.Debug, l: log.New(w, "", log.LstdFlags)}
}

func (l *Log) Fatalf(format string, v ...interface{}) {
	l.l.Fatalf(format, v...)
}

func (l *Log) Println(v ...interface{}) {
	l.l.Println(v...)
}

func (l *Log) Printf(format string, v ...interface{}) {
	l.l.Printf(format, v...)
}

func (l *Log) Debugf(format string, v ...interface{}) {
	if l.doDebug {
		l.l.Printf(format, v...)
	}
}
