package utils

import (
	"fmt"
	"log"
	"os"
	"time"
)

// Logger provides leveled logging for the suite.
type Logger struct {
	out *log.Logger
	err *log.Logger
}

// NewLogger creates a Logger writing to stdout/stderr.
func NewLogger() *Logger {
	return &Logger{
		out: log.New(os.Stdout, "", 0),
		err: log.New(os.Stderr, "", 0),
	}
}

func (l *Logger) stamp() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

func (l *Logger) Info(format string, args ...any) {
	l.out.Printf(fmt.Sprintf("[%s] INFO  %s", l.stamp(), format), args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.out.Printf(fmt.Sprintf("[%s] WARN  %s", l.stamp(), format), args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.err.Printf(fmt.Sprintf("[%s] ERROR %s", l.stamp(), format), args...)
}
