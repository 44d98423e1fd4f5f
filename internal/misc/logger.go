package misc

import (
	"fmt"

	log "unknwon.dev/clog/v2"
)

// Logger interface
type Logger interface {
	Trace(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NewLogger creates a Logger tagging every line with `prefix`.
// `skip` is the stack depth reported by Error.
func NewLogger(prefix string, skip int) Logger {
	return &prefixLogger{
		prefix: prefix,
		skip:   skip,
	}
}

type prefixLogger struct {
	prefix string
	skip   int
}

func (l *prefixLogger) tag(format string) string {
	if l.prefix == "" {
		return format
	}
	return fmt.Sprintf("[%s] %s", l.prefix, format)
}

func (l *prefixLogger) Trace(format string, v ...interface{}) {
	log.Trace(l.tag(format), v...)
}

func (l *prefixLogger) Info(format string, v ...interface{}) {
	log.Info(l.tag(format), v...)
}

func (l *prefixLogger) Warn(format string, v ...interface{}) {
	log.Warn(l.tag(format), v...)
}

func (l *prefixLogger) Error(format string, v ...interface{}) {
	log.ErrorDepth(l.skip, l.tag(format), v...)
}
