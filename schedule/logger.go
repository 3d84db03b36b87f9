package schedule

import (
	"fmt"
	"strings"

	"github.com/go-co-op/gocron/v2"
)

// Logger is implemented by slackstatus.SLogger
type Logger interface {
	Printf(format string, v ...interface{})
	Debugf(format string, v ...interface{})
}

// gocronLogger implements gocron.Logger on top of a Logger. Debug and info
// statements are only logged in debug mode
type gocronLogger struct {
	logger Logger
}

// NewGocronLogger returns a new logger that implements gocron.Logger interface.
func NewGocronLogger(logger Logger) gocron.Logger {
	return &gocronLogger{logger: logger}
}

func (l *gocronLogger) Debug(msg string, args ...any) {
	l.logger.Debugf("scheduler debug: %s\n", format(msg, args...))
}

func (l *gocronLogger) Info(msg string, args ...any) {
	l.logger.Debugf("scheduler: %s\n", format(msg, args...))
}

func (l *gocronLogger) Warn(msg string, args ...any) {
	l.logger.Printf("scheduler warning: %s\n", format(msg, args...))
}

func (l *gocronLogger) Error(msg string, args ...any) {
	l.logger.Printf("scheduler error: %s\n", format(msg, args...))
}

// format renders key/value pairs as [key=value] after the message
func format(msg string, args ...any) string {
	var b strings.Builder
	b.WriteString(msg)

	for i := 0; i < len(args); i += 2 {
		if i+1 >= len(args) {
			fmt.Fprintf(&b, " [%v]", args[i])
			break
		}

		fmt.Fprintf(&b, " [%v=%v]", args[i], args[i+1])
	}

	return b.String()
}
