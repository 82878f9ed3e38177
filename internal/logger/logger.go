// ABOUTME: Structured logging with verbosity control and level-based output
// ABOUTME: Thin facade over logrus shared by every package

package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}

// SetVerbose enables or disables verbose (DEBUG) logging
func SetVerbose(v bool) {
	if v {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
}

// IsVerbose returns current verbose setting
func IsVerbose() bool {
	return log.IsLevelEnabled(logrus.DebugLevel)
}

// SetOutput sets the output destination for logs
func SetOutput(w io.Writer) {
	if w == nil {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(w)
	}
}

// Debug logs at DEBUG level (only shown when verbose)
func Debug(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

// Info logs at INFO level (always shown)
func Info(format string, args ...interface{}) {
	log.Infof(format, args...)
}

// Warn logs at WARN level (always shown)
func Warn(format string, args ...interface{}) {
	log.Warnf(format, args...)
}

// Error logs at ERROR level (always shown)
func Error(format string, args ...interface{}) {
	log.Errorf(format, args...)
}
