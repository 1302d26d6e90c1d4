package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var Logger = newDefault()

func newDefault() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{}) // Use JSON format for structured logs
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Init configures the shared logger. An empty file logs to stdout. The
// returned closer releases the log file, if any.
func Init(level, file string) (io.Closer, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	Logger.SetLevel(lvl)

	if file == "" {
		return io.NopCloser(nil), nil
	}

	logFile, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return nil, err
	}
	Logger.SetOutput(logFile)
	return logFile, nil
}

// LogEvent logs structured events
func LogEvent(level logrus.Level, message string, fields logrus.Fields) {
	Logger.WithFields(fields).Log(level, message)
}
