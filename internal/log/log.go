// Package log wraps logrus with a process-wide logger for the calculator.
//
// Diagnostics go to stderr so they never mix with expression results on
// stdout. The default level is warning; Init raises or lowers it from
// configuration.
package log

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger wraps a logrus logger.
type Logger struct {
	*logrus.Logger
}

var (
	standardLogger *Logger
	once           sync.Once
)

// StandardLogger returns the singleton logger instance.
func StandardLogger() *Logger {
	once.Do(func() {
		standardLogger = &Logger{
			Logger: logrus.New(),
		}
		standardLogger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
		})
		standardLogger.Logger.SetOutput(os.Stderr)
		standardLogger.SetLevel(logrus.WarnLevel)
	})
	return standardLogger
}

// Init sets the logger level from configuration. The debug flag wins over
// the configured level.
func (l *Logger) Init(level string, debug bool) error {
	if debug {
		l.SetLevel(logrus.DebugLevel)
		return nil
	}
	lv, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	l.SetLevel(lv)
	return nil
}

// SetOutput sets the output destination for the logger.
func (l *Logger) SetOutput(out io.Writer) {
	l.Logger.SetOutput(out)
}

// Package-level forwarding functions.

func Init(level string, debug bool) error { return StandardLogger().Init(level, debug) }
func SetOutput(out io.Writer)             { StandardLogger().SetOutput(out) }

func Debug(args ...any) { StandardLogger().Debug(args...) }
func Info(args ...any)  { StandardLogger().Info(args...) }
func Warn(args ...any)  { StandardLogger().Warn(args...) }
func Error(args ...any) { StandardLogger().Error(args...) }

func Debugf(format string, args ...any) { StandardLogger().Debugf(format, args...) }
func Infof(format string, args ...any)  { StandardLogger().Infof(format, args...) }
func Warnf(format string, args ...any)  { StandardLogger().Warnf(format, args...) }
func Errorf(format string, args ...any) { StandardLogger().Errorf(format, args...) }
