// Package log writes diagnostics to a daily file in the logs directory.
// Nothing is written unless logs.write is enabled.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vimeodl/vimeodl/filesystem"
	"github.com/vimeodl/vimeodl/key"
	"github.com/vimeodl/vimeodl/where"
)

var logger = newDiscard()

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// Filename is the log file name for day t.
func Filename(t time.Time) string {
	return t.Format("2006-01-02") + ".log"
}

// Setup opens today's log file and applies the configured format and level.
func Setup() error {
	if !viper.GetBool(key.LogsWrite) {
		logger = newDiscard()
		return nil
	}

	path := filepath.Join(where.Logs(), Filename(time.Now()))
	file, err := filesystem.API().OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	l := logrus.New()
	l.SetOutput(file)

	if viper.GetBool(key.LogsJson) {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	logger = l
	return nil
}

// Run returns an entry whose lines carry the id of one download run.
func Run(id string) *logrus.Entry {
	return logger.WithField("run", id)
}

func Error(args ...any) { logger.Error(args...) }

func Warn(args ...any) { logger.Warn(args...) }

func Infof(format string, args ...any) { logger.Infof(format, args...) }

func Debugf(format string, args ...any) { logger.Debugf(format, args...) }
