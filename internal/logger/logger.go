// Package logger configures logrus for both binaries.  Log files are
// rotated by lumberjack.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/iliyamo/flight-seat-reservation/internal/config"
)

// Init points the standard logrus logger at cfg.LogFile (or stderr) and
// sets the level and formatter.  Production uses JSON lines.
func Init(cfg config.Config) {
	logrus.SetOutput(Writer(cfg.LogFile))
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if cfg.Env == "prod" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// Writer returns a rotating file writer for path.  "stderr", "-" or an
// empty path write to the console instead.
func Writer(path string) io.Writer {
	switch strings.ToLower(path) {
	case "", "-", "stderr":
		return os.Stderr
	case "stdout":
		return os.Stdout
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     28, // days
		Compress:   true,
	}
}

// For returns an entry tagged with the component name.
func For(component string) *logrus.Entry {
	return logrus.WithField("component", component)
}
