package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/iliyamo/flight-seat-reservation/internal/config"
)

func TestWriter(t *testing.T) {
	assert.Equal(t, os.Stderr, Writer(""))
	assert.Equal(t, os.Stderr, Writer("STDERR"))
	assert.Equal(t, os.Stdout, Writer("stdout"))

	w := Writer("logs/app.log")
	lj, ok := w.(*lumberjack.Logger)
	if assert.True(t, ok) {
		assert.Equal(t, "logs/app.log", lj.Filename)
	}
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	t.Cleanup(func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(logrus.InfoLevel)
		logrus.SetFormatter(&logrus.TextFormatter{})
	})

	Init(config.Config{Env: "prod", LogLevel: "debug", LogFile: path})
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	For("test").WithField("seat", "1A").Info("booked")
	if lj, ok := logrus.StandardLogger().Out.(*lumberjack.Logger); ok {
		_ = lj.Close()
	}

	bs, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Contains(t, string(bs), `"component":"test"`)
	assert.Contains(t, string(bs), `"seat":"1A"`)

	Init(config.Config{LogLevel: "nonsense", LogFile: "stderr"})
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
