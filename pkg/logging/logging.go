// Package logging configures the plugin's structured logger. A CNI
// plugin's stdout/stderr are part of the wire protocol (spec §4.8), so
// all diagnostic logging is written to a rotated file instead, never to
// the plugin's own stdout/stderr.
package logging

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls where and how verbosely the plugin logs.
type Config struct {
	// Level is a logrus level name ("debug", "info", "warn", "error").
	// Defaults to "info" when empty.
	Level string
	// FilePath is the log file to append to. The containing directory
	// is created if missing. Defaults to DefaultLogFile when empty.
	FilePath string
	// MaxSizeMB is the size at which lumberjack rotates the log file.
	MaxSizeMB int
	// MaxBackups bounds how many rotated files are retained.
	MaxBackups int
}

const (
	// DefaultLogFile is used when Config.FilePath is unset.
	DefaultLogFile = "/var/log/fabric-cni/fabric-cni.log"

	defaultMaxSizeMB  = 10
	defaultMaxBackups = 5
)

// New builds a *logrus.Logger writing to a rotated file, creating the
// log directory if it does not already exist (spec §6).
func New(cfg Config) (*logrus.Logger, error) {
	if cfg.FilePath == "" {
		cfg.FilePath = DefaultLogFile
	}
	if cfg.MaxSizeMB == 0 {
		cfg.MaxSizeMB = defaultMaxSizeMB
	}
	if cfg.MaxBackups == 0 {
		cfg.MaxBackups = defaultMaxBackups
	}

	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating log directory for %s", cfg.FilePath)
	}

	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(&lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	})
	return logger, nil
}

func parseLevel(level string) (logrus.Level, error) {
	if level == "" {
		return logrus.InfoLevel, nil
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid log level %q", level)
	}
	return parsed, nil
}
