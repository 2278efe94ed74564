package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/zerowrap"
)

// initLogger initializes the zerowrap logger. level overrides the configured
// level when set. The returned cleanup is never nil.
func initLogger(cfg Config, level string) (zerowrap.Logger, func(), error) {
	logConfig := zerowrap.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	}
	if level != "" {
		logConfig.Level = level
	}

	if !cfg.Logging.File.Enabled {
		return zerowrap.New(logConfig), func() {}, nil
	}

	logPath := cfg.LogFilePath()
	// Owner-only: logs can contain image references and host paths.
	if err := os.MkdirAll(filepath.Dir(logPath), 0o700); err != nil {
		return zerowrap.Default(), func() {}, fmt.Errorf("failed to create log directory: %w", err)
	}

	log, cleanup, err := zerowrap.NewWithFile(logConfig, zerowrap.FileConfig{
		Enabled:    true,
		Path:       logPath,
		MaxSize:    cfg.Logging.File.MaxSize,
		MaxBackups: cfg.Logging.File.MaxBackups,
		MaxAge:     cfg.Logging.File.MaxAge,
		Compress:   true,
	})
	if err != nil {
		return zerowrap.Default(), func() {}, fmt.Errorf("failed to create logger with file: %w", err)
	}
	if cleanup == nil {
		cleanup = func() {}
	}
	return log, cleanup, nil
}
