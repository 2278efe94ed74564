package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger_Console(t *testing.T) {
	cfg := testConfig(t)

	log, cleanup, err := initLogger(cfg, "")
	require.NoError(t, err)
	require.NotNil(t, cleanup)
	defer cleanup()

	log.Debug().Msg("console only")
	assert.NoDirExists(t, filepath.Join(cfg.Server.DataDir, "logs"))
}

func TestInitLogger_FileEnabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.Logging.File.Enabled = true
	cfg.Logging.File.MaxSize = 1
	cfg.Logging.File.MaxBackups = 1
	cfg.Logging.File.MaxAge = 1

	log, cleanup, err := initLogger(cfg, "info")
	require.NoError(t, err)

	log.Info().Str("image", "nginx:latest").Msg("to file")
	cleanup()

	data, err := os.ReadFile(cfg.LogFilePath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
	assert.Contains(t, string(data), "nginx:latest")
}

func TestInitLogger_UnwritableDirectory(t *testing.T) {
	cfg := testConfig(t)
	blocker := filepath.Join(cfg.Server.DataDir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	cfg.Logging.File.Enabled = true
	cfg.Logging.File.Path = filepath.Join(blocker, "dockside.log")

	_, cleanup, err := initLogger(cfg, "")
	require.Error(t, err)
	assert.NotNil(t, cleanup)
}
