package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CreatesLogDirectory(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "nested", "fabric-cni.log")

	logger, err := New(Config{FilePath: logFile})
	require.NoError(t, err)

	logger.Info("hello")

	_, err = os.Stat(filepath.Dir(logFile))
	require.NoError(t, err)
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(Config{Level: "not-a-level", FilePath: filepath.Join(t.TempDir(), "f.log")})
	assert.Error(t, err)
}

func TestNew_DefaultLevel(t *testing.T) {
	logger, err := New(Config{FilePath: filepath.Join(t.TempDir(), "f.log")})
	require.NoError(t, err)
	assert.Equal(t, "info", logger.GetLevel().String())
}
