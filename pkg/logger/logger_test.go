package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWriter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, "warn")

	log.Info("hidden %d", 1)
	assert.Empty(t, buf.String())

	log.Warn("visible %d", 2)
	assert.Contains(t, buf.String(), "visible 2")
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := New("", "verbose")
	require.Error(t, err)
}

func TestNew_WritesToFile(t *testing.T) {
	path := t.TempDir() + "/logs/app.log"

	log, err := New(path, "info")
	require.NoError(t, err)
	log.Info("hello")
	require.NoError(t, log.Close())

	assert.FileExists(t, path)
}
