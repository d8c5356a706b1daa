package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withCapturedOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := new(bytes.Buffer)
	SetOutput(buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetVerbose(false)
	})
	return buf
}

func TestLogger_SilentByDefault(t *testing.T) {
	buf := withCapturedOutput(t)
	SetVerbose(false)

	Debug("hidden %d", 1)
	Info("hidden")
	Warn("hidden")
	Section("hidden")

	assert.Empty(t, buf.String())
}

func TestLogger_VerboseOutput(t *testing.T) {
	buf := withCapturedOutput(t)
	SetVerbose(true)

	Debug("records: %d", 42)
	Info("loaded")
	Warn("stale")
	Section("Catalog Load")

	out := buf.String()
	assert.Contains(t, out, "[DEBUG] records: 42")
	assert.Contains(t, out, "[INFO] loaded")
	assert.Contains(t, out, "[WARN] stale")
	assert.Contains(t, out, "=== Catalog Load ===")
}

func TestLogger_IsVerbose(t *testing.T) {
	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}
