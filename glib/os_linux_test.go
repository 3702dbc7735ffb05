package glib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOsReleaseName(t *testing.T) {
	xPath := filepath.Join(t.TempDir(), "os-release")
	require.NoError(t, os.WriteFile(xPath, []byte("NAME=\"Debian\"\nPRETTY_NAME=\"Debian GNU/Linux 12 (bookworm)\"\n"), 0644))

	assert.Equal(t, "Debian GNU/Linux 12 (bookworm)", osReleaseName(xPath))
	assert.Equal(t, "unknown", osReleaseName(filepath.Join(t.TempDir(), "missing")))
}
