package host

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharsToString(t *testing.T) {
	var ca [65]byte
	copy(ca[:], "x86_64")
	assert.Equal(t, "x86_64", charsToString(ca))
}

func TestParsePtraceScope(t *testing.T) {
	dir := t.TempDir()

	scope, err := ParsePtraceScope(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Equal(t, 0, scope)

	path := filepath.Join(dir, "ptrace_scope")
	require.NoError(t, os.WriteFile(path, []byte("1\n"), 0o644))
	scope, err = ParsePtraceScope(path)
	require.NoError(t, err)
	assert.Equal(t, 1, scope)

	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))
	_, err = ParsePtraceScope(path)
	assert.Error(t, err)
}

func TestGetOSUnamer(t *testing.T) {
	ui, err := GetOSUnamer()
	require.NoError(t, err)
	assert.NotEmpty(t, ui.SysName)
	assert.NotEmpty(t, ui.Machine)
}
