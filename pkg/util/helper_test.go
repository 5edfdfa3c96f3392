package util

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveDuplication(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, RemoveDuplication_map([]string{"a", "b", "a", "c", "b"}))
}

func TestSearchPaths(t *testing.T) {
	assert.Equal(t, []string{"/usr/bin", "/bin"}, SearchPaths("/usr/bin::/bin:/usr/bin:"))
	assert.Empty(t, SearchPaths(""))
}

func TestFindProgram(t *testing.T) {
	dir1 := t.TempDir()
	dir2 := t.TempDir()
	prog := filepath.Join(dir2, "tool")
	require.NoError(t, os.WriteFile(prog, []byte("#!/bin/sh\n"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir1, "data"), []byte("x"), 0o644))

	found, err := FindProgram("tool", []string{dir1, dir2 + "/"})
	require.NoError(t, err)
	assert.Equal(t, prog, found)

	found, err = FindProgram(prog, nil)
	require.NoError(t, err)
	assert.Equal(t, prog, found)

	_, err = FindProgram("data", []string{dir1})
	assert.Error(t, err)

	_, err = FindProgram(filepath.Join(dir1, "data"), nil)
	assert.ErrorContains(t, err, "not executable")

	_, err = FindProgram(dir1, nil)
	assert.ErrorContains(t, err, "directory")

	_, err = FindProgram("", nil)
	assert.Error(t, err)
}

func TestFindProgramRefusesRelativeMatch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tool"), []byte("#!/bin/sh\n"), 0o755))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// PATH 中的空元素不会退化成当前目录
	_, err = FindProgram("tool", SearchPaths(":"))
	assert.Error(t, err)
	assert.False(t, errors.Is(err, exec.ErrDot))

	_, err = FindProgram("tool", []string{"."})
	assert.True(t, errors.Is(err, exec.ErrDot))
}
