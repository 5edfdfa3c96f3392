package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalConfigDefaults(t *testing.T) {
	g := NewGlobalConfig()
	conf, err := g.ToTraceConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{DEFAULT_COMMAND}, conf.Argv())
	assert.True(t, conf.NoAslr)
	assert.Equal(t, DEFAULT_STR_LIMIT, conf.StrLimit)
	assert.Equal(t, CHARSET_LATIN1, conf.Charset)
	assert.Equal(t, TRACE_ALL, conf.Filter.TraceMode)
}

func TestGlobalConfigCommand(t *testing.T) {
	g := NewGlobalConfig()
	g.Command = []string{"cat", "/etc/hostname"}
	g.Charset = "UTF8"
	conf, err := g.ToTraceConfig()
	require.NoError(t, err)

	assert.Equal(t, "cat", conf.Command)
	assert.Equal(t, []string{"/etc/hostname"}, conf.Args)
	assert.Equal(t, CHARSET_UTF8, conf.Charset)
	assert.Contains(t, conf.Info(), "command:cat /etc/hostname")
}

func TestGlobalConfigCheck(t *testing.T) {
	g := NewGlobalConfig()
	g.StrLimit = 0
	assert.Error(t, g.Check())

	g = NewGlobalConfig()
	g.Charset = "ebcdic"
	assert.Error(t, g.Check())

	g = NewGlobalConfig()
	g.Quiet = true
	assert.Error(t, g.Check())
	g.LogFile = "trace.log"
	assert.NoError(t, g.Check())
}

func TestGlobalConfigBadFilter(t *testing.T) {
	g := NewGlobalConfig()
	g.SysCall = "nope"
	_, err := g.ToTraceConfig()
	assert.Error(t, err)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lurk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFileConfigApply(t *testing.T) {
	path := writeConfig(t, `
command: ["cat", "/etc/hostname"]
syscall: "%file,read"
strlen: 32
charset: utf8
no_aslr: false
env:
  LANG: C
  HOME: /tmp
`)
	fc, err := LoadFileConfig(path)
	require.NoError(t, err)

	g := NewGlobalConfig()
	g.Env = []string{"A=1"}
	fc.Apply(g, func(string) bool { return false })

	assert.Equal(t, []string{"cat", "/etc/hostname"}, g.Command)
	assert.Equal(t, "%file,read", g.SysCall)
	assert.Equal(t, 32, g.StrLimit)
	assert.Equal(t, "utf8", g.Charset)
	assert.False(t, g.NoAslr)
	assert.Equal(t, []string{"A=1", "HOME=/tmp", "LANG=C"}, g.Env)
}

func TestFileConfigFlagsWin(t *testing.T) {
	fc := &FileConfig{
		Command:  []string{"cat"},
		SysCall:  "read",
		StrLimit: 10,
	}
	g := NewGlobalConfig()
	g.Command = []string{"ls", "-l"}
	g.SysCall = "write"
	g.StrLimit = 80
	changed := func(name string) bool { return name == "syscall" || name == "strlen" }
	fc.Apply(g, changed)

	assert.Equal(t, []string{"ls", "-l"}, g.Command)
	assert.Equal(t, "write", g.SysCall)
	assert.Equal(t, 80, g.StrLimit)
	assert.True(t, g.NoAslr)
}

func TestLoadFileConfigErrors(t *testing.T) {
	_, err := LoadFileConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadFileConfig(writeConfig(t, "strlen: [1"))
	assert.Error(t, err)

	_, err = LoadFileConfig(writeConfig(t, "strlen: -3"))
	assert.Error(t, err)
}
