package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNr(t *testing.T, name string) uint64 {
	t.Helper()
	nr, ok := LookupSyscallNumber(name)
	require.True(t, ok, name)
	return nr
}

func TestFilterDefaultTracesAll(t *testing.T) {
	f := NewSyscallFilter()
	for _, name := range []string{"read", "openat", "exit_group"} {
		assert.True(t, f.Match(mustNr(t, name)), name)
	}
	assert.Equal(t, "whitelist:[all];blacklist:[]", f.Info())
}

func TestFilterWhitelist(t *testing.T) {
	f := NewSyscallFilter()
	require.NoError(t, f.SetSysCall("openat, read"))

	assert.Equal(t, TRACE_COMMON, f.TraceMode)
	assert.True(t, f.Match(mustNr(t, "read")))
	assert.True(t, f.Match(mustNr(t, "openat")))
	assert.False(t, f.Match(mustNr(t, "write")))
	assert.Equal(t, "whitelist:[read,openat];blacklist:[]", f.Info())
}

func TestFilterAllKeyword(t *testing.T) {
	f := NewSyscallFilter()
	require.NoError(t, f.SetSysCall("read"))
	require.NoError(t, f.SetSysCall("all"))
	assert.Equal(t, TRACE_ALL, f.TraceMode)
	assert.True(t, f.Match(mustNr(t, "write")))
}

func TestFilterGroupExpansion(t *testing.T) {
	f := NewSyscallFilter()
	require.NoError(t, f.SetSysCall("%exit,%dup,dup"))

	assert.Len(t, f.SysWhitelist, 5)
	assert.True(t, f.Match(mustNr(t, "exit_group")))
	assert.True(t, f.Match(mustNr(t, "dup3")))
	assert.False(t, f.Match(mustNr(t, "read")))
}

func TestFilterBlacklistWins(t *testing.T) {
	f := NewSyscallFilter()
	require.NoError(t, f.SetSysCall("%desc"))
	require.NoError(t, f.SetSysCallBlacklist("close"))

	assert.True(t, f.Match(mustNr(t, "read")))
	assert.False(t, f.Match(mustNr(t, "close")))
}

func TestFilterUnknownName(t *testing.T) {
	f := NewSyscallFilter()
	err := f.SetSysCall("read,frobnicate")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownSyscall))
	assert.Contains(t, err.Error(), "frobnicate")

	err = f.SetSysCallBlacklist("ni_syscall")
	assert.True(t, errors.Is(err, ErrUnknownSyscall))
}

func TestEveryGroupMemberIsKnown(t *testing.T) {
	for group, names := range syscallGroups {
		for _, name := range names {
			_, ok := LookupSyscallNumber(name)
			assert.True(t, ok, "%s member %s", group, name)
		}
	}
}
