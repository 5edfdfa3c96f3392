package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyscallTableShape(t *testing.T) {
	for nr := 0; nr < SyscallCount(); nr++ {
		sig := MustSyscallSignature(uint64(nr))
		assert.NotEmpty(t, sig.Name, "nr=%d", nr)
		assert.Len(t, sig.Args, MAX_SYSCALL_ARGS)
		// 参数槽位连续 NONE 之后不再出现有效类型
		seenNone := false
		for i, kind := range sig.Args {
			if kind == ARG_NONE {
				seenNone = true
				continue
			}
			assert.False(t, seenNone, "%s slot %d follows an empty slot", sig.Name, i)
		}
	}
}

func TestKnownSignatures(t *testing.T) {
	cases := []struct {
		nr   uint64
		name string
		args K
	}{
		{0, "read", K{INT, ADDR, INT}},
		{1, "write", K{INT, ADDR, INT}},
		{2, "open", K{STR, INT}},
		{3, "close", K{INT}},
		{39, "getpid", K{}},
		{59, "execve", K{STR, ADDR, ADDR}},
		{60, "exit", K{INT}},
		{231, "exit_group", K{INT}},
		{257, "openat", K{INT, STR, INT, INT}},
	}
	for _, c := range cases {
		sig, err := GetSyscallSignature(c.nr)
		require.NoError(t, err)
		assert.Equal(t, c.name, sig.Name)
		assert.Equal(t, c.args, sig.Args, c.name)
	}
}

func TestArgCount(t *testing.T) {
	assert.Equal(t, 3, MustSyscallSignature(0).ArgCount())
	assert.Equal(t, 0, MustSyscallSignature(39).ArgCount())
}

func TestGetSyscallSignatureOutOfRange(t *testing.T) {
	_, err := GetSyscallSignature(uint64(SyscallCount()))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSyscallOutOfRange))

	_, err = GetSyscallSignature(^uint64(0))
	assert.True(t, errors.Is(err, ErrSyscallOutOfRange))

	assert.Panics(t, func() { MustSyscallSignature(uint64(SyscallCount()) + 10) })
}

func TestLookupSyscallNumber(t *testing.T) {
	nr, ok := LookupSyscallNumber("openat")
	require.True(t, ok)
	assert.Equal(t, uint64(257), nr)

	_, ok = LookupSyscallNumber("ni_syscall")
	assert.False(t, ok)

	_, ok = LookupSyscallNumber("no_such_call")
	assert.False(t, ok)
}

func TestArgKindString(t *testing.T) {
	assert.Equal(t, "none", ARG_NONE.String())
	assert.Equal(t, "str", ARG_STR.String())
	assert.Equal(t, "ArgKind(9)", ArgKind(9).String())
}
