package event

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyscallEventEntry(t *testing.T) {
	e := NewSyscallEntry(4242, 2, "open", []string{`"/etc/hostname"`, "0", "438"})
	assert.Equal(t, `[4242] open("/etc/hostname", 0, 438)`, e.String())
	assert.Equal(t, EventTypeSysCallData, e.EventType())
}

func TestSyscallEventEntryNoArgs(t *testing.T) {
	e := NewSyscallEntry(7, 39, "getpid", nil)
	assert.Equal(t, "[7] getpid()", e.String())
}

func TestSyscallEventExit(t *testing.T) {
	e := NewSyscallExit(4242, 2, "open", 3)
	assert.Equal(t, "[4242]: open() = 3", e.String())

	e = NewSyscallExit(4242, 2, "open", -2)
	assert.Equal(t, "[4242]: open() = -2", e.String())
}

func TestSyscallEventUUID(t *testing.T) {
	assert.Equal(t, "9_entry", NewSyscallEntry(9, 0, "read", nil).GetUUID())
	assert.Equal(t, "9_exit", NewSyscallExit(9, 0, "read", 0).GetUUID())
}

func TestExitEvent(t *testing.T) {
	e := &ExitEvent{Pid: 12, Code: 3}
	assert.Equal(t, "[12] +++ exited with 3 +++", e.String())
	assert.Equal(t, EventTypeExitData, e.EventType())

	e = &ExitEvent{Pid: 12, Signal: syscall.SIGKILL}
	assert.Equal(t, "[12] +++ killed by SIGKILL +++", e.String())
}
