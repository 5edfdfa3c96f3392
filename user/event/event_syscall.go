package event

import (
	"fmt"
	"strings"
)

// SyscallEvent is one observed syscall boundary of a traced pid.
// Args holds already rendered tokens, Ret is only meaningful on exit.
type SyscallEvent struct {
	Pid   int
	Phase Phase
	Nr    uint64
	Name  string
	Args  []string
	Ret   int64
}

func NewSyscallEntry(pid int, nr uint64, name string, args []string) *SyscallEvent {
	return &SyscallEvent{Pid: pid, Phase: PHASE_ENTRY, Nr: nr, Name: name, Args: args}
}

func NewSyscallExit(pid int, nr uint64, name string, ret int64) *SyscallEvent {
	return &SyscallEvent{Pid: pid, Phase: PHASE_EXIT, Nr: nr, Name: name, Ret: ret}
}

func (this *SyscallEvent) String() string {
	if this.Phase == PHASE_EXIT {
		return fmt.Sprintf("[%d]: %s() = %d", this.Pid, this.Name, this.Ret)
	}
	return fmt.Sprintf("[%d] %s(%s)", this.Pid, this.Name, strings.Join(this.Args, ", "))
}

func (this *SyscallEvent) EventType() EventType {
	return EventTypeSysCallData
}

func (this *SyscallEvent) GetUUID() string {
	return fmt.Sprintf("%d_%s", this.Pid, this.Phase)
}
