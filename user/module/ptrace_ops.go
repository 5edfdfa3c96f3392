package module

import (
	"fmt"
	"syscall"

	"lurk/user/argtype"
)

// 开启 PTRACE_O_TRACESYSGOOD 后 syscall stop 的信号为 SIGTRAP|0x80
const TRACE_SYSGOOD_BIT = 0x80

type StopKind uint8

const (
	// 进程正常退出
	STOP_EXITED StopKind = iota
	// 进程被信号杀死
	STOP_SIGNALED
	// syscall entry 或 exit
	STOP_SYSCALL
	// 信号投递 恢复时需要把信号交还给进程
	STOP_SIGNAL
	// PTRACE_EVENT_* 事件
	STOP_EVENT
)

// WaitResult is one decoded wait status.
type WaitResult struct {
	Pid       int
	Kind      StopKind
	ExitCode  int
	Signal    syscall.Signal
	TrapCause int
}

func (this WaitResult) Terminated() bool {
	return this.Kind == STOP_EXITED || this.Kind == STOP_SIGNALED
}

// ExitStatus maps a terminated result to a shell style status.
func (this WaitResult) ExitStatus() int {
	if this.Kind == STOP_SIGNALED {
		return 128 + int(this.Signal)
	}
	return this.ExitCode
}

func (this WaitResult) String() string {
	switch this.Kind {
	case STOP_EXITED:
		return fmt.Sprintf("pid=%d exited code=%d", this.Pid, this.ExitCode)
	case STOP_SIGNALED:
		return fmt.Sprintf("pid=%d killed sig=%s", this.Pid, this.Signal)
	case STOP_SYSCALL:
		return fmt.Sprintf("pid=%d syscall stop", this.Pid)
	case STOP_EVENT:
		return fmt.Sprintf("pid=%d event stop cause=%d", this.Pid, this.TrapCause)
	}
	return fmt.Sprintf("pid=%d signal stop sig=%s", this.Pid, this.Signal)
}

// PtraceOps is the set of primitives the trace loop drives the tracee with.
// All calls for one tracee must come from the thread that started it.
type PtraceOps interface {
	// Wait blocks until pid changes state
	Wait(pid int) (WaitResult, error)
	GetRegs(pid int) (*argtype.RegisterSnapshot, error)
	// Resume continues pid until the next syscall boundary, delivering sig if non zero
	Resume(pid int, sig syscall.Signal) error
	Kill(pid int) error
}

// ClassifyWaitStatus turns a raw wait status into a WaitResult.
func ClassifyWaitStatus(pid int, ws syscall.WaitStatus) WaitResult {
	r := WaitResult{Pid: pid, TrapCause: -1}
	switch {
	case ws.Exited():
		r.Kind = STOP_EXITED
		r.ExitCode = ws.ExitStatus()
	case ws.Signaled():
		r.Kind = STOP_SIGNALED
		r.Signal = ws.Signal()
	case ws.Stopped():
		sig := ws.StopSignal()
		r.TrapCause = ws.TrapCause()
		switch {
		case sig == syscall.SIGTRAP|TRACE_SYSGOOD_BIT:
			r.Kind = STOP_SYSCALL
			r.Signal = syscall.SIGTRAP
		case sig == syscall.SIGTRAP && r.TrapCause > 0:
			r.Kind = STOP_EVENT
			r.Signal = syscall.SIGTRAP
		default:
			r.Kind = STOP_SIGNAL
			r.Signal = sig
		}
	default:
		// continued 之类的状态 当作不需要注入的信号停止处理
		r.Kind = STOP_SIGNAL
	}
	return r
}
