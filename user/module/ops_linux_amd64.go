package module

import (
	"syscall"

	"lurk/user/argtype"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

type unixOps struct{}

// NewPtraceOps returns the PtraceOps backed by the kernel.
func NewPtraceOps() PtraceOps {
	return unixOps{}
}

func (unixOps) Wait(pid int) (WaitResult, error) {
	var ws unix.WaitStatus
	for {
		wpid, err := unix.Wait4(pid, &ws, unix.WALL, nil)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return WaitResult{}, errors.Wrapf(err, "wait4 pid=%d", pid)
		}
		return ClassifyWaitStatus(wpid, syscall.WaitStatus(ws)), nil
	}
}

// 参数寄存器顺序 rdi rsi rdx r10 r8 r9
func snapshotFromRegs(regs *unix.PtraceRegs) *argtype.RegisterSnapshot {
	return &argtype.RegisterSnapshot{
		Nr:   regs.Orig_rax,
		Args: [6]uint64{regs.Rdi, regs.Rsi, regs.Rdx, regs.R10, regs.R8, regs.R9},
		Ret:  regs.Rax,
	}
}

func (unixOps) GetRegs(pid int) (*argtype.RegisterSnapshot, error) {
	var regs unix.PtraceRegs
	if err := unix.PtraceGetRegs(pid, &regs); err != nil {
		return nil, errors.Wrapf(err, "getregs pid=%d", pid)
	}
	return snapshotFromRegs(&regs), nil
}

func (unixOps) Resume(pid int, sig syscall.Signal) error {
	return unix.PtraceSyscall(pid, int(sig))
}

func (unixOps) Kill(pid int) error {
	return unix.Kill(pid, unix.SIGKILL)
}
