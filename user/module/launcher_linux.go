package module

import (
	"os"
	"os/exec"
	"syscall"

	"lurk/pkg/util"
	"lurk/user/config"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

const (
	ADDR_NO_RANDOMIZE = 0x0040000
	// 只查询当前 personality 不修改
	PER_QUERY = 0xffffffff
)

const PTRACE_OPTIONS = unix.PTRACE_O_TRACESYSGOOD |
	unix.PTRACE_O_TRACEEXEC |
	unix.PTRACE_O_EXITKILL

var ErrUnexpectedStop = errors.New("unexpected tracee stop")

// Tracee is a started child that sits in its first ptrace stop.
type Tracee struct {
	Pid int
	Cmd *exec.Cmd
}

func personality(persona uintptr) (int, error) {
	r, _, errno := unix.Syscall(unix.SYS_PERSONALITY, persona, 0, 0)
	if errno != 0 {
		return -1, errno
	}
	return int(r), nil
}

// Launch starts conf's command under ptrace and waits for the stop that
// follows its exec. The calling goroutine must be locked to its OS thread
// and every later ptrace request has to come from that thread.
//
// The child side runs in the fork child set up by SysProcAttr: it requests
// tracing, inherits the personality and execs. It never runs any of the
// tracer's code.
func Launch(conf *config.TraceConfig, ops PtraceOps, logger logrus.FieldLogger) (*Tracee, error) {
	path, err := util.FindProgram(conf.Command, util.SearchPaths(os.Getenv("PATH")))
	if err != nil {
		return nil, errors.Wrap(err, "resolve command")
	}
	cmd := exec.Command(path, conf.Args...)
	cmd.Args[0] = conf.Command
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), conf.Env...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Ptrace: true}

	if conf.NoAslr {
		// personality 属于线程 fork 出来的子进程会继承
		old, err := personality(PER_QUERY)
		if err != nil {
			return nil, errors.Wrap(err, "query personality")
		}
		if _, err := personality(uintptr(old | ADDR_NO_RANDOMIZE)); err != nil {
			return nil, errors.Wrap(err, "disable aslr")
		}
		defer func() {
			if _, err := personality(uintptr(old)); err != nil {
				logger.WithError(err).Warn("restore personality failed")
			}
		}()
	}

	if err := cmd.Start(); err != nil {
		return nil, errors.Wrapf(err, "start tracee %s", path)
	}
	tracee := &Tracee{Pid: cmd.Process.Pid, Cmd: cmd}
	logger.WithFields(logrus.Fields{"pid": tracee.Pid, "path": path}).Debug("tracee started")

	r, err := ops.Wait(tracee.Pid)
	if err != nil {
		return nil, errors.Wrap(err, "wait for exec stop")
	}
	if r.Terminated() || r.Signal != syscall.SIGTRAP {
		if !r.Terminated() {
			_ = ops.Kill(tracee.Pid)
			_, _ = ops.Wait(tracee.Pid)
		}
		return nil, errors.Wrapf(ErrUnexpectedStop, "%s", r)
	}
	if err := unix.PtraceSetOptions(tracee.Pid, PTRACE_OPTIONS); err != nil {
		_ = ops.Kill(tracee.Pid)
		_, _ = ops.Wait(tracee.Pid)
		return nil, errors.Wrapf(err, "set ptrace options pid=%d", tracee.Pid)
	}
	return tracee, nil
}
