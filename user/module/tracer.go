package module

import (
	"context"
	"syscall"

	"lurk/user/argtype"
	"lurk/user/config"
	"lurk/user/event"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var ErrResume = errors.New("resume tracee failed")

type pidState struct {
	state TracerState
	nr    uint64
}

type TracerStats struct {
	Stops   uint64
	Resumes uint64
	Events  uint64
}

// Tracer drives one tracee from its post-exec stop until it is gone. Every
// observed stop is answered by exactly one Resume.
type Tracer struct {
	ops     PtraceOps
	decoder *argtype.Decoder
	filter  *config.SyscallFilter
	emit    func(event.IEventStruct) error
	logger  logrus.FieldLogger
	summary bool

	pid    int
	states map[int]*pidState

	// 当前这一轮循环的数据
	cur       WaitResult
	regs      *argtype.RegisterSnapshot
	resumeSig syscall.Signal

	exit  *WaitResult
	stats TracerStats
}

func NewTracer(ops PtraceOps, decoder *argtype.Decoder, filter *config.SyscallFilter, emit func(event.IEventStruct) error, logger logrus.FieldLogger) *Tracer {
	if filter == nil {
		filter = config.NewSyscallFilter()
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Tracer{
		ops:     ops,
		decoder: decoder,
		filter:  filter,
		emit:    emit,
		logger:  logger,
		states:  make(map[int]*pidState),
	}
}

// SetSummary makes the tracer emit a final status line for the tracee.
func (this *Tracer) SetSummary(enabled bool) {
	this.summary = enabled
}

func (this *Tracer) state(pid int) *pidState {
	s, ok := this.states[pid]
	if !ok {
		s = &pidState{state: STATE_EXPECT_ENTRY}
		this.states[pid] = s
	}
	return s
}

// Run traces pid, which must be sitting in the stop left by the launcher.
// It returns nil once the tracee is gone, ctx.Err() on cancellation, and
// any other error when the session cannot continue.
func (this *Tracer) Run(ctx context.Context, pid int) error {
	this.pid = pid
	this.state(pid)
	// launcher 已经 wait 到了 exec 之后的第一次停止
	this.cur = WaitResult{Pid: pid, Kind: STOP_EVENT, Signal: syscall.SIGTRAP}
	this.stats.Stops++

	loop := LOOP_RESUME
	for loop != LOOP_DONE {
		next, err := this.step(ctx, loop)
		if err != nil {
			this.logger.WithError(err).WithField("state", loop).Debug("trace loop aborted")
			return err
		}
		loop = next
	}
	this.logger.WithFields(logrus.Fields{
		"pid":     pid,
		"stops":   this.stats.Stops,
		"resumes": this.stats.Resumes,
		"events":  this.stats.Events,
	}).Debug("trace loop done")
	return nil
}

func (this *Tracer) step(ctx context.Context, loop LoopState) (LoopState, error) {
	switch loop {
	case LOOP_WAIT:
		return this.doWait(ctx)
	case LOOP_FETCH:
		return this.doFetch()
	case LOOP_DECODE:
		return this.doDecode()
	case LOOP_RESUME:
		return this.doResume()
	}
	return LOOP_DONE, errors.Errorf("unknown loop state %s", loop)
}

func (this *Tracer) doWait(ctx context.Context) (LoopState, error) {
	if err := ctx.Err(); err != nil {
		this.abort()
		return LOOP_DONE, err
	}
	r, err := this.ops.Wait(this.pid)
	if err != nil {
		// ECHILD/ESRCH 表示子进程已经不在了 正常结束
		this.logger.WithError(err).Debug("wait failed, tracee gone")
		return LOOP_DONE, nil
	}
	this.cur = r
	this.resumeSig = 0
	if r.Kind != STOP_SYSCALL {
		this.logger.WithField("status", r).Debug("non syscall stop")
	}
	switch r.Kind {
	case STOP_EXITED, STOP_SIGNALED:
		return this.onTerminated(r)
	}
	this.stats.Stops++
	switch r.Kind {
	case STOP_SYSCALL:
		return LOOP_FETCH, nil
	case STOP_SIGNAL:
		// 信号投递停止 不切换阶段 恢复时把信号交还
		this.resumeSig = r.Signal
	}
	return LOOP_RESUME, nil
}

func (this *Tracer) onTerminated(r WaitResult) (LoopState, error) {
	delete(this.states, r.Pid)
	if r.Pid != this.pid {
		return LOOP_WAIT, nil
	}
	this.exit = &r
	if this.summary {
		e := &event.ExitEvent{Pid: r.Pid, Code: r.ExitCode}
		if r.Kind == STOP_SIGNALED {
			e.Signal = r.Signal
		}
		if err := this.dispatch(e); err != nil {
			return LOOP_DONE, err
		}
	}
	return LOOP_DONE, nil
}

func (this *Tracer) doFetch() (LoopState, error) {
	regs, err := this.ops.GetRegs(this.cur.Pid)
	if err != nil {
		this.logger.WithError(err).WithField("pid", this.cur.Pid).Debug("get regs failed, tracee gone")
		return LOOP_DONE, nil
	}
	this.regs = regs
	return LOOP_DECODE, nil
}

func (this *Tracer) doDecode() (LoopState, error) {
	regs := this.regs
	this.regs = nil
	s := this.state(this.cur.Pid)
	nr := regs.Nr
	if s.state == STATE_EXPECT_EXIT {
		// exit 时 orig_rax 仍是调用号 这里以 entry 记录的为准
		nr = s.nr
	}
	if _, err := config.GetSyscallSignature(nr); err != nil {
		return LOOP_DONE, err
	}
	entry := s.state == STATE_EXPECT_ENTRY
	if entry {
		s.state = STATE_EXPECT_EXIT
		s.nr = nr
	} else {
		s.state = STATE_EXPECT_ENTRY
	}
	if !this.filter.Match(nr) {
		return LOOP_RESUME, nil
	}
	var e *event.SyscallEvent
	if entry {
		sig, args, err := this.decoder.DecodeEntry(regs)
		if err != nil {
			return LOOP_DONE, err
		}
		e = event.NewSyscallEntry(this.cur.Pid, nr, sig.Name, args)
	} else {
		snapshot := *regs
		snapshot.Nr = nr
		sig, ret, err := this.decoder.DecodeExit(&snapshot)
		if err != nil {
			return LOOP_DONE, err
		}
		e = event.NewSyscallExit(this.cur.Pid, nr, sig.Name, ret)
	}
	if err := this.dispatch(e); err != nil {
		return LOOP_DONE, err
	}
	return LOOP_RESUME, nil
}

func (this *Tracer) doResume() (LoopState, error) {
	this.stats.Resumes++
	if err := this.ops.Resume(this.cur.Pid, this.resumeSig); err != nil {
		return LOOP_DONE, errors.Wrapf(ErrResume, "pid=%d sig=%d: %v", this.cur.Pid, this.resumeSig, err)
	}
	return LOOP_WAIT, nil
}

func (this *Tracer) dispatch(e event.IEventStruct) error {
	this.stats.Events++
	if this.emit == nil {
		return nil
	}
	return this.emit(e)
}

// abort 杀掉 tracee 并回收 避免留下僵尸进程
func (this *Tracer) abort() {
	if err := this.ops.Kill(this.pid); err != nil {
		this.logger.WithError(err).Debug("kill tracee failed")
		return
	}
	for {
		r, err := this.ops.Wait(this.pid)
		if err != nil || r.Terminated() {
			if err == nil && r.Pid == this.pid {
				this.exit = &r
			}
			return
		}
	}
}

// ExitStatus reports how the tracee ended. ok is false while it has not
// been observed to terminate.
func (this *Tracer) ExitStatus() (int, bool) {
	if this.exit == nil {
		return 0, false
	}
	return this.exit.ExitStatus(), true
}

func (this *Tracer) Stats() TracerStats {
	return this.stats
}
