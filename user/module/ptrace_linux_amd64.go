package module

import (
	"context"
	"runtime"
	"sync"
	"syscall"

	"lurk/pkg/event_processor"
	"lurk/user/argtype"
	"lurk/user/config"
	"lurk/user/memory"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// MPtrace launches the configured command and traces it with ptrace.
type MPtrace struct {
	Module
	ops PtraceOps

	lock   sync.Mutex
	tracee *Tracee
	tracer *Tracer
}

func (this *MPtrace) Init(ctx context.Context, logger logrus.FieldLogger, conf *config.TraceConfig, processor *event_processor.EventProcessor) error {
	if conf == nil {
		return errors.New("nil trace config")
	}
	this.Module.Init(ctx, logger, conf, processor)
	if this.ops == nil {
		this.ops = NewPtraceOps()
	}
	this.tracee = nil
	this.tracer = nil
	return nil
}

func (this *MPtrace) Run() error {
	// ptrace 请求必须来自 attach 的那个线程
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	conf := this.GetConf()
	this.logger.Debugf("%s\ttrace info:%s", this.Name(), conf.Info())

	tracee, err := Launch(conf, this.ops, this.logger)
	if err != nil {
		return err
	}
	charset, err := argtype.ParseCharset(conf.Charset)
	if err != nil {
		return err
	}
	reader := memory.NewReader(&memory.PtracePeeker{Pid: tracee.Pid}, memory.ReadLimitFor(conf.StrLimit))
	decoder := argtype.NewDecoder(reader, argtype.WithStrLimit(conf.StrLimit), argtype.WithCharset(charset))
	tracer := NewTracer(this.ops, decoder, conf.Filter, this.Dispatcher, this.logger)
	tracer.SetSummary(conf.Summary)

	this.lock.Lock()
	this.tracee = tracee
	this.tracer = tracer
	this.lock.Unlock()

	err = tracer.Run(this.ctx, tracee.Pid)
	// 进程已经被 wait4 回收 这里只释放 exec.Cmd 的资源
	_ = tracee.Cmd.Process.Release()
	return err
}

func (this *MPtrace) Signal(sig syscall.Signal) error {
	this.lock.Lock()
	defer this.lock.Unlock()
	if this.tracee == nil {
		return errors.New("tracee not started")
	}
	return syscall.Kill(this.tracee.Pid, sig)
}

func (this *MPtrace) ExitStatus() (int, bool) {
	this.lock.Lock()
	defer this.lock.Unlock()
	if this.tracer == nil {
		return 0, false
	}
	return this.tracer.ExitStatus()
}

func (this *MPtrace) Stats() TracerStats {
	this.lock.Lock()
	defer this.lock.Unlock()
	if this.tracer == nil {
		return TracerStats{}
	}
	return this.tracer.Stats()
}

func init() {
	mod := &MPtrace{}
	mod.name = MODULE_NAME_PTRACE
	mod.mType = PROBE_TYPE_PTRACE
	Register(mod)
}
