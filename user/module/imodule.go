package module

import (
	"context"
	"fmt"
	"sort"
	"syscall"

	"lurk/pkg/event_processor"
	"lurk/user/config"
	"lurk/user/event"

	"github.com/sirupsen/logrus"
)

type IModule interface {
	// Init 初始化
	Init(context.Context, logrus.FieldLogger, *config.TraceConfig, *event_processor.EventProcessor) error

	// Name 获取当前module的名字
	Name() string

	// Run 启动并追踪到目标进程结束
	Run() error

	// Signal 把信号转发给目标进程
	Signal(sig syscall.Signal) error

	// ExitStatus 目标进程的退出状态
	ExitStatus() (int, bool)

	// Close 关闭退出
	Close() error
}

type Module struct {
	ctx       context.Context
	logger    logrus.FieldLogger
	processor *event_processor.EventProcessor
	conf      *config.TraceConfig
	name      string

	// module的类型
	mType string
}

// Init 对象初始化
func (this *Module) Init(ctx context.Context, logger logrus.FieldLogger, conf *config.TraceConfig, processor *event_processor.EventProcessor) {
	this.ctx = ctx
	this.logger = logger.WithField("module", this.name)
	this.conf = conf
	this.processor = processor
}

func (this *Module) Name() string {
	return this.name
}

func (this *Module) GetConf() *config.TraceConfig {
	return this.conf
}

// 输出事件 没有 processor 时只计数
func (this *Module) Dispatcher(e event.IEventStruct) error {
	if this.processor == nil {
		return nil
	}
	return this.processor.Write(e)
}

func (this *Module) Close() error {
	if this.conf != nil && this.conf.Debug {
		this.logger.Debugf("%s\tClose", this.name)
	}
	if this.processor == nil {
		return nil
	}
	return this.processor.Close()
}

var modules = make(map[string]IModule)

func Register(p IModule) {
	if p == nil {
		panic("Register module is nil")
	}
	name := p.Name()
	if _, dup := modules[name]; dup {
		panic(fmt.Sprintf("Register called twice for module %s", name))
	}
	modules[name] = p
}

// GetModuleByName returns nil when no module is registered under name.
func GetModuleByName(name string) IModule {
	return modules[name]
}

func ModuleNames() []string {
	var names []string
	for name := range modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
