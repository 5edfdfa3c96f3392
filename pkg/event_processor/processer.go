package event_processor

import (
	"io"
	"os"
	"sync"

	"lurk/user/event"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	COLOR_RESET  = "\033[0m"
	COLOR_GREEN  = "\033[32m"
	COLOR_YELLOW = "\033[33m"
	COLOR_RED    = "\033[31m"
)

// EventProcessor writes rendered events to the trace output. Each event is
// one Write call so lines from different pids never interleave.
type EventProcessor struct {
	sync.Mutex
	out    io.Writer
	color  bool
	count  uint64
	logger logrus.FieldLogger
}

func NewEventProcessor(out io.Writer, color bool, logger logrus.FieldLogger) *EventProcessor {
	ep := &EventProcessor{}
	ep.out = out
	ep.color = color && isTerminal(out)
	ep.logger = logger
	return ep
}

func isTerminal(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetColor overrides terminal detection.
func (this *EventProcessor) SetColor(enabled bool) {
	this.Lock()
	defer this.Unlock()
	this.color = enabled
}

func (this *EventProcessor) GetLogger() logrus.FieldLogger {
	return this.logger
}

func (this *EventProcessor) paint(e event.IEventStruct, line string) string {
	if !this.color {
		return line
	}
	var code string
	switch v := e.(type) {
	case *event.SyscallEvent:
		if v.Phase == event.PHASE_EXIT {
			code = COLOR_YELLOW
		} else {
			code = COLOR_GREEN
		}
	case *event.ExitEvent:
		code = COLOR_RED
	default:
		return line
	}
	return code + line + COLOR_RESET
}

// Write event
func (this *EventProcessor) Write(e event.IEventStruct) error {
	line := e.String()
	this.Lock()
	defer this.Unlock()
	if _, err := io.WriteString(this.out, this.paint(e, line)+"\n"); err != nil {
		return errors.Wrapf(err, "write event %s", e.GetUUID())
	}
	this.count++
	return nil
}

func (this *EventProcessor) Count() uint64 {
	this.Lock()
	defer this.Unlock()
	return this.count
}

func (this *EventProcessor) Close() error {
	this.Lock()
	defer this.Unlock()
	if this.logger != nil {
		this.logger.WithField("events", this.count).Debug("event processor closed")
	}
	if s, ok := this.out.(interface{ Sync() error }); ok {
		// stdout 可能是管道或终端 Sync 失败不算错误
		_ = s.Sync()
	}
	return nil
}
