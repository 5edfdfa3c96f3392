package event

import (
	"fmt"
	"syscall"

	"golang.org/x/sys/unix"
)

// ExitEvent 被追踪进程结束时的最后一行
type ExitEvent struct {
	Pid    int
	Code   int
	Signal syscall.Signal
}

func (this *ExitEvent) String() string {
	if this.Signal != 0 {
		name := unix.SignalName(this.Signal)
		if name == "" {
			name = fmt.Sprintf("signal %d", int(this.Signal))
		}
		return fmt.Sprintf("[%d] +++ killed by %s +++", this.Pid, name)
	}
	return fmt.Sprintf("[%d] +++ exited with %d +++", this.Pid, this.Code)
}

func (this *ExitEvent) EventType() EventType {
	return EventTypeExitData
}

func (this *ExitEvent) GetUUID() string {
	return fmt.Sprintf("%d_exit", this.Pid)
}
