package module

import "fmt"

const (
	PROBE_TYPE_PTRACE = "ptrace"
)

const (
	MODULE_NAME_PTRACE = "PtraceMod"
)

// 每个 pid 的 syscall 阶段
type TracerState uint8

const (
	STATE_EXPECT_ENTRY TracerState = iota
	STATE_EXPECT_EXIT
)

func (this TracerState) String() string {
	if this == STATE_EXPECT_EXIT {
		return "ExpectExit"
	}
	return "ExpectEntry"
}

// 追踪循环的状态
type LoopState uint8

const (
	LOOP_WAIT LoopState = iota
	LOOP_FETCH
	LOOP_DECODE
	LOOP_RESUME
	LOOP_DONE
)

var loopStateNames = [...]string{
	LOOP_WAIT:   "wait",
	LOOP_FETCH:  "fetch",
	LOOP_DECODE: "decode",
	LOOP_RESUME: "resume",
	LOOP_DONE:   "done",
}

func (this LoopState) String() string {
	if int(this) < len(loopStateNames) {
		return loopStateNames[this]
	}
	return fmt.Sprintf("LoopState(%d)", uint8(this))
}
