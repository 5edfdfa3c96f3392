package host

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// syscall 表只覆盖 x86_64
const SUPPORTED_MACHINE = "x86_64"

const YAMA_PTRACE_SCOPE = "/proc/sys/kernel/yama/ptrace_scope"

// 3 表示完全禁止 ptrace
const YAMA_NO_ATTACH = 3

type UnameInfo struct {
	SysName  string
	Nodename string
	Release  string
	Version  string
	Machine  string
}

func GetOSUnamer() (*UnameInfo, error) {
	u := unix.Utsname{}
	e := unix.Uname(&u)
	if e != nil {
		return nil, e
	}
	ui := UnameInfo{}
	ui.SysName = charsToString(u.Sysname)
	ui.Nodename = charsToString(u.Nodename)
	ui.Release = charsToString(u.Release)
	ui.Version = charsToString(u.Version)
	ui.Machine = charsToString(u.Machine)
	return &ui, nil
}

func charsToString(ca [65]byte) string {
	s := make([]byte, len(ca))
	var lens int
	for ; lens < len(ca); lens++ {
		if ca[lens] == 0 {
			break
		}
		s[lens] = uint8(ca[lens])
	}
	return string(s[0:lens])
}

// ParsePtraceScope reads the yama setting. A missing file means yama is not
// built in, which behaves like scope 0.
func ParsePtraceScope(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(data)))
}

// CheckHost verifies that this machine can run the tracer at all.
func CheckHost() (*UnameInfo, error) {
	ui, err := GetOSUnamer()
	if err != nil {
		return nil, fmt.Errorf("uname failed, error:%v", err)
	}
	if ui.Machine != SUPPORTED_MACHINE {
		return ui, fmt.Errorf("unsupported machine:%s, only %s syscalls are known", ui.Machine, SUPPORTED_MACHINE)
	}
	scope, err := ParsePtraceScope(YAMA_PTRACE_SCOPE)
	if err != nil {
		return ui, fmt.Errorf("read %s failed, error:%v", YAMA_PTRACE_SCOPE, err)
	}
	if scope >= YAMA_NO_ATTACH {
		return ui, fmt.Errorf("ptrace disabled, %s=%d", YAMA_PTRACE_SCOPE, scope)
	}
	return ui, nil
}

func (this *UnameInfo) String() string {
	return fmt.Sprintf("%s %s %s", this.SysName, this.Release, this.Machine)
}
