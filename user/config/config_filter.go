package config

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

const (
	TRACE_COMMON uint32 = iota
	TRACE_ALL
)

// 以 % 开头的分组名 展开为一组系统调用
var syscallGroups = map[string][]string{
	"%attr": {
		"setxattr", "lsetxattr", "fsetxattr",
		"getxattr", "lgetxattr", "fgetxattr",
		"listxattr", "llistxattr", "flistxattr",
		"removexattr", "lremovexattr", "fremovexattr",
	},
	"%file": {
		"open", "openat", "openat2", "creat", "access", "faccessat", "faccessat2",
		"mknod", "mknodat", "mkdir", "mkdirat", "rmdir", "unlink", "unlinkat",
		"symlink", "symlinkat", "link", "linkat", "rename", "renameat", "renameat2",
		"readlink", "readlinkat", "chdir", "fchdir", "chroot",
		"chmod", "fchmod", "fchmodat", "chown", "fchown", "lchown", "fchownat",
	},
	"%desc":  {"read", "write", "pread64", "pwrite64", "readv", "writev", "close", "lseek"},
	"%clone": {"clone", "clone3", "fork", "vfork"},
	"%exec":  {"execve", "execveat"},
	"%process": {
		"clone", "clone3", "fork", "vfork", "execve", "execveat", "wait4", "waitid",
		"exit", "exit_group", "rt_sigqueueinfo", "pidfd_send_signal", "pidfd_open", "pidfd_getfd",
	},
	"%net": {
		"socket", "socketpair", "bind", "listen", "accept", "accept4", "connect",
		"getsockname", "getpeername", "setsockopt", "getsockopt",
		"sendto", "recvfrom", "sendmsg", "recvmsg", "sendmmsg", "recvmmsg", "shutdown",
	},
	"%signal": {
		"sigaltstack", "rt_sigsuspend", "rt_sigaction", "rt_sigprocmask", "rt_sigpending",
		"rt_sigtimedwait", "rt_sigqueueinfo", "rt_sigreturn", "rt_tgsigqueueinfo",
	},
	"%kill":   {"kill", "tkill", "tgkill"},
	"%exit":   {"exit", "exit_group"},
	"%memory": {"brk", "mmap", "munmap", "mprotect", "mremap", "madvise", "msync"},
	"%stat":   {"stat", "fstat", "lstat", "newfstatat", "statx", "statfs", "fstatfs"},
	"%dup":    {"dup", "dup2", "dup3"},
	"%epoll":  {"epoll_create", "epoll_create1", "epoll_ctl", "epoll_wait", "epoll_pwait", "epoll_pwait2"},
}

var ErrUnknownSyscall = errors.New("unknown syscall")

// SyscallFilter decides which syscalls produce trace lines. Filtering never
// changes how the tracee is driven, only what gets printed.
type SyscallFilter struct {
	TraceMode    uint32
	SysWhitelist []uint64
	SysBlacklist []uint64
}

func NewSyscallFilter() *SyscallFilter {
	return &SyscallFilter{TraceMode: TRACE_ALL}
}

func expandSyscallNames(text string) []string {
	var names []string
	for _, v := range strings.Split(text, ",") {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if group, ok := syscallGroups[v]; ok {
			names = append(names, group...)
		} else {
			names = append(names, v)
		}
	}
	// 去重
	var unique_names []string
	for _, v := range names {
		if !slices.Contains(unique_names, v) {
			unique_names = append(unique_names, v)
		}
	}
	return unique_names
}

func namesToNumbers(names []string) ([]uint64, error) {
	var nrs []uint64
	for _, name := range names {
		nr, ok := LookupSyscallNumber(name)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownSyscall, "name=%s", name)
		}
		nrs = append(nrs, nr)
	}
	slices.Sort(nrs)
	return nrs, nil
}

// SetSysCall parses a comma separated whitelist. "all" or an empty string
// traces everything.
func (this *SyscallFilter) SetSysCall(text string) error {
	this.TraceMode = TRACE_ALL
	this.SysWhitelist = nil
	names := expandSyscallNames(text)
	if len(names) == 0 || slices.Contains(names, "all") {
		return nil
	}
	nrs, err := namesToNumbers(names)
	if err != nil {
		return err
	}
	this.TraceMode = TRACE_COMMON
	this.SysWhitelist = nrs
	return nil
}

func (this *SyscallFilter) SetSysCallBlacklist(text string) error {
	this.SysBlacklist = nil
	nrs, err := namesToNumbers(expandSyscallNames(text))
	if err != nil {
		return err
	}
	this.SysBlacklist = nrs
	return nil
}

func (this *SyscallFilter) Match(nr uint64) bool {
	if _, found := slices.BinarySearch(this.SysBlacklist, nr); found {
		return false
	}
	if this.TraceMode == TRACE_ALL {
		return true
	}
	_, found := slices.BinarySearch(this.SysWhitelist, nr)
	return found
}

func (this *SyscallFilter) Info() string {
	var whitelist []string
	for _, nr := range this.SysWhitelist {
		whitelist = append(whitelist, syscallTable[nr].Name)
	}
	var blacklist []string
	for _, nr := range this.SysBlacklist {
		blacklist = append(blacklist, syscallTable[nr].Name)
	}
	if this.TraceMode == TRACE_ALL {
		whitelist = []string{"all"}
	}
	return fmt.Sprintf("whitelist:[%s];blacklist:[%s]", strings.Join(whitelist, ","), strings.Join(blacklist, ","))
}
