package config

import (
	"fmt"

	"github.com/pkg/errors"
)

// 每个系统调用固定六个参数槽位 对应 x86_64 调用约定的六个参数寄存器
const MAX_SYSCALL_ARGS = 6

type ArgKind uint32

const (
	ARG_NONE ArgKind = iota
	ARG_INT
	ARG_STR
	ARG_ADDR
)

// 表内简写
const (
	NONE = ARG_NONE
	INT  = ARG_INT
	STR  = ARG_STR
	ADDR = ARG_ADDR
)

func (this ArgKind) String() string {
	switch this {
	case ARG_NONE:
		return "none"
	case ARG_INT:
		return "int"
	case ARG_STR:
		return "str"
	case ARG_ADDR:
		return "addr"
	}
	return fmt.Sprintf("ArgKind(%d)", uint32(this))
}

type K = [MAX_SYSCALL_ARGS]ArgKind

// SyscallSignature describes one entry of the syscall table. Slots past the
// real argument count stay ARG_NONE.
type SyscallSignature struct {
	Name string
	Args K
}

// ArgCount returns the number of slots that are not ARG_NONE.
func (this *SyscallSignature) ArgCount() int {
	count := 0
	for _, kind := range this.Args {
		if kind != ARG_NONE {
			count++
		}
	}
	return count
}

var ErrSyscallOutOfRange = errors.New("syscall number out of table range")

func SyscallCount() int {
	return len(syscallTable)
}

// GetSyscallSignature looks up the signature for nr. A number outside the
// table means the table does not match the platform.
func GetSyscallSignature(nr uint64) (*SyscallSignature, error) {
	if nr >= uint64(len(syscallTable)) {
		return nil, errors.Wrapf(ErrSyscallOutOfRange, "nr=%d table size=%d", nr, len(syscallTable))
	}
	return &syscallTable[nr], nil
}

func MustSyscallSignature(nr uint64) *SyscallSignature {
	sig, err := GetSyscallSignature(nr)
	if err != nil {
		panic(err)
	}
	return sig
}

func LookupSyscallNumber(name string) (uint64, bool) {
	if name == "ni_syscall" {
		return 0, false
	}
	for nr := range syscallTable {
		if syscallTable[nr].Name == name {
			return uint64(nr), true
		}
	}
	return 0, false
}
