package memory

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// PtracePeeker reads words with PTRACE_PEEKDATA. The caller must be the
// tracer thread of Pid and the tracee must be stopped.
type PtracePeeker struct {
	Pid int
}

func (this *PtracePeeker) ReadWord(addr uint64) ([WORD_SIZE]byte, error) {
	var word [WORD_SIZE]byte
	n, err := unix.PtracePeekData(this.Pid, uintptr(addr), word[:])
	if err != nil {
		return word, errors.Wrapf(err, "peek pid=%d addr=0x%x", this.Pid, addr)
	}
	if n != WORD_SIZE {
		return word, errors.Errorf("short peek pid=%d addr=0x%x n=%d", this.Pid, addr, n)
	}
	return word, nil
}
