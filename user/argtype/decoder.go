package argtype

import (
	"strings"

	"lurk/user/config"

	"github.com/pkg/errors"
)

type Decoder struct {
	types map[config.ArgKind]IArgType
}

type DecoderOption func(*ARG_STRING)

func WithStrLimit(limit int) DecoderOption {
	return func(at *ARG_STRING) {
		if limit > 0 {
			at.StrLimit = limit
		}
	}
}

func WithCharset(charset uint32) DecoderOption {
	return func(at *ARG_STRING) {
		at.Charset = charset
	}
}

func NewDecoder(mem StringReader, opts ...DecoderOption) *Decoder {
	str := &ARG_STRING{
		ArgType:  ArgType{Name: "str"},
		Reader:   mem,
		StrLimit: config.DEFAULT_STR_LIMIT,
		Charset:  CHARSET_LATIN1,
	}
	for _, opt := range opts {
		opt(str)
	}
	return &Decoder{
		types: map[config.ArgKind]IArgType{
			config.ARG_INT:  &ARG_NUM{ArgType{Name: "int"}},
			config.ARG_ADDR: &ARG_PTR{ArgType{Name: "addr"}},
			config.ARG_STR:  str,
		},
	}
}

// DecodeEntry renders the arguments of the syscall in regs, in slot order.
// ARG_NONE slots produce nothing.
func (this *Decoder) DecodeEntry(regs *RegisterSnapshot) (*config.SyscallSignature, []string, error) {
	sig, err := config.GetSyscallSignature(regs.Nr)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}
	args := make([]string, 0, config.MAX_SYSCALL_ARGS)
	for i, kind := range sig.Args {
		if kind == config.ARG_NONE {
			continue
		}
		at, ok := this.types[kind]
		if !ok {
			return nil, nil, errors.Errorf("%s arg %d has unknown kind %s", sig.Name, i, kind)
		}
		args = append(args, at.Parse(regs.Args[i]))
	}
	return sig, args, nil
}

// DecodeExit returns the signature and the signed return value.
func (this *Decoder) DecodeExit(regs *RegisterSnapshot) (*config.SyscallSignature, int64, error) {
	sig, err := config.GetSyscallSignature(regs.Nr)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}
	return sig, int64(regs.Ret), nil
}

func JoinArgs(args []string) string {
	return strings.Join(args, ", ")
}
