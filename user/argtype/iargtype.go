package argtype

// RegisterSnapshot is the register state captured at one syscall stop.
// Args follows the calling convention slot order.
type RegisterSnapshot struct {
	Nr   uint64
	Args [6]uint64
	Ret  uint64
}

// StringReader fetches a NUL terminated string from the traced process.
type StringReader interface {
	ReadCString(addr uint64) []byte
}

type IArgType interface {
	GetName() string
	// Parse renders the raw register value of one argument slot
	Parse(value uint64) string
}

type ArgType struct {
	Name string
}

func (this *ArgType) GetName() string {
	return this.Name
}
