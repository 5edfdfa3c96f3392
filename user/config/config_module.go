package config

import (
	"fmt"
	"strings"
)

// TraceConfig is what the trace module needs to run one session.
type TraceConfig struct {
	Command  string
	Args     []string
	Env      []string
	NoAslr   bool
	StrLimit int
	Charset  string
	Summary  bool
	Debug    bool
	Filter   *SyscallFilter
}

func NewTraceConfig() *TraceConfig {
	return &TraceConfig{
		Command:  DEFAULT_COMMAND,
		NoAslr:   true,
		StrLimit: DEFAULT_STR_LIMIT,
		Charset:  CHARSET_LATIN1,
		Filter:   NewSyscallFilter(),
	}
}

func (this *TraceConfig) Argv() []string {
	return append([]string{this.Command}, this.Args...)
}

func (this *TraceConfig) Info() string {
	var s []string
	s = append(s, fmt.Sprintf("command:%s", strings.Join(this.Argv(), " ")))
	s = append(s, fmt.Sprintf("no_aslr:%t", this.NoAslr))
	s = append(s, fmt.Sprintf("strlen:%d", this.StrLimit))
	s = append(s, fmt.Sprintf("charset:%s", this.Charset))
	s = append(s, this.Filter.Info())
	return strings.Join(s, ", ")
}
