package config

import (
	"strings"

	"github.com/pkg/errors"
)

// 原实现固定追踪 ls
const DEFAULT_COMMAND = "ls"

const DEFAULT_STR_LIMIT = 64

const (
	CHARSET_LATIN1 = "latin1"
	CHARSET_UTF8   = "utf8"
)

// GlobalConfig holds the values bound to command line flags.
type GlobalConfig struct {
	ConfigFile       string
	Debug            bool
	Quiet            bool
	Color            bool
	Summary          bool
	NoAslr           bool
	LogFile          string
	SysCall          string
	SysCallBlacklist string
	StrLimit         int
	Charset          string
	Command          []string
	Env              []string
}

func NewGlobalConfig() *GlobalConfig {
	config := &GlobalConfig{}
	config.NoAslr = true
	config.StrLimit = DEFAULT_STR_LIMIT
	config.Charset = CHARSET_LATIN1
	return config
}

func (this *GlobalConfig) Check() error {
	if this.StrLimit <= 0 {
		return errors.Errorf("strlen must be positive, got %d", this.StrLimit)
	}
	switch strings.ToLower(this.Charset) {
	case CHARSET_LATIN1, CHARSET_UTF8:
	default:
		return errors.Errorf("unsupported charset:%s", this.Charset)
	}
	if this.Quiet && this.LogFile == "" {
		return errors.New("--quiet requires --out, otherwise nothing is printed")
	}
	return nil
}

// ToTraceConfig validates the global settings and turns them into the
// configuration consumed by the trace module.
func (this *GlobalConfig) ToTraceConfig() (*TraceConfig, error) {
	if err := this.Check(); err != nil {
		return nil, err
	}
	conf := NewTraceConfig()
	if len(this.Command) > 0 {
		conf.Command = this.Command[0]
		conf.Args = append([]string{}, this.Command[1:]...)
	}
	conf.Env = append([]string{}, this.Env...)
	conf.NoAslr = this.NoAslr
	conf.StrLimit = this.StrLimit
	conf.Charset = strings.ToLower(this.Charset)
	conf.Summary = this.Summary
	conf.Debug = this.Debug
	if err := conf.Filter.SetSysCall(this.SysCall); err != nil {
		return nil, err
	}
	if err := conf.Filter.SetSysCallBlacklist(this.SysCallBlacklist); err != nil {
		return nil, err
	}
	return conf, nil
}
