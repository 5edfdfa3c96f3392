package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FileConfig is the layout of the optional --config yaml file.
//
//	command: ["cat", "/etc/hostname"]
//	syscall: "%file,read"
//	strlen: 32
//	env:
//	  LANG: C
type FileConfig struct {
	Command          []string          `yaml:"command,omitempty"`
	Env              map[string]string `yaml:"env,omitempty"`
	SysCall          string            `yaml:"syscall,omitempty"`
	SysCallBlacklist string            `yaml:"no_syscall,omitempty"`
	StrLimit         int               `yaml:"strlen,omitempty"`
	Charset          string            `yaml:"charset,omitempty"`
	NoAslr           *bool             `yaml:"no_aslr,omitempty"`
	Color            bool              `yaml:"color,omitempty"`
	Summary          bool              `yaml:"summary,omitempty"`
	LogFile          string            `yaml:"out,omitempty"`
}

func LoadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	if fc.StrLimit < 0 {
		return nil, fmt.Errorf("invalid strlen %d in %s", fc.StrLimit, path)
	}
	return &fc, nil
}

// Apply copies file values into gconfig. Options whose flag was given on the
// command line are left alone, changed reports that.
func (this *FileConfig) Apply(gconfig *GlobalConfig, changed func(name string) bool) {
	if len(this.Command) > 0 && len(gconfig.Command) == 0 {
		gconfig.Command = append([]string{}, this.Command...)
	}
	if len(this.Env) > 0 {
		gconfig.Env = append(gconfig.Env, this.EnvList()...)
	}
	if this.SysCall != "" && !changed("syscall") {
		gconfig.SysCall = this.SysCall
	}
	if this.SysCallBlacklist != "" && !changed("no-syscall") {
		gconfig.SysCallBlacklist = this.SysCallBlacklist
	}
	if this.StrLimit > 0 && !changed("strlen") {
		gconfig.StrLimit = this.StrLimit
	}
	if this.Charset != "" && !changed("charset") {
		gconfig.Charset = this.Charset
	}
	if this.NoAslr != nil && !changed("no-aslr") {
		gconfig.NoAslr = *this.NoAslr
	}
	if this.Color && !changed("color") {
		gconfig.Color = true
	}
	if this.Summary && !changed("summary") {
		gconfig.Summary = true
	}
	if this.LogFile != "" && !changed("out") {
		gconfig.LogFile = this.LogFile
	}
}

// EnvList renders Env as KEY=VALUE pairs in a stable order.
func (this *FileConfig) EnvList() []string {
	var keys []string
	for k := range this.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var env []string
	for _, k := range keys {
		env = append(env, k+"="+this.Env[k])
	}
	return env
}
