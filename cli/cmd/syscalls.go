package cmd

import (
	"fmt"
	"strings"

	"lurk/user/config"

	"github.com/spf13/cobra"
)

var syscallsCmd = &cobra.Command{
	Use:   "syscalls",
	Short: "list the syscalls lurk can decode, honoring --syscall and --no-syscall",
	Args:  cobra.NoArgs,
	RunE:  syscallsCommandFunc,
}

func init() {
	rootCmd.AddCommand(syscallsCmd)
}

func syscallsCommandFunc(command *cobra.Command, args []string) error {
	filter := config.NewSyscallFilter()
	if err := filter.SetSysCall(gconfig.SysCall); err != nil {
		return err
	}
	if err := filter.SetSysCallBlacklist(gconfig.SysCallBlacklist); err != nil {
		return err
	}
	out := command.OutOrStdout()
	for nr := 0; nr < config.SyscallCount(); nr++ {
		sig := config.MustSyscallSignature(uint64(nr))
		if sig.Name == "ni_syscall" || !filter.Match(uint64(nr)) {
			continue
		}
		var kinds []string
		for _, kind := range sig.Args {
			if kind != config.ARG_NONE {
				kinds = append(kinds, kind.String())
			}
		}
		fmt.Fprintf(out, "%d\t%s(%s)\n", nr, sig.Name, strings.Join(kinds, ", "))
	}
	return nil
}
