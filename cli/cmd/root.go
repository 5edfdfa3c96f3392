package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"lurk/pkg/event_processor"
	"lurk/pkg/host"
	"lurk/user/config"
	"lurk/user/module"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"
)

var logger = logrus.New()
var gconfig = config.NewGlobalConfig()

// 追踪结果的输出 与诊断日志分开
var traceOut io.Writer = os.Stdout
var traceFile *os.File

// 目标进程的退出状态 作为本程序的退出码
var exitCode int

var rootCmd = &cobra.Command{
	Use:               "lurk [flags] [--] [command [args...]]",
	Short:             "trace the system calls of a command with ptrace",
	Long:              "基于 ptrace 的系统调用追踪工具 不指定命令时追踪 ls\n\t./lurk --syscall %file,read -o trace.log -- cat /etc/hostname",
	Args:              cobra.ArbitraryArgs,
	PersistentPreRunE: persistentPreRunEFunc,
	RunE:              runFunc,
}

// cobra.Command 中几个函数执行的顺序
// PersistentPreRun
// PreRun
// Run
// PostRun
// PersistentPostRun

func setupLogger() {
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if gconfig.Debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
}

func persistentPreRunEFunc(command *cobra.Command, args []string) error {
	setupLogger()

	// 配置文件中的值 命令行显式指定的选项优先
	if gconfig.ConfigFile != "" {
		fc, err := config.LoadFileConfig(gconfig.ConfigFile)
		if err != nil {
			return err
		}
		fc.Apply(gconfig, command.Flags().Changed)
		logger.WithField("path", gconfig.ConfigFile).Debug("config file loaded")
	}
	return nil
}

// openTraceOutput 只在真正追踪时创建 --out 文件
func openTraceOutput() error {
	if gconfig.LogFile == "" {
		return nil
	}
	f, err := os.Create(gconfig.LogFile)
	if err != nil {
		return errors.Wrap(err, "create trace output")
	}
	traceFile = f
	if gconfig.Quiet {
		// 直接设置 则不会输出到终端
		traceOut = f
	} else {
		// 这样可以同时输出到终端
		traceOut = io.MultiWriter(os.Stdout, f)
	}
	return nil
}

func closeTraceFile() {
	traceOut = os.Stdout
	if traceFile == nil {
		return
	}
	if err := traceFile.Close(); err != nil {
		logger.WithError(err).Warn("close trace output failed")
	}
	traceFile = nil
}

func runFunc(command *cobra.Command, args []string) error {
	defer closeTraceFile()

	if len(args) > 0 {
		gconfig.Command = args
	}
	conf, err := gconfig.ToTraceConfig()
	if err != nil {
		return err
	}
	if err := openTraceOutput(); err != nil {
		return err
	}

	ui, err := host.CheckHost()
	if err != nil {
		return err
	}
	logger.WithField("host", ui.String()).Debug("host check passed")

	mod := module.GetModuleByName(module.MODULE_NAME_PTRACE)
	if mod == nil {
		return errors.Errorf("module %s is not available on this platform", module.MODULE_NAME_PTRACE)
	}

	ctx, cancel := context.WithCancel(command.Context())
	defer cancel()

	processor := event_processor.NewEventProcessor(traceOut, gconfig.Color, logger)
	if err := mod.Init(ctx, logger, conf, processor); err != nil {
		return err
	}

	done := make(chan struct{})
	var g errgroup.Group
	g.Go(func() error {
		defer close(done)
		return mod.Run()
	})
	g.Go(func() error {
		forwardSignals(done, mod, cancel)
		return nil
	})
	err = g.Wait()

	if closeErr := mod.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if code, ok := mod.ExitStatus(); ok {
		exitCode = code
	}
	if errors.Is(err, context.Canceled) {
		logger.Warn("trace interrupted")
		return nil
	}
	return err
}

// 终端上的 Ctrl-C 会发给整个前台进程组 目标进程和本进程同组 已经收到了
func inForegroundGroup() bool {
	fd := os.Stdin.Fd()
	if !isatty.IsTerminal(fd) {
		return false
	}
	pgrp, err := unix.IoctlGetInt(int(fd), unix.TIOCGPGRP)
	if err != nil {
		return false
	}
	return pgrp == unix.Getpgrp()
}

func shouldForward(sig syscall.Signal, foreground bool) bool {
	return !(foreground && sig == syscall.SIGINT)
}

// forwardSignals 第一次收到信号时转发给目标进程 第二次直接结束追踪
func forwardSignals(done <-chan struct{}, mod module.IModule, cancel context.CancelFunc) {
	stopper := make(chan os.Signal, 1)
	signal.Notify(stopper, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stopper)

	received := 0
	for {
		select {
		case <-done:
			return
		case s := <-stopper:
			received++
			sig, _ := s.(syscall.Signal)
			if received == 1 {
				if !shouldForward(sig, inForegroundGroup()) {
					logger.WithField("signal", sig).Debug("tracee got the signal from the terminal")
					continue
				}
				logger.WithField("signal", sig).Debug("forwarding signal to tracee")
				if err := mod.Signal(sig); err != nil {
					logger.WithError(err).Debug("forward signal failed")
				}
				continue
			}
			logger.WithField("signal", sig).Warn("stopping trace")
			cancel()
			if err := mod.Signal(syscall.SIGKILL); err != nil {
				logger.WithError(err).Debug("kill tracee failed")
			}
		}
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// The returned value is the process exit code.
func Execute() int {
	// 异常时不显示帮助信息 只提示异常
	rootCmd.SilenceUsage = true
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	err := rootCmd.Execute()
	if err != nil {
		return 1
	}
	return exitCode
}

func init() {
	cobra.EnablePrefixMatching = false
	// 目标命令自己的选项不要当成 lurk 的选项解析
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.PersistentFlags().StringVarP(&gconfig.ConfigFile, "config", "c", "", "yaml config file")
	// 日志设定
	rootCmd.PersistentFlags().BoolVarP(&gconfig.Debug, "debug", "d", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&gconfig.Quiet, "quiet", "q", false, "wont print trace lines to terminal, requires --out")
	rootCmd.PersistentFlags().StringVarP(&gconfig.LogFile, "out", "o", "", "save the trace lines to file")
	rootCmd.PersistentFlags().BoolVar(&gconfig.Color, "color", false, "color entry and exit lines on a terminal")
	rootCmd.PersistentFlags().BoolVar(&gconfig.Summary, "summary", false, "print a final line with the exit status of the tracee")
	// syscall 过滤
	rootCmd.PersistentFlags().StringVar(&gconfig.SysCall, "syscall", "", "syscalls to show, comma separated, %group names allowed")
	rootCmd.PersistentFlags().StringVar(&gconfig.SysCallBlacklist, "no-syscall", "", "syscalls to hide")
	// 参数显示
	rootCmd.PersistentFlags().IntVar(&gconfig.StrLimit, "strlen", config.DEFAULT_STR_LIMIT, "max characters shown for string arguments")
	rootCmd.PersistentFlags().StringVar(&gconfig.Charset, "charset", config.CHARSET_LATIN1, "decode string arguments as latin1 or utf8")
	rootCmd.PersistentFlags().BoolVar(&gconfig.NoAslr, "no-aslr", true, "disable address space randomization for the tracee")
}
