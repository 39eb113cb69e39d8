// Package cli implements the lector command-line interface using Cobra: a
// single command that hosts a shell under a pseudo-terminal and reads it
// aloud.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lectorterm/lector/internal/config"
	"github.com/lectorterm/lector/internal/errs"
	"github.com/lectorterm/lector/internal/logging"
	"github.com/lectorterm/lector/internal/loop"
	"github.com/lectorterm/lector/internal/ptyhost"
	"github.com/lectorterm/lector/internal/screen"
	"github.com/lectorterm/lector/internal/speech"
	"github.com/lectorterm/lector/internal/symbols"
)

var (
	shellFlag        string
	speechDriverFlag string
	speechServerFlag string
	configFlag       string
	verboseFlag      bool
)

var rootCmd = &cobra.Command{
	Use:   "lector",
	Short: "A screen reader for the terminal",
	Long: `lector hosts a shell under a pseudo-terminal, narrates what it
prints, and lets you review the screen and its tables by voice without
ever seeing the display.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().StringVar(&shellFlag, "shell", "", "shell to host (default: $SHELL, then /bin/sh)")
	rootCmd.Flags().StringVar(&speechDriverFlag, "speech-driver", "tts", "speech backend: tts or proc")
	rootCmd.Flags().StringVar(&speechServerFlag, "speech-server", "", "path to the proc speech driver (required iff --speech-driver=proc)")
	rootCmd.Flags().StringVar(&configFlag, "config", "", "override the default init script path")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "verbose logging")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{msg: err.Error()}
	})
}

// Execute runs the root command and returns the process exit code per
// section 6: 0 on a clean child exit, the child's exit code otherwise, 2
// on a usage error, 1 on a fatal startup failure.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if usageErr, ok := err.(*usageError); ok {
			fmt.Fprintln(os.Stderr, usageErr.Error())
			return 2
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return lastExitCode
}

// lastExitCode carries the child's exit code out of RunE, since cobra's
// Execute only reports success/failure, not an arbitrary integer.
var lastExitCode int

type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func run(ctx context.Context) error {
	logging.Configure(verboseFlag)

	opts := config.Defaults()
	opts.Shell = config.ResolveShell(shellFlag)
	opts.Term = config.ResolveTerm("")
	opts.SpeechDriver = speechDriverFlag
	opts.SpeechServer = speechServerFlag
	opts.ConfigPath = config.ResolveConfigPath(configFlag)

	if opts.SpeechDriver == "proc" && opts.SpeechServer == "" {
		return &usageError{msg: "--speech-server is required when --speech-driver=proc"}
	}
	if opts.SpeechDriver != "tts" && opts.SpeechDriver != "proc" {
		return &usageError{msg: fmt.Sprintf("unknown --speech-driver %q", opts.SpeechDriver)}
	}

	fd := int(os.Stdin.Fd())
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		cols, rows = 80, 24
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return errs.New(errs.Fatal, err, "enter raw mode: is this a real TTY?")
	}
	defer term.Restore(fd, oldState)

	env := append(os.Environ(), "TERM="+opts.Term)
	host, err := ptyhost.Spawn(ctx, opts.Shell, nil, env, rows, cols)
	if err != nil {
		return err
	}
	defer host.Close()

	scr := screen.New(screen.WithSize(rows, cols))
	processor := symbols.NewProcessor(symbols.NewTable())

	backend, err := newSpeechBackend(ctx, opts)
	if err != nil {
		return err
	}
	defer backend.Close()

	l := loop.New(host, scr, processor, opts.SymbolLevel, backend, os.Stdin, loop.Hooks{
		OnError: func(err error) { logging.ErrorIf(err, "runtime error") },
	})

	if err := l.Run(ctx); err != nil && err != context.Canceled {
		return errs.New(errs.Recoverable, err, "event loop exited with an error")
	}

	lastExitCode = host.Wait()
	return nil
}

func newSpeechBackend(ctx context.Context, opts config.Options) (speech.Backend, error) {
	if opts.SpeechDriver == "proc" {
		return speech.StartProcBackend(ctx, opts.SpeechServer, nil, func(err error) {
			logging.ErrorIf(err, "speech backend error")
		})
	}
	return speech.NewStubBackend(), nil
}
