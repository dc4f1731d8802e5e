// Package cmd wires the pkgpick command line.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/pkgpick/internal/app"
	"github.com/atomicstack/pkgpick/internal/catalog"
	"github.com/atomicstack/pkgpick/internal/config"
	"github.com/atomicstack/pkgpick/internal/logging"
	"github.com/atomicstack/pkgpick/internal/prompt"
	"github.com/atomicstack/pkgpick/internal/selection"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var version = "dev"

// SetVersion sets the version reported by `pkgpick version`.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// env carries everything a command touches outside the process, so tests
// can swap the terminal program and the prompt forms.
type env struct {
	stdout   io.Writer
	stderr   io.Writer
	environ  func() []string
	catalog  func() catalog.Catalog
	runTUI   func(app.Config, catalog.Catalog) (app.Result, error)
	asker    func() prompt.Asker
	terminal func() bool

	flags *config.Flags
	cfg   config.Config
}

func defaultEnv() *env {
	return &env{
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		environ: os.Environ,
		catalog: catalog.Default,
		runTUI:  app.Run,
		asker:   func() prompt.Asker { return prompt.NewFormAsker() },
		terminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
	}
}

func newRootCmd(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:   "pkgpick",
		Short: "Pick the packages to install on a fresh machine",
		Long: `pkgpick walks through a fixed catalog of packages in tabs (required,
GUI, CLI and useless programs), lets you toggle entries and prints the
install command for the chosen package manager.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.runPicker()
		},
	}
	root.SetOut(e.stdout)
	root.SetErr(e.stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", config.ErrInvalid, err)
	})
	e.flags = config.Bind(root.PersistentFlags())

	root.AddCommand(newPromptCmd(e))
	root.AddCommand(newManagersCmd(e))
	root.AddCommand(newVersionCmd(e))
	return root
}

func (e *env) setup(args []string) error {
	cfg, err := e.flags.Resolve(args, e.environ())
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	traceStartup(cfg)
	e.cfg = cfg
	return nil
}

func (e *env) runPicker() error {
	res, err := e.runTUI(e.cfg.App, e.catalog())
	if err != nil {
		return err
	}
	if !res.Submitted {
		return nil
	}
	return selection.Write(e.stdout, res.Selection, e.cfg.Output)
}

// Execute runs the command line and returns the process exit status.
func Execute() int {
	return execute(defaultEnv(), os.Args[1:])
}

func execute(e *env, args []string) int {
	root := newRootCmd(e)
	root.SetArgs(args)
	err := root.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, config.ErrInvalid):
		config.Report(e.stderr, err)
		return 2
	default:
		logging.Error(err)
		fmt.Fprintf(e.stderr, "Error: %v\n", err)
		return 1
	}
}
