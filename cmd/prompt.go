package cmd

import (
	"errors"

	"github.com/atomicstack/pkgpick/internal/prompt"
	"github.com/atomicstack/pkgpick/internal/selection"
	"github.com/spf13/cobra"
)

var errNoTerminal = errors.New("prompt needs an interactive terminal")

func newPromptCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Pick packages with one form per category",
		Long: `prompt asks for the package manager, then shows one checklist per
category and asks for confirmation, starting over until you accept the
list. The summary goes to stderr and the confirmed report to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !e.terminal() {
				return errNoTerminal
			}
			flow, err := prompt.New(prompt.Options{
				Asker:   e.asker(),
				Catalog: e.catalog(),
				Out:     e.stderr,
				Manager: e.cfg.App.Manager,
			})
			if err != nil {
				return err
			}
			sel, err := flow.Run()
			if err != nil {
				return err
			}
			return selection.Write(e.stdout, sel, e.cfg.Output)
		},
	}
}
