package cmd

import (
	"fmt"

	"github.com/atomicstack/pkgpick/internal/format/table"
	"github.com/atomicstack/pkgpick/internal/pkgmgr"
	"github.com/spf13/cobra"
)

func newManagersCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "managers",
		Short: "List the supported package managers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, line := range managerTable(pkgmgr.Known(), available) {
				if _, err := fmt.Fprintln(e.stdout, line); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

var available = func(m pkgmgr.Manager) bool { return m.Available() }

func managerTable(managers []pkgmgr.Manager, detected func(pkgmgr.Manager) bool) []string {
	rows := [][]string{{"NAME", "BINARY", "FOUND", "INSTALL"}}
	for _, m := range managers {
		found := "no"
		if detected(m) {
			found = "yes"
		}
		rows = append(rows, []string{m.Name, m.Binary, found, m.Command([]string{"<packages>"})})
	}
	return table.Format(rows, nil)
}
