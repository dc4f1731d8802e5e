// Package selection is the confirmed package list and its printed report.
package selection

import (
	"github.com/atomicstack/pkgpick/internal/pkgmgr"
)

// Item is one confirmed package.
type Item struct {
	Category string `json:"category" yaml:"category"`
	Name     string `json:"name" yaml:"name"`
}

// Selection is the confirmed list in tab order, then catalog order.
type Selection struct {
	Manager string `json:"manager,omitempty" yaml:"manager,omitempty"`
	Command string `json:"command,omitempty" yaml:"command,omitempty"`
	Items   []Item `json:"packages" yaml:"packages"`
}

// New builds a selection and fills in the install command for mgr.
func New(mgr pkgmgr.Manager, items []Item) Selection {
	sel := Selection{Manager: mgr.Name, Items: items}
	if sel.Items == nil {
		sel.Items = []Item{}
	}
	sel.Command = mgr.Command(sel.Names())
	return sel
}

// Names returns the package names in order.
func (s Selection) Names() []string {
	names := make([]string, len(s.Items))
	for i, item := range s.Items {
		names[i] = item.Name
	}
	return names
}

// Len reports the number of packages.
func (s Selection) Len() int {
	return len(s.Items)
}

// Empty reports whether nothing was selected.
func (s Selection) Empty() bool {
	return len(s.Items) == 0
}
