// Package tab models the six ordered screens of the picker and the catalog
// entries attached to each of them.
package tab

import (
	"fmt"

	"github.com/atomicstack/pkgpick/internal/catalog"
)

// Tab identifies one screen. Ordinals are contiguous in declaration order.
type Tab int

const (
	Intro Tab = iota
	Required
	GUI
	CLI
	Useless
	Summary
)

// Count is the number of tabs.
const Count = int(Summary) + 1

// categoryCount is the number of catalog-backed tabs between Intro and Summary.
const categoryCount = int(Useless) - int(Intro)

var defaultLabels = [Count]string{
	Intro:    "Intro",
	Required: catalog.LabelRequired,
	GUI:      catalog.LabelGUI,
	CLI:      catalog.LabelCLI,
	Useless:  catalog.LabelUseless,
	Summary:  "Summary",
}

var shortLabels = [Count]string{
	Intro:    "Intro",
	Required: "Required",
	GUI:      "GUI",
	CLI:      "CLI",
	Useless:  "Useless",
	Summary:  "Summary",
}

// All returns every tab in canonical order.
func All() []Tab {
	return []Tab{Intro, Required, GUI, CLI, Useless, Summary}
}

// Next returns the following tab. Summary is a fixed point.
func (t Tab) Next() Tab {
	if t >= Summary {
		return Summary
	}
	if t < Intro {
		return Intro
	}
	return t + 1
}

// Previous returns the preceding tab. Intro is a fixed point.
func (t Tab) Previous() Tab {
	if t <= Intro {
		return Intro
	}
	if t > Summary {
		return Summary
	}
	return t - 1
}

// Index returns the 0-based ordinal.
func (t Tab) Index() int {
	return int(t)
}

// IsCategory reports whether the tab lists catalog entries.
func (t Tab) IsCategory() bool {
	return t > Intro && t < Summary
}

func (t Tab) String() string {
	if t < Intro || t > Summary {
		return fmt.Sprintf("Tab(%d)", int(t))
	}
	return defaultLabels[t]
}

func (t Tab) section() int {
	return int(t) - 1
}

// Short returns a compact label for narrow tab bars.
func (t Tab) Short() string {
	if t < Intro || t > Summary {
		return t.String()
	}
	return shortLabels[t]
}
