package tab

import (
	"fmt"

	"github.com/atomicstack/pkgpick/internal/catalog"
)

// Aggregate is a selected entry together with the tab it belongs to.
type Aggregate struct {
	Tab  Tab
	Name string
}

// Model binds the tabs to an injected catalog.
type Model struct {
	catalog catalog.Catalog
}

// New validates the catalog against the tab layout: one section per
// category tab, no empty entry names.
func New(cat catalog.Catalog) (*Model, error) {
	if cat.Len() != categoryCount {
		return nil, fmt.Errorf("catalog has %d sections, want %d", cat.Len(), categoryCount)
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &Model{catalog: cat}, nil
}

// Entries returns the catalog entries for a category tab. Intro and Summary
// yield a single placeholder entry with an empty name.
func (m *Model) Entries(t Tab) []catalog.Entry {
	if !t.IsCategory() {
		return []catalog.Entry{{}}
	}
	section, ok := m.catalog.Section(t.section())
	if !ok {
		return []catalog.Entry{{}}
	}
	return section.Entries
}

// Label returns the display label for a tab.
func (m *Model) Label(t Tab) string {
	if t.IsCategory() {
		if section, ok := m.catalog.Section(t.section()); ok {
			return section.Label
		}
	}
	return t.String()
}

// Selected aggregates every default-selected entry across all tabs in order.
// It ignores toggles made in the UI; ui.Model.Selection reports the live
// choice and equals this list until something is toggled.
func (m *Model) Selected() []Aggregate {
	var out []Aggregate
	for _, t := range All() {
		for _, entry := range m.Entries(t) {
			if entry.Name == "" || !entry.Selected {
				continue
			}
			out = append(out, Aggregate{Tab: t, Name: entry.Name})
		}
	}
	return out
}
