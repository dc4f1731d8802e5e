// Package catalog holds the fixed package lists offered by pkgpick.
package catalog

import (
	"errors"
	"fmt"
)

// Entry is a single installable package and whether it starts out selected.
type Entry struct {
	Name     string `yaml:"name" json:"name"`
	Selected bool   `yaml:"selected" json:"selected"`
}

// Section groups the entries shown on one category tab.
type Section struct {
	Label   string
	Entries []Entry
}

// Catalog is an ordered list of sections. It is never mutated after
// construction; accessors hand out copies.
type Catalog struct {
	sections []Section
}

// ErrEmptyName is returned by Validate when an entry has no name.
var ErrEmptyName = errors.New("catalog entry has an empty name")

// New builds a catalog from the supplied sections.
func New(sections ...Section) Catalog {
	dup := make([]Section, len(sections))
	for i, section := range sections {
		dup[i] = Section{Label: section.Label, Entries: cloneEntries(section.Entries)}
	}
	return Catalog{sections: dup}
}

// Len reports the number of sections.
func (c Catalog) Len() int {
	return len(c.sections)
}

// Sections returns a copy of every section in order.
func (c Catalog) Sections() []Section {
	out := make([]Section, len(c.sections))
	for i, section := range c.sections {
		out[i] = Section{Label: section.Label, Entries: cloneEntries(section.Entries)}
	}
	return out
}

// Section returns the section at idx.
func (c Catalog) Section(idx int) (Section, bool) {
	if idx < 0 || idx >= len(c.sections) {
		return Section{}, false
	}
	section := c.sections[idx]
	return Section{Label: section.Label, Entries: cloneEntries(section.Entries)}, true
}

// Validate checks that every section has a label and every entry a name.
func (c Catalog) Validate() error {
	for i, section := range c.sections {
		if section.Label == "" {
			return fmt.Errorf("catalog section %d has no label", i)
		}
		for j, entry := range section.Entries {
			if entry.Name == "" {
				return fmt.Errorf("section %q entry %d: %w", section.Label, j, ErrEmptyName)
			}
		}
	}
	return nil
}

func cloneEntries(entries []Entry) []Entry {
	dup := make([]Entry, len(entries))
	copy(dup, entries)
	return dup
}
