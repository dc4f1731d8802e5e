// Package prompt runs the linear picker: choose a manager, walk every
// category once, then confirm the result.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atomicstack/pkgpick/internal/catalog"
	"github.com/atomicstack/pkgpick/internal/logging/events"
	"github.com/atomicstack/pkgpick/internal/pkgmgr"
	"github.com/atomicstack/pkgpick/internal/selection"
)

// ErrAborted is returned when the user leaves a form early.
var ErrAborted = errors.New("prompt aborted")

// Asker asks the questions of the flow.
type Asker interface {
	SelectManager(options []pkgmgr.Manager) (pkgmgr.Manager, error)
	SelectPackages(title string, entries []catalog.Entry) ([]string, error)
	Confirm(title string) (bool, error)
}

// Options configure a Flow.
type Options struct {
	Asker   Asker
	Catalog catalog.Catalog
	Out     io.Writer
	// Manager is the configured manager name. Empty or "auto" asks when
	// more than one manager is installed.
	Manager string
	// MaxRounds bounds the confirm loop; zero means unbounded.
	MaxRounds int
}

// Flow is one run of the linear picker.
type Flow struct {
	asker     Asker
	catalog   catalog.Catalog
	out       io.Writer
	manager   string
	maxRounds int
	detect    func() []pkgmgr.Manager
}

// New validates opts and returns a flow ready to run.
func New(opts Options) (*Flow, error) {
	if opts.Asker == nil {
		return nil, errors.New("prompt: nil asker")
	}
	if err := opts.Catalog.Validate(); err != nil {
		return nil, err
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	return &Flow{
		asker:     opts.Asker,
		catalog:   opts.Catalog,
		out:       out,
		manager:   opts.Manager,
		maxRounds: opts.MaxRounds,
		detect:    pkgmgr.Detect,
	}, nil
}

// CategoryTitle is the form title shown for a category.
func CategoryTitle(label string) string {
	return label + " (SPACE to toggle, ENTER to submit)"
}

// Run asks every question and returns the confirmed selection.
func (f *Flow) Run() (selection.Selection, error) {
	mgr, err := f.chooseManager()
	if err != nil {
		return selection.Selection{}, err
	}
	events.Prompt.Manager(mgr.Name)

	sections := f.catalog.Sections()
	for round := 1; f.maxRounds == 0 || round <= f.maxRounds; round++ {
		var items []selection.Item
		for i, sec := range sections {
			picked, err := f.asker.SelectPackages(CategoryTitle(sec.Label), sec.Entries)
			if err != nil {
				return selection.Selection{}, wrapAbort(err)
			}
			events.Prompt.Category(sec.Label, len(picked))
			sections[i].Entries = reseed(sec.Entries, picked)
			for _, entry := range sections[i].Entries {
				if entry.Selected {
					items = append(items, selection.Item{Category: sec.Label, Name: entry.Name})
				}
			}
		}

		sel := selection.New(mgr, items)
		if err := f.preview(sel); err != nil {
			return selection.Selection{}, err
		}
		ok, err := f.asker.Confirm("Is this correct?")
		if err != nil {
			return selection.Selection{}, wrapAbort(err)
		}
		events.Prompt.Confirm(ok, sel.Len())
		if ok {
			return sel, nil
		}
	}
	return selection.Selection{}, fmt.Errorf("%w: not confirmed after %d rounds", ErrAborted, f.maxRounds)
}

func (f *Flow) chooseManager() (pkgmgr.Manager, error) {
	name := strings.ToLower(strings.TrimSpace(f.manager))
	if name != "" && name != "auto" {
		return pkgmgr.Resolve(name)
	}
	found := f.detect()
	switch len(found) {
	case 0:
		return pkgmgr.Manager{}, nil
	case 1:
		return found[0], nil
	}
	mgr, err := f.asker.SelectManager(found)
	if err != nil {
		return pkgmgr.Manager{}, wrapAbort(err)
	}
	return mgr, nil
}

func (f *Flow) preview(sel selection.Selection) error {
	var b strings.Builder
	b.WriteString("All selected packages:\n")
	if sel.Empty() {
		b.WriteString("(none)\n")
	} else {
		b.WriteString(strings.Join(sel.Names(), " "))
		b.WriteString("\n")
	}
	_, err := io.WriteString(f.out, b.String())
	return err
}

// reseed marks exactly the picked names as selected, keeping catalog order.
func reseed(entries []catalog.Entry, picked []string) []catalog.Entry {
	set := make(map[string]struct{}, len(picked))
	for _, name := range picked {
		set[name] = struct{}{}
	}
	out := make([]catalog.Entry, len(entries))
	for i, entry := range entries {
		_, ok := set[entry.Name]
		out[i] = catalog.Entry{Name: entry.Name, Selected: ok}
	}
	return out
}

func wrapAbort(err error) error {
	if errors.Is(err, ErrAborted) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrAborted, err)
}
