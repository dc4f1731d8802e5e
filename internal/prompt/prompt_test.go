package prompt

import (
	"bytes"
	"errors"
	"testing"

	"github.com/atomicstack/pkgpick/internal/catalog"
	"github.com/atomicstack/pkgpick/internal/pkgmgr"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAsker struct {
	manager  string
	packages [][]string
	confirms []bool
	abortAt  int

	titles   []string
	defaults [][]string
	offered  []string
	asks     int
}

func (f *fakeAsker) SelectManager(options []pkgmgr.Manager) (pkgmgr.Manager, error) {
	for _, m := range options {
		f.offered = append(f.offered, m.Name)
	}
	for _, m := range options {
		if m.Name == f.manager {
			return m, nil
		}
	}
	return options[0], nil
}

func (f *fakeAsker) SelectPackages(title string, entries []catalog.Entry) ([]string, error) {
	f.asks++
	if f.abortAt > 0 && f.asks == f.abortAt {
		return nil, huh.ErrUserAborted
	}
	f.titles = append(f.titles, title)
	var defaults []string
	for _, e := range entries {
		if e.Selected {
			defaults = append(defaults, e.Name)
		}
	}
	f.defaults = append(f.defaults, defaults)
	if len(f.packages) == 0 {
		return defaults, nil
	}
	next := f.packages[0]
	f.packages = f.packages[1:]
	return next, nil
}

func (f *fakeAsker) Confirm(string) (bool, error) {
	if len(f.confirms) == 0 {
		return true, nil
	}
	next := f.confirms[0]
	f.confirms = f.confirms[1:]
	return next, nil
}

func testCatalog() catalog.Catalog {
	return catalog.New(
		catalog.Section{Label: catalog.LabelRequired, Entries: []catalog.Entry{
			{Name: "cargo", Selected: true}, {Name: "wget", Selected: true},
		}},
		catalog.Section{Label: catalog.LabelGUI, Entries: []catalog.Entry{{Name: "discord"}, {Name: "spotify"}}},
		catalog.Section{Label: catalog.LabelCLI, Entries: []catalog.Entry{{Name: "btop"}, {Name: "duf"}}},
		catalog.Section{Label: catalog.LabelUseless, Entries: []catalog.Entry{{Name: "sl"}}},
	)
}

func newFlow(t *testing.T, asker Asker, out *bytes.Buffer, manager string, detected ...string) *Flow {
	t.Helper()
	flow, err := New(Options{Asker: asker, Catalog: testCatalog(), Out: out, Manager: manager})
	require.NoError(t, err)
	flow.detect = func() []pkgmgr.Manager {
		var found []pkgmgr.Manager
		for _, name := range detected {
			m, ok := pkgmgr.Lookup(name)
			require.True(t, ok)
			found = append(found, m)
		}
		return found
	}
	return flow
}

func TestRunKeepsDefaults(t *testing.T) {
	asker := &fakeAsker{}
	var out bytes.Buffer
	flow := newFlow(t, asker, &out, "", "pacman")

	sel, err := flow.Run()
	require.NoError(t, err)
	assert.Equal(t, []string{"cargo", "wget"}, sel.Names())
	assert.Equal(t, "sudo pacman -S --needed cargo wget", sel.Command)
	assert.Equal(t, "All selected packages:\ncargo wget\n", out.String())
	assert.Equal(t, []string{
		"Required packages (SPACE to toggle, ENTER to submit)",
		"GUI programs (SPACE to toggle, ENTER to submit)",
		"CLI programs (SPACE to toggle, ENTER to submit)",
		"Useless programs (SPACE to toggle, ENTER to submit)",
	}, asker.titles)
	assert.Empty(t, asker.offered, "a single detected manager is used without asking")
}

func TestRunLoopsUntilConfirmed(t *testing.T) {
	asker := &fakeAsker{
		packages: [][]string{
			{"cargo"}, {"spotify"}, nil, {"sl"},
			{"cargo"}, {"spotify", "discord"}, {"btop"}, nil,
		},
		confirms: []bool{false, true},
	}
	var out bytes.Buffer
	flow := newFlow(t, asker, &out, "none")

	sel, err := flow.Run()
	require.NoError(t, err)
	assert.Equal(t, []string{"cargo", "discord", "spotify", "btop"}, sel.Names())
	assert.Empty(t, sel.Command)
	assert.Len(t, asker.titles, 8)

	// the second round starts from the first round's answers
	assert.Equal(t, []string{"cargo"}, asker.defaults[4])
	assert.Equal(t, []string{"spotify"}, asker.defaults[5])
	assert.Equal(t, []string{"sl"}, asker.defaults[7])
	assert.Equal(t, "All selected packages:\ncargo spotify sl\nAll selected packages:\ncargo discord spotify btop\n", out.String())
}

func TestRunAsksForManagerWhenSeveralDetected(t *testing.T) {
	asker := &fakeAsker{manager: "brew"}
	flow := newFlow(t, asker, &bytes.Buffer{}, "auto", "apt", "brew")

	sel, err := flow.Run()
	require.NoError(t, err)
	assert.Equal(t, []string{"apt", "brew"}, asker.offered)
	assert.Equal(t, "brew", sel.Manager)
	assert.Equal(t, "brew install cargo wget", sel.Command)
}

func TestRunWithNamedManager(t *testing.T) {
	asker := &fakeAsker{}
	flow := newFlow(t, asker, &bytes.Buffer{}, "dnf", "apt", "brew")

	sel, err := flow.Run()
	require.NoError(t, err)
	assert.Empty(t, asker.offered)
	assert.Equal(t, "dnf", sel.Manager)
}

func TestRunUnknownManager(t *testing.T) {
	flow := newFlow(t, &fakeAsker{}, &bytes.Buffer{}, "portage")
	_, err := flow.Run()
	assert.ErrorIs(t, err, pkgmgr.ErrUnknown)
}

func TestRunAbort(t *testing.T) {
	asker := &fakeAsker{abortAt: 2}
	var out bytes.Buffer
	flow := newFlow(t, asker, &out, "none")

	_, err := flow.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAborted)
	assert.ErrorIs(t, err, huh.ErrUserAborted)
	assert.Empty(t, out.String())
}

func TestRunMaxRounds(t *testing.T) {
	asker := &fakeAsker{confirms: []bool{false, false}}
	flow, err := New(Options{Asker: asker, Catalog: testCatalog(), Manager: "none", MaxRounds: 2})
	require.NoError(t, err)

	_, err = flow.Run()
	assert.ErrorIs(t, err, ErrAborted)
	assert.Len(t, asker.titles, 8)
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New(Options{Catalog: testCatalog()})
	assert.Error(t, err)

	bad := catalog.New(catalog.Section{Label: "x", Entries: []catalog.Entry{{Name: ""}}})
	_, err = New(Options{Asker: &fakeAsker{}, Catalog: bad})
	assert.True(t, errors.Is(err, catalog.ErrEmptyName))
}

func TestFormAskerIsAnAsker(t *testing.T) {
	var asker Asker = NewFormAsker()
	assert.NotNil(t, asker)
}
