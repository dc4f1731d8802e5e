package prompt

import (
	"github.com/atomicstack/pkgpick/internal/catalog"
	"github.com/atomicstack/pkgpick/internal/pkgmgr"
	"github.com/atomicstack/pkgpick/internal/theme"
	"github.com/charmbracelet/huh"
)

// FormAsker asks through huh forms on the terminal.
type FormAsker struct {
	theme *huh.Theme
}

// NewFormAsker returns an Asker styled with the form theme.
func NewFormAsker() *FormAsker {
	return &FormAsker{theme: theme.Form()}
}

// SelectManager asks which of the detected managers to use.
func (a *FormAsker) SelectManager(options []pkgmgr.Manager) (pkgmgr.Manager, error) {
	opts := make([]huh.Option[string], len(options))
	for i, m := range options {
		opts[i] = huh.NewOption(m.Name, m.Name)
	}
	choice := options[0].Name
	err := a.run(huh.NewSelect[string]().
		Title("Which package manager do you use?").
		Options(opts...).
		Value(&choice))
	if err != nil {
		return pkgmgr.Manager{}, err
	}
	for _, m := range options {
		if m.Name == choice {
			return m, nil
		}
	}
	return options[0], nil
}

// SelectPackages shows a checklist of entries pre-checked from their
// Selected flags and returns the checked names.
func (a *FormAsker) SelectPackages(title string, entries []catalog.Entry) ([]string, error) {
	opts := make([]huh.Option[string], len(entries))
	for i, entry := range entries {
		opts[i] = huh.NewOption(entry.Name, entry.Name).Selected(entry.Selected)
	}
	var picked []string
	err := a.run(huh.NewMultiSelect[string]().
		Title(title).
		Options(opts...).
		Height(minHeight(len(entries)+2, 20)).
		Value(&picked))
	if err != nil {
		return nil, err
	}
	return picked, nil
}

// Confirm asks a yes/no question, defaulting to yes.
func (a *FormAsker) Confirm(title string) (bool, error) {
	ok := true
	err := a.run(huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok))
	return ok, err
}

func (a *FormAsker) run(field huh.Field) error {
	return huh.NewForm(huh.NewGroup(field)).WithTheme(a.theme).Run()
}

func minHeight(a, b int) int {
	if a < b {
		return a
	}
	return b
}
