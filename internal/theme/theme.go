package theme

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	accent = lipgloss.Color("33")
	muted  = lipgloss.Color("241")
	text   = lipgloss.Color("249")
	strong = lipgloss.Color("255")
	shade  = lipgloss.Color("238")
	danger = lipgloss.Color("196")
	okay   = lipgloss.Color("34")
)

// Styles describes the Lip Gloss styles shared by the picker screens.
type Styles struct {
	Frame        *lipgloss.Style
	Content      *lipgloss.Style
	FooterFrame  *lipgloss.Style
	Tab          *lipgloss.Style
	ActiveTab    *lipgloss.Style
	TabDivider   *lipgloss.Style
	Item         *lipgloss.Style
	SelectedItem *lipgloss.Style
	Checked      *lipgloss.Style
	Header       *lipgloss.Style
	Command      *lipgloss.Style
	Footer       *lipgloss.Style
	FooterKey    *lipgloss.Style
	Filter       *lipgloss.Style
	FilterPrompt *lipgloss.Style
	Cursor       *lipgloss.Style
	Error        *lipgloss.Style
	Info         *lipgloss.Style
}

var defaultStyles = Styles{
	Frame: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(shade),
	),
	Content: ptr(
		lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(shade),
	),
	FooterFrame: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(shade),
	),
	Tab: ptr(
		lipgloss.NewStyle().Foreground(text),
	),
	ActiveTab: ptr(
		lipgloss.NewStyle().Foreground(accent).Bold(true).Underline(true),
	),
	TabDivider: ptr(
		lipgloss.NewStyle().Foreground(shade),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(text),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(strong).Background(shade).Bold(true),
	),
	Checked: ptr(
		lipgloss.NewStyle().Foreground(okay),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Command: ptr(
		lipgloss.NewStyle().Foreground(accent),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(text),
	),
	FooterKey: ptr(
		lipgloss.NewStyle().Foreground(accent).Bold(true),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(text),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(okay).Bold(true),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(accent),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(danger).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(muted),
	),
}

// Default exposes the standard style set.
func Default() *Styles {
	return &defaultStyles
}

// Form returns the huh theme used by the prompt flow, tinted to match the
// picker.
func Form() *huh.Theme {
	t := huh.ThemeBase()
	t.Focused.Title = t.Focused.Title.Foreground(accent).Bold(true)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(accent)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(accent)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(okay)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(okay).SetString("[x] ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("[ ] ")
	t.Focused.FocusedButton = t.Focused.FocusedButton.Background(accent).Foreground(strong)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(danger)
	t.Blurred = t.Focused
	return t
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
