package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/atomicstack/pkgpick/internal/catalog"
	"github.com/atomicstack/pkgpick/internal/event"
	"github.com/atomicstack/pkgpick/internal/tab"
	"github.com/charmbracelet/lipgloss"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
)

func goTo(m *Model, target tab.Tab) {
	for m.CurrentTab() != target {
		m.apply(event.NextTab)
	}
	m.syncViewport()
}

func TestViewFillsTheFrame(t *testing.T) {
	m, _ := newTestModel(t, withSize(80, 30))
	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 30 {
		t.Fatalf("expected 30 rows, got %d", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 80 {
			t.Fatalf("expected row %d to be 80 cells wide, got %d: %q", i, w, line)
		}
	}
	if !strings.HasPrefix(lines[0], "╭") {
		t.Fatalf("expected rounded outer border, got %q", lines[0])
	}
}

func TestViewIntro(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()
	for _, want := range []string{"Hello!", "Intro", "Required", "GUI", "CLI", "Useless", "Summary", "q/esc quit", "space select/deselect package"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in intro view:\n%s", want, view)
		}
	}
	if strings.Contains(view, "[ ] ") || strings.Contains(view, "[x] ") {
		t.Fatalf("expected no checklist rows on Intro")
	}
}

func TestViewTabBarUsesSectionLabelsWhenWide(t *testing.T) {
	m, _ := newTestModel(t, withSize(100, 30))
	row := strings.Split(m.View(), "\n")[1]
	for _, want := range []string{"Intro", "Required packages", "GUI programs", "CLI programs", "Useless programs", "Summary"} {
		if !strings.Contains(row, want) {
			t.Fatalf("expected %q in tab bar, got %q", want, row)
		}
	}
}

func TestViewTabBarKeepsEveryTabAtEightyColumns(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI256)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	m, _ := newTestModel(t, withSize(80, 30))
	for _, target := range tab.All() {
		goTo(m, target)
		row := strings.Split(m.View(), "\n")[1]
		for _, want := range tab.All() {
			if !strings.Contains(row, want.Short()) {
				t.Fatalf("on %v: expected %q in tab bar, got %q", target, want.Short(), row)
			}
		}
		if !strings.Contains(row, styles.ActiveTab.Render(target.Short())) {
			t.Fatalf("on %v: expected %q highlighted, got %q", target, target.Short(), row)
		}
		if strings.Contains(row, "…") {
			t.Fatalf("on %v: expected no clipped tab bar, got %q", target, row)
		}
	}
}

func TestTabBarWindowsAroundCurrentTab(t *testing.T) {
	m, _ := newTestModel(t)
	for _, target := range tab.All() {
		goTo(m, target)
		bar := m.tabBar(20)
		if w := lipgloss.Width(bar); w > 20 {
			t.Fatalf("on %v: expected bar within 20 cells, got %d: %q", target, w, bar)
		}
		if !strings.Contains(bar, target.Short()) {
			t.Fatalf("on %v: expected current tab in bar, got %q", target, bar)
		}
	}
}

func TestViewChecklistRows(t *testing.T) {
	m, _ := newTestModel(t)
	goTo(m, tab.Required)
	view := m.View()
	for _, want := range []string{"[x] cargo", "[x] neovim", "[x] wget"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}

	goTo(m, tab.GUI)
	view = m.View()
	if !strings.Contains(view, "[ ] discord") {
		t.Fatalf("expected unchecked discord row:\n%s", view)
	}
}

func TestViewSummary(t *testing.T) {
	m, _ := newTestModel(t, withManager("pacman"))
	goTo(m, tab.Summary)
	view := m.View()
	for _, want := range []string{summaryHeader, "cargo", "neovim", "wget", catalog.LabelRequired, "$ sudo pacman -S --needed cargo neovim wget"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in summary:\n%s", want, view)
		}
	}
	if strings.Contains(view, "[x]") {
		t.Fatalf("expected no checklist rows on Summary")
	}
}

func TestViewSummaryTruncatesLongLists(t *testing.T) {
	m, _ := newTestModel(t, withCatalog(catalog.Default()), withManager("apt"), withSize(80, 20))
	goTo(m, tab.Summary)
	view := m.View()
	if !strings.Contains(view, "more") {
		t.Fatalf("expected overflow marker in summary:\n%s", view)
	}
	if !strings.Contains(view, "$ sudo apt-get install") {
		t.Fatalf("expected install command to stay visible:\n%s", view)
	}
	if got := len(strings.Split(view, "\n")); got != 20 {
		t.Fatalf("expected 20 rows, got %d", got)
	}
}

func TestViewSummaryScrollsBelowCommand(t *testing.T) {
	required := make([]catalog.Entry, 8)
	for i := range required {
		required[i] = catalog.Entry{Name: fmt.Sprintf("p%d", i+1), Selected: true}
	}
	cat := catalog.New(
		catalog.Section{Label: catalog.LabelRequired, Entries: required},
		catalog.Section{Label: catalog.LabelGUI, Entries: []catalog.Entry{{Name: "discord"}}},
		catalog.Section{Label: catalog.LabelCLI, Entries: []catalog.Entry{{Name: "btop"}}},
		catalog.Section{Label: catalog.LabelUseless, Entries: []catalog.Entry{{Name: "sl"}}},
	)
	m, h := newTestModel(t, withCatalog(cat), withManager("pacman"), withSize(80, 20))
	goTo(m, tab.Summary)

	visible := func(names ...string) {
		t.Helper()
		view := m.View()
		lines := strings.Split(view, "\n")
		header, command := -1, -1
		for i, line := range lines {
			if strings.Contains(line, summaryHeader) {
				header = i
			}
			if strings.Contains(line, "$ sudo pacman -S --needed p1") {
				command = i
			}
		}
		if header < 0 || command != header+1 {
			t.Fatalf("expected install command right under the header:\n%s", view)
		}
		for i := 1; i <= 8; i++ {
			name := fmt.Sprintf("p%d ", i)
			shown := false
			for _, line := range lines[command+1:] {
				if strings.Contains(line, name) {
					shown = true
				}
			}
			want := false
			for _, n := range names {
				if n+" " == name {
					want = true
				}
			}
			if shown != want {
				t.Fatalf("expected p%d shown=%v:\n%s", i, want, view)
			}
		}
	}

	visible("p1", "p2", "p3", "p4")
	if view := m.View(); !strings.Contains(view, "… and 4 more") {
		t.Fatalf("expected overflow marker:\n%s", view)
	}

	press(t, m, h, runes("j"), runes("j"), runes("j"), runes("j"))
	visible("p4", "p5", "p6", "p7", "p8")
	if view := m.View(); strings.Contains(view, "more") {
		t.Fatalf("expected no overflow marker at the bottom:\n%s", view)
	}

	press(t, m, h, runes("k"))
	visible("p3", "p4", "p5", "p6")
	if view := m.View(); !strings.Contains(view, "… and 2 more") {
		t.Fatalf("expected overflow marker:\n%s", view)
	}

	press(t, m, h, runes("g"))
	visible("p1", "p2", "p3", "p4")
	press(t, m, h, runes("G"))
	visible("p4", "p5", "p6", "p7", "p8")

	press(t, m, h, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyRight})
	visible("p1", "p2", "p3", "p4")
}

func TestViewScrollsWithCursor(t *testing.T) {
	m, h := newTestModel(t, withCatalog(catalog.Default()), withSize(80, 20))
	goTo(m, tab.Required)
	down := make([]tea.KeyMsg, 10)
	for i := range down {
		down[i] = tea.KeyMsg{Type: tea.KeyDown}
	}
	press(t, m, h, down...)

	level := m.Level(tab.Required)
	if level.Cursor != 10 {
		t.Fatalf("expected cursor 10, got %d", level.Cursor)
	}
	if level.ViewportOffset != 3 {
		t.Fatalf("expected viewport offset 3, got %d", level.ViewportOffset)
	}
	view := m.View()
	if !strings.Contains(view, "[x] python3") {
		t.Fatalf("expected cursor row visible:\n%s", view)
	}
	if strings.Contains(view, "[x] cargo") {
		t.Fatalf("expected first row scrolled out:\n%s", view)
	}
}

func TestViewFilterLine(t *testing.T) {
	m, h := newTestModel(t)
	goTo(m, tab.CLI)
	press(t, m, h, runes("/"), runes("d"), runes("u"))
	view := m.View()
	if !strings.Contains(view, "/ du") {
		t.Fatalf("expected filter prompt in view:\n%s", view)
	}
	if !strings.Contains(view, "[ ] duf") || strings.Contains(view, "btop") {
		t.Fatalf("expected filtered rows only:\n%s", view)
	}
	if !strings.Contains(view, "esc clear filter") {
		t.Fatalf("expected filter legend in footer:\n%s", view)
	}

	press(t, m, h, runes("zz"))
	if view := m.View(); !strings.Contains(view, `No matches for "duzz"`) {
		t.Fatalf("expected empty-result message:\n%s", view)
	}
}

func TestViewShowsStatusLine(t *testing.T) {
	m, _ := newTestModel(t)
	goTo(m, tab.Summary)
	m.errMsg = "Clipboard unavailable: no display"
	if view := m.View(); !strings.Contains(view, "Clipboard unavailable") {
		t.Fatalf("expected error line in view:\n%s", view)
	}
}

func TestViewDegenerateSizes(t *testing.T) {
	m, _ := newTestModel(t, withSize(0, 0))
	if view := m.View(); view != "" {
		t.Fatalf("expected empty view without a size, got %q", view)
	}

	m, _ = newTestModel(t, withSize(2, 2))
	if view := m.View(); view != "" {
		t.Fatalf("expected empty view for a 2x2 area, got %q", view)
	}

	m, _ = newTestModel(t, withSize(30, 6))
	view := m.View()
	if got := len(strings.Split(view, "\n")); got > 6 {
		t.Fatalf("expected at most 6 rows, got %d", got)
	}

	m, _ = newTestModel(t, withSize(10, 12))
	goTo(m, tab.Required)
	for _, line := range strings.Split(m.View(), "\n") {
		if w := lipgloss.Width(line); w > 10 {
			t.Fatalf("expected rows clipped to 10 cells, got %d: %q", w, line)
		}
	}
}
