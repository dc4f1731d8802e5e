package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/pkgpick/internal/format/table"
	"github.com/atomicstack/pkgpick/internal/tab"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	legendRows   = 5
	footerHeight = legendRows + 2
	// rounded frame (2) + tab bar (1) + content border (2)
	chromeRows = 5
	chromeCols = 4
	minBoxSize = 3

	tabDivider    = " │ "
	summaryHeader = "These programs will be installed:"
)

var introText = []string{
	"Hello!",
	"This program will guide you through picking the packages to install.",
	"",
	"Walk through the tabs, check what you want and submit on the last one.",
	"Nothing is installed here: the confirmed list is printed on exit.",
}

var filterLegend = []string{
	"type to filter the list",
	"↑/↓ move",
	"backspace/ctrl+w delete, ctrl+u clear",
	"enter keep filter",
	"esc clear filter",
}

type frame struct {
	width         int
	mainHeight    int
	footerHeight  int
	contentWidth  int
	contentHeight int
}

func layoutFor(width, height int) frame {
	if width <= 0 || height <= 0 {
		return frame{}
	}
	f := frame{width: width, footerHeight: footerHeight}
	if height < footerHeight {
		f.footerHeight = height
	}
	f.mainHeight = height - f.footerHeight
	if f.mainHeight-chromeRows > 0 {
		f.contentHeight = f.mainHeight - chromeRows
	}
	if width-chromeCols > 0 {
		f.contentWidth = width - chromeCols
	}
	return f
}

// View implements tea.Model. It only reads the model.
func (m *Model) View() string {
	f := layoutFor(m.width, m.height)
	if f.width == 0 {
		return ""
	}
	parts := make([]string, 0, 2)
	if main := m.renderMain(f); main != "" {
		parts = append(parts, main)
	}
	if footer := box(styles.FooterFrame, m.legendLines(), f.width, f.footerHeight); footer != "" {
		parts = append(parts, footer)
	}
	if len(parts) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) renderMain(f frame) string {
	if f.mainHeight < minBoxSize {
		return ""
	}
	inner := []string{m.tabBar(f.width - 2)}
	if content := box(styles.Content, m.contentLines(f), f.width-2, f.mainHeight-3); content != "" {
		inner = append(inner, strings.Split(content, "\n")...)
	}
	return box(styles.Frame, inner, f.width, f.mainHeight)
}

// tabBar lays out the tab labels in width cells. Section labels give way to
// short names when they do not fit, and on very narrow frames only a window
// of tabs around the current one is drawn.
func (m *Model) tabBar(width int) string {
	labels := make([]string, tab.Count)
	for _, t := range tab.All() {
		label := t.String()
		if m.tabs != nil {
			label = m.tabs.Label(t)
		}
		labels[t.Index()] = label
	}
	if barWidth(labels) > width {
		for _, t := range tab.All() {
			labels[t.Index()] = t.Short()
		}
	}

	active := m.current.Index()
	start, end := 0, len(labels)
	for end-start > 1 && barWidth(labels[start:end]) > width {
		if active-start > end-1-active {
			start++
		} else {
			end--
		}
	}

	parts := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		if i == active {
			parts = append(parts, styles.ActiveTab.Render(labels[i]))
			continue
		}
		parts = append(parts, styles.Tab.Render(labels[i]))
	}
	return strings.Join(parts, styles.TabDivider.Render(tabDivider))
}

func barWidth(labels []string) int {
	width := 0
	for i, label := range labels {
		if i > 0 {
			width += lipgloss.Width(tabDivider)
		}
		width += lipgloss.Width(label)
	}
	return width
}

func (m *Model) contentLines(f frame) []string {
	height := m.bodyHeight()
	status := m.statusLine()
	var lines []string
	switch {
	case m.current == tab.Intro:
		lines = introLines()
	case m.current == tab.Summary:
		lines = m.summaryLines(height)
	default:
		if current := m.currentLevel(); current != nil {
			lines = m.checklistLines(current, f.contentWidth)
		}
	}
	if height < 0 {
		height = 0
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	if status != "" && f.contentHeight > 0 {
		for len(lines) < height {
			lines = append(lines, "")
		}
		lines = append(lines, status)
	}
	return lines
}

func introLines() []string {
	lines := make([]string, len(introText))
	for i, line := range introText {
		if i == 0 {
			lines[i] = styles.Header.Render(line)
			continue
		}
		lines[i] = styles.Item.Render(line)
	}
	return lines
}

// summaryLines puts the install command under the header so it stays on
// screen however long the list is; the list scrolls below it.
func (m *Model) summaryLines(height int) []string {
	sel := m.Selection()
	lines := []string{styles.Header.Render(summaryHeader)}
	if sel.Command != "" {
		lines = append(lines, styles.Command.Render("$ "+sel.Command), "")
	}
	if sel.Empty() {
		return append(lines, styles.Info.Render("(nothing selected)"))
	}

	rows := make([][]string, len(sel.Items))
	for i, item := range sel.Items {
		rows[i] = []string{item.Name, item.Category}
	}
	formatted := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft})
	room := m.summaryRoom(height)
	if room <= 0 {
		return lines
	}
	maxOffset := len(formatted) - room
	if maxOffset < 0 {
		maxOffset = 0
	}
	start := clampInt(m.summaryOffset, 0, maxOffset)
	end := start + room
	if end > len(formatted) {
		end = len(formatted)
	}
	for i := start; i < end; i++ {
		line := formatted[i]
		if i == end-1 && end < len(formatted) {
			line = fmt.Sprintf("… and %d more", len(formatted)-i)
		}
		lines = append(lines, styles.Item.Render(line))
	}
	return lines
}

// summaryRoom is how many package rows fit under the Summary header.
func (m *Model) summaryRoom(height int) int {
	room := height - 1
	if m.Selection().Command != "" {
		room -= 2
	}
	return room
}

// bodyHeight is the content box height left once the status line is placed.
func (m *Model) bodyHeight() int {
	height := layoutFor(m.width, m.height).contentHeight
	if m.statusLine() != "" {
		height--
	}
	return height
}

func (m *Model) checklistLines(current *level, width int) []string {
	var lines []string
	if m.filtering || current.Filter != "" {
		lines = append(lines, m.filterLine(current))
	}
	if len(current.Items) == 0 {
		msg := "(no packages)"
		if current.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", current.Filter)
		}
		return append(lines, styles.Info.Render(msg))
	}
	start, end := current.VisibleRange(m.maxVisibleRows())
	for idx := start; idx < end; idx++ {
		lines = append(lines, itemLine(current, idx, width))
	}
	return lines
}

func itemLine(current *level, idx, width int) string {
	item := current.Items[idx]
	mark := "[ ]"
	if current.IsSelected(item.ID) {
		mark = "[x]"
	}
	text := mark + " " + item.Label
	switch {
	case idx == current.Cursor:
		return styles.SelectedItem.Render(padRight(truncateText(text, width), width))
	case current.IsSelected(item.ID):
		return styles.Checked.Render(text)
	default:
		return styles.Item.Render(text)
	}
}

func (m *Model) filterLine(current *level) string {
	prompt := styles.FilterPrompt.Render("/")
	if !m.filtering {
		return prompt + " " + styles.Filter.Render(current.Filter)
	}
	runes := []rune(current.Filter)
	pos := current.FilterCursorPos()
	at, after := " ", ""
	if pos < len(runes) {
		at = string(runes[pos])
		after = string(runes[pos+1:])
	}
	return prompt + " " + styles.Filter.Render(string(runes[:pos])) + styles.Cursor.Render(at) + styles.Filter.Render(after)
}

func (m *Model) statusLine() string {
	if m.errMsg != "" {
		return styles.Error.Render(m.errMsg)
	}
	if m.infoMsg != "" {
		return styles.Info.Render(m.infoMsg)
	}
	return ""
}

func (m *Model) legendLines() []string {
	if m.filtering {
		out := make([]string, len(filterLegend))
		for i, line := range filterLegend {
			out[i] = styles.Footer.Render(line)
		}
		return out
	}
	rows := m.keys.Legend()
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		parts := make([]string, 0, len(row))
		for _, binding := range row {
			if !binding.Enabled() {
				continue
			}
			help := binding.Help()
			parts = append(parts, styles.FooterKey.Render(help.Key)+" "+styles.Footer.Render(help.Desc))
		}
		out = append(out, strings.Join(parts, "   "))
	}
	return out
}

// maxVisibleRows is the number of checklist rows the current tab can show.
func (m *Model) maxVisibleRows() int {
	rows := layoutFor(m.width, m.height).contentHeight
	if current := m.currentLevel(); current != nil && (m.filtering || current.Filter != "") {
		rows--
	}
	if m.errMsg != "" || m.infoMsg != "" {
		rows--
	}
	if rows < 0 {
		return 0
	}
	return rows
}

// box draws lines inside style's border, clipped to exactly width x height
// cells. Boxes too small to hold a border render as nothing.
func box(style *lipgloss.Style, lines []string, width, height int) string {
	if width < minBoxSize || height < minBoxSize {
		return ""
	}
	innerWidth, innerHeight := width-2, height-2
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}
	clipped := make([]string, len(lines))
	for i, line := range lines {
		clipped[i] = clipWidth(line, innerWidth)
	}
	return style.Width(innerWidth).Height(innerHeight).Render(strings.Join(clipped, "\n"))
}

func clipWidth(line string, width int) string {
	if lipgloss.Width(line) <= width {
		return line
	}
	if width <= 1 {
		return truncate.String(line, uint(width))
	}
	return truncate.StringWithTail(line, uint(width), "…")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}

func padRight(text string, width int) string {
	if pad := width - lipgloss.Width(text); pad > 0 {
		return text + strings.Repeat(" ", pad)
	}
	return text
}
