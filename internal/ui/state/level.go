// Package state holds the cursor, viewport, filter and selection state of one
// checklist tab.
package state

import "github.com/atomicstack/pkgpick/internal/catalog"

// Item is a row of a checklist. ID is the package name.
type Item struct {
	ID    string
	Label string
}

// Level is the checklist state of a single category tab. Items is the
// filtered view over Full; Selected is keyed by item ID and survives
// filtering.
type Level struct {
	ID             string
	Title          string
	Items          []Item
	Full           []Item
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
	Selected       map[string]struct{}
}

// NewLevel builds a level over entries, seeding the selection from each
// entry's default flag. Entries without a name are skipped.
func NewLevel(id, title string, entries []catalog.Entry) *Level {
	l := &Level{
		ID:         id,
		Title:      title,
		LastCursor: -1,
		Selected:   make(map[string]struct{}),
	}
	items := make([]Item, 0, len(entries))
	for _, entry := range entries {
		if entry.Name == "" {
			continue
		}
		items = append(items, Item{ID: entry.Name, Label: entry.Name})
		if entry.Selected {
			l.Selected[entry.Name] = struct{}{}
		}
	}
	l.Full = items
	l.refilter()
	return l
}

// Current returns the item under the cursor.
func (l *Level) Current() (Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Item{}, false
	}
	return l.Items[l.Cursor], true
}

// VisibleRange returns the half-open range of Items shown in a viewport of
// maxVisible rows. It reads ViewportOffset without modifying it.
func (l *Level) VisibleRange(maxVisible int) (int, int) {
	total := len(l.Items)
	if total == 0 || maxVisible <= 0 {
		return 0, 0
	}
	start := l.ViewportOffset
	if start > total-1 {
		start = total - 1
	}
	if start < 0 {
		start = 0
	}
	end := start + maxVisible
	if end > total {
		end = total
	}
	return start, end
}

func cloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
