package state

// IsSelected reports whether id is checked.
func (l *Level) IsSelected(id string) bool {
	_, ok := l.Selected[id]
	return ok
}

// ToggleSelection flips the checked state of id and returns the new state.
func (l *Level) ToggleSelection(id string) bool {
	if l.Selected == nil {
		l.Selected = make(map[string]struct{})
	}
	if _, ok := l.Selected[id]; ok {
		delete(l.Selected, id)
		return false
	}
	l.Selected[id] = struct{}{}
	return true
}

// ToggleCurrent flips the row under the cursor. ok is false when the
// filtered list is empty.
func (l *Level) ToggleCurrent() (item Item, selected bool, ok bool) {
	item, ok = l.Current()
	if !ok {
		return Item{}, false, false
	}
	return item, l.ToggleSelection(item.ID), true
}

// SelectedItems returns the checked items in catalog order, ignoring the
// active filter.
func (l *Level) SelectedItems() []Item {
	if len(l.Selected) == 0 {
		return nil
	}
	out := make([]Item, 0, len(l.Selected))
	for _, item := range l.Full {
		if l.IsSelected(item.ID) {
			out = append(out, item)
		}
	}
	return out
}
