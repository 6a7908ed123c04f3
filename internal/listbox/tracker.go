package listbox

import "ariacombo/internal/debug"

// SelectFunc receives the id and opaque value of a selected option.
type SelectFunc func(id string, value any)

// Tracker owns the active descendant of one listbox instance.
//
// Navigation reads the registry on every call, so options that were
// filtered out or reordered between keystrokes are never referenced.
// Navigation clamps at both ends of the list.
type Tracker struct {
	registry *Registry
	current  string
	onSelect SelectFunc
}

// NewTracker creates a tracker over registry. onSelect may be nil.
func NewTracker(registry *Registry, onSelect SelectFunc) *Tracker {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Tracker{registry: registry, onSelect: onSelect}
}

// Registry returns the registry the tracker navigates.
func (t *Tracker) Registry() *Registry {
	return t.registry
}

// SetOnSelect replaces the selection callback.
func (t *Tracker) SetOnSelect(fn SelectFunc) {
	t.onSelect = fn
}

// Current returns the active id if it is still mounted.
func (t *Tracker) Current() (string, bool) {
	if t.current == "" || !t.registry.Contains(t.current) {
		return "", false
	}
	return t.current, true
}

// Next activates the option after the current one. With nothing active it
// activates the first option; at the last option it stays put.
func (t *Tracker) Next() {
	entries := t.registry.Entries()
	if len(entries) == 0 {
		return
	}
	idx := t.registry.IndexOf(t.current)
	switch {
	case idx < 0:
		idx = 0
	case idx < len(entries)-1:
		idx++
	}
	t.activate(entries[idx].ID)
}

// Prev activates the option before the current one. With nothing active it
// activates the last option; at the first option it stays put.
func (t *Tracker) Prev() {
	entries := t.registry.Entries()
	if len(entries) == 0 {
		return
	}
	idx := t.registry.IndexOf(t.current)
	switch {
	case idx < 0:
		idx = len(entries) - 1
	case idx > 0:
		idx--
	}
	t.activate(entries[idx].ID)
}

// Clear drops the active descendant.
func (t *Tracker) Clear() {
	t.current = ""
}

// Click fires the selection callback for the active option. It reports
// whether a selection happened.
func (t *Tracker) Click() bool {
	id, ok := t.Current()
	if !ok {
		return false
	}
	entry, _ := t.registry.Lookup(id)
	t.OnOptionSelect(entry.ID, entry.Value)
	return true
}

// Check reports whether id is the active descendant.
func (t *Tracker) Check(id string) bool {
	current, ok := t.Current()
	return ok && id == current
}

// Update force-sets the active descendant. An empty id clears it; an id that
// is not mounted is rejected.
func (t *Tracker) Update(id string) bool {
	if id == "" {
		t.Clear()
		return true
	}
	if !t.registry.Contains(id) {
		debug.Logf("listbox: update rejected unknown option %q", id)
		return false
	}
	t.activate(id)
	return true
}

// CheckIfActive implements Context.
func (t *Tracker) CheckIfActive(id string) bool {
	return t.Check(id)
}

// OnOptionSelect implements Context. It makes id active and notifies the
// selection callback.
func (t *Tracker) OnOptionSelect(id string, value any) {
	if !t.Update(id) {
		return
	}
	debug.Logf("listbox: selected %q", id)
	if t.onSelect != nil {
		t.onSelect(id, value)
	}
}

func (t *Tracker) activate(id string) {
	if t.current == id {
		return
	}
	debug.Logf("listbox: active descendant %q -> %q", t.current, id)
	t.current = id
}
