// Package listbox implements the state behind an ARIA listbox: an ordered
// registry of mounted options and the active-descendant tracker that
// navigates it.
package listbox

// Entry describes one mounted option. Its position is its index in the
// registry snapshot.
type Entry struct {
	ID    string
	Value any
}

// Registry keeps mounted options in document order. Options register on
// mount and unregister on unmount; ids are unique within one registry.
type Registry struct {
	entries []Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register mounts e at position. Positions outside the list append.
// Registering an id that is already present moves it and replaces its value.
func (r *Registry) Register(e Entry, position int) {
	if e.ID == "" {
		return
	}
	r.Unregister(e.ID)
	if position < 0 || position >= len(r.entries) {
		r.entries = append(r.entries, e)
		return
	}
	r.entries = append(r.entries, Entry{})
	copy(r.entries[position+1:], r.entries[position:])
	r.entries[position] = e
}

// Unregister removes the option with the given id. Unknown ids are ignored.
func (r *Registry) Unregister(id string) bool {
	idx := r.IndexOf(id)
	if idx < 0 {
		return false
	}
	r.entries = append(r.entries[:idx], r.entries[idx+1:]...)
	return true
}

// Reset unmounts every option.
func (r *Registry) Reset() {
	r.entries = nil
}

// Entries returns a snapshot of the mounted options in document order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of mounted options.
func (r *Registry) Len() int {
	return len(r.entries)
}

// IndexOf returns the document position of id, or -1.
func (r *Registry) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, e := range r.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Lookup returns the entry registered under id.
func (r *Registry) Lookup(id string) (Entry, bool) {
	idx := r.IndexOf(id)
	if idx < 0 {
		return Entry{}, false
	}
	return r.entries[idx], true
}

// Contains reports whether id is mounted.
func (r *Registry) Contains(id string) bool {
	return r.IndexOf(id) >= 0
}
