package domain

import "sort"

// Favorites is the session-scoped set of favorited record ids.
// The zero value is ready to use.
type Favorites struct {
	ids map[string]struct{}
}

// NewFavorites returns a set containing ids.
func NewFavorites(ids ...string) *Favorites {
	f := &Favorites{}
	for _, id := range ids {
		f.add(id)
	}
	return f
}

func (f *Favorites) add(id string) {
	if f.ids == nil {
		f.ids = make(map[string]struct{})
	}
	f.ids[id] = struct{}{}
}

// Toggle adds id if absent and removes it if present. It returns whether id
// is a favorite afterwards. Toggling twice restores the previous set.
func (f *Favorites) Toggle(id string) bool {
	if f.Has(id) {
		delete(f.ids, id)
		return false
	}
	f.add(id)
	return true
}

// Has reports whether id is a favorite.
func (f *Favorites) Has(id string) bool {
	if f == nil {
		return false
	}
	_, ok := f.ids[id]
	return ok
}

// Len returns the number of favorites.
func (f *Favorites) Len() int {
	if f == nil {
		return 0
	}
	return len(f.ids)
}

// IDs returns the favorites sorted, so match requests are deterministic.
func (f *Favorites) IDs() []string {
	if f == nil {
		return []string{}
	}
	out := make([]string, 0, len(f.ids))
	for id := range f.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Clear empties the set.
func (f *Favorites) Clear() {
	f.ids = nil
}
