// ABOUTME: String-keyed multimap of attribute value lists
// ABOUTME: Last-write-wins on Set, absent key distinct from empty or null list

package attrval

// Attributes maps unique string keys to value lists. A missing key,
// a key mapped to an empty list, and a key mapped to a list holding
// one Null are three distinct states. Iteration order is insertion
// order of first Set, stable per instance; it carries no semantic
// meaning.
type Attributes struct {
	keys    []string
	entries map[string]*List
}

// NewAttributes creates an empty attribute map.
func NewAttributes() *Attributes {
	return &Attributes{entries: make(map[string]*List)}
}

// Set stores list under key, replacing any prior list (last-write-wins,
// never a merge). A nil list is stored as an empty list.
func (a *Attributes) Set(key string, list *List) {
	if list == nil {
		list = NewList()
	}
	if a.entries == nil {
		a.entries = make(map[string]*List)
	}
	if _, ok := a.entries[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.entries[key] = list
}

// SetStrings stores the given strings as an ordered list under key.
func (a *Attributes) SetStrings(key string, values ...string) {
	a.Set(key, Strings(values...))
}

// Get returns the list under key and whether the key is present.
func (a *Attributes) Get(key string) (*List, bool) {
	if a == nil {
		return nil, false
	}
	l, ok := a.entries[key]
	return l, ok
}

// Delete removes key. Deleting an absent key is a no-op.
func (a *Attributes) Delete(key string) {
	if a == nil {
		return
	}
	if _, ok := a.entries[key]; !ok {
		return
	}
	delete(a.entries, key)
	for i, k := range a.keys {
		if k == key {
			a.keys = append(a.keys[:i], a.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of keys.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.entries)
}

// Keys returns the keys in iteration order. The slice is a copy.
func (a *Attributes) Keys() []string {
	if a == nil {
		return nil
	}
	out := make([]string, len(a.keys))
	copy(out, a.keys)
	return out
}

// Each calls fn for every (key, list) pair in iteration order until fn
// returns false.
func (a *Attributes) Each(fn func(key string, list *List) bool) {
	if a == nil {
		return
	}
	for _, k := range a.keys {
		if !fn(k, a.entries[k]) {
			return
		}
	}
}
