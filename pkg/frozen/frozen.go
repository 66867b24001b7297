// Package frozen provides read-only container values.
//
// A dynamic runtime can lock an existing object in place; Go cannot.
// Freezing is therefore modeled as construction: the copy engine builds
// its result bottom-up out of these types, so immutability is a structural
// property of the whole tree rather than a flag on the root. The types
// expose read accessors only; every slice they hand out is a copy.
//
// Frozen values are safe for concurrent readers.
package frozen

// List is an immutable ordered sequence.
type List struct {
	items []any
}

// NewList creates a List that takes ownership of items.
// The caller must not retain or mutate the slice afterwards.
func NewList(items []any) *List {
	return &List{items: items}
}

// Len returns the number of elements.
func (l *List) Len() int { return len(l.items) }

// At returns the element at position i.
func (l *List) At(i int) any { return l.items[i] }

// Items returns a copy of the elements in order.
func (l *List) Items() []any {
	out := make([]any, len(l.items))
	copy(out, l.items)
	return out
}

// Each calls fn for every element in order, stopping early on false.
func (l *List) Each(fn func(i int, v any) bool) {
	for i, v := range l.items {
		if !fn(i, v) {
			return
		}
	}
}

// Map is an immutable string-keyed map with a fixed key order.
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap creates a Map that takes ownership of keys and values.
// keys defines iteration order and must match the value map's key set.
func NewMap(keys []string, values map[string]any) *Map {
	return &Map{keys: keys, values: values}
}

// Len returns the number of pairs.
func (m *Map) Len() int { return len(m.keys) }

// Get returns the value for key and whether it exists.
func (m *Map) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns a copy of the keys in order.
func (m *Map) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Each calls fn for every pair in key order, stopping early on false.
func (m *Map) Each(fn func(key string, v any) bool) {
	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

// Record is an immutable field set produced from a record or class-like
// value. It behaves like Map but additionally remembers the source type
// name when the copy was made with type names enabled.
type Record struct {
	typeName string
	keys     []string
	values   map[string]any
}

// NewRecord creates a Record that takes ownership of keys and values.
// typeName may be empty.
func NewRecord(typeName string, keys []string, values map[string]any) *Record {
	return &Record{typeName: typeName, keys: keys, values: values}
}

// TypeName returns the source type name, or "" when not recorded.
func (r *Record) TypeName() string { return r.typeName }

// Len returns the number of fields.
func (r *Record) Len() int { return len(r.keys) }

// Field returns the value of the named field and whether it exists.
func (r *Record) Field(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Fields returns a copy of the field names in order.
func (r *Record) Fields() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Each calls fn for every field in order, stopping early on false.
func (r *Record) Each(fn func(name string, v any) bool) {
	for _, k := range r.keys {
		if !fn(k, r.values[k]) {
			return
		}
	}
}

// Set is an immutable ordered collection of unique values.
type Set struct {
	items []any
	index map[any]struct{}
}

// NewSet creates a Set that takes ownership of items.
// Items must already be deduplicated; index lookups are built here.
func NewSet(items []any) *Set {
	s := &Set{items: items, index: make(map[any]struct{}, len(items))}
	for _, it := range items {
		if canKey(it) {
			s.index[it] = struct{}{}
		}
	}
	return s
}

// Len returns the number of items.
func (s *Set) Len() int { return len(s.items) }

// At returns the item at position i in order.
func (s *Set) At(i int) any { return s.items[i] }

// Has reports whether item is present. Only comparable items can be found.
func (s *Set) Has(item any) bool {
	if !canKey(item) {
		return false
	}
	_, ok := s.index[item]
	return ok
}

// Items returns a copy of the items in order.
func (s *Set) Items() []any {
	out := make([]any, len(s.items))
	copy(out, s.items)
	return out
}

// Each calls fn for every item in order, stopping early on false.
func (s *Set) Each(fn func(i int, v any) bool) {
	for i, v := range s.items {
		if !fn(i, v) {
			return
		}
	}
}

// Is reports whether v is one of the frozen container types.
// Scalars are considered frozen by nature and return false here; Is only
// answers "is this a frozen container".
func Is(v any) bool {
	switch v.(type) {
	case *List, *Map, *Record, *Set:
		return true
	default:
		return false
	}
}

// canKey reports whether v can be used as a map key without panicking.
func canKey(v any) bool {
	if v == nil {
		return true
	}
	defer func() { recover() }()
	_ = map[any]struct{}{v: {}}
	return true
}
