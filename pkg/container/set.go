package container

// Set is an insertion-ordered collection of unique values.
//
// Uniqueness uses Go equality for comparable values. Values that are not
// comparable (slices, maps, functions) are always stored; deduplicating
// them would require deep equality, which Add deliberately avoids.
type Set struct {
	items []any
	index map[any]struct{}
}

// NewSet creates a Set containing the given items, in order, deduplicated.
func NewSet(items ...any) *Set {
	s := &Set{index: make(map[any]struct{})}
	for _, it := range items {
		s.Add(it)
	}
	return s
}

// Add appends item if it is not already present.
// Returns true if the set changed.
func (s *Set) Add(item any) bool {
	if s.index == nil {
		s.index = make(map[any]struct{})
	}
	if isComparable(item) {
		if _, ok := s.index[item]; ok {
			return false
		}
		s.index[item] = struct{}{}
	}
	s.items = append(s.items, item)
	return true
}

// Has reports whether item is present. Only comparable items can be found.
func (s *Set) Has(item any) bool {
	if !isComparable(item) {
		return false
	}
	_, ok := s.index[item]
	return ok
}

// Len returns the number of stored items.
func (s *Set) Len() int {
	return len(s.items)
}

// At returns the item at position i in insertion order.
func (s *Set) At(i int) any {
	return s.items[i]
}

// Items returns the items in insertion order. The slice is a copy.
func (s *Set) Items() []any {
	out := make([]any, len(s.items))
	copy(out, s.items)
	return out
}

// Each calls fn for every item in insertion order.
// Iteration stops early if fn returns false.
func (s *Set) Each(fn func(i int, item any) bool) {
	for i, it := range s.items {
		if !fn(i, it) {
			return
		}
	}
}

// isComparable reports whether v can be used as a map key without panicking.
func isComparable(v any) bool {
	if v == nil {
		return true
	}
	defer func() { recover() }()
	_ = map[any]struct{}{v: {}}
	return true
}
