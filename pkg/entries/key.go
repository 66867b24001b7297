package entries

import "strconv"

// Key identifies an entry within its owner: a field or map key name, or a
// positional index for sequences and sets.
type Key struct {
	name    string
	index   int
	indexed bool
}

// StringKey creates a named key.
func StringKey(name string) Key {
	return Key{name: name}
}

// IndexKey creates a positional key.
func IndexKey(i int) Key {
	return Key{index: i, indexed: true}
}

// IsIndex reports whether the key is positional.
func (k Key) IsIndex() bool { return k.indexed }

// Index returns the position and whether the key is positional.
func (k Key) Index() (int, bool) {
	return k.index, k.indexed
}

// Name returns the key name, or "" for positional keys.
func (k Key) Name() string {
	if k.indexed {
		return ""
	}
	return k.name
}

// String returns the name for named keys and the decimal index otherwise.
// This form is what traversal path stacks are built from.
func (k Key) String() string {
	if k.indexed {
		return strconv.Itoa(k.index)
	}
	return k.name
}
