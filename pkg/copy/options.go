package copy

// Defaults and hard limits for copy options.
const (
	// DefaultMaxDepth is the depth bound applied when none is given.
	DefaultMaxDepth = 99

	// MaxStackCeiling is the hard cap on the traversal path stack. Caller
	// options may lower the stack size but can never raise it past this;
	// it is the last line of defense against runaway descent.
	MaxStackCeiling = 16

	// Shallow is a MaxDepth sentinel: copy the root container only and
	// share all of its children by reference.
	Shallow = -1
)

// Options configures a copy operation. The zero value deep-copies with the
// library defaults and no freezing.
type Options struct {
	// MaxDepth is the number of container levels to copy deeply; levels
	// beyond it are shared by reference. Zero means DefaultMaxDepth; use
	// Shallow (or any negative value) for a root-only copy.
	MaxDepth int

	// MaxStackSize caps the traversal path stack. Zero means
	// MaxStackCeiling; values above the ceiling are clamped down to it.
	// It can be lowered but never raised.
	MaxStackSize int

	// Freeze makes the result and everything reachable from it
	// immutable, using the frozen container types.
	Freeze bool

	// NullReplacement substitutes typed nils (nil pointers, maps,
	// slices) in the result.
	NullReplacement any

	// UndefinedReplacement substitutes untyped nils (a nil interface
	// with no type at all) in the result.
	UndefinedReplacement any

	// IncludeTypeNames records source type names on records copied from
	// struct and Fielder values.
	IncludeTypeNames bool
}

// DefaultOptions returns the library defaults.
func DefaultOptions() Options {
	return Options{
		MaxDepth:     DefaultMaxDepth,
		MaxStackSize: MaxStackCeiling,
	}
}

// Resolve merges opts over the defaults and clamps the safety limits.
//
// A nil opts means "all defaults". Malformed values are normalized, never
// rejected: a zero or negative stack size falls back to the ceiling, an
// oversized one is clamped to it, and a negative depth becomes zero
// (root-only). Resolve never fails.
func Resolve(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}

	out := *opts

	switch {
	case out.MaxDepth == 0:
		out.MaxDepth = DefaultMaxDepth
	case out.MaxDepth < 0:
		out.MaxDepth = 0
	}

	if out.MaxStackSize <= 0 || out.MaxStackSize > MaxStackCeiling {
		out.MaxStackSize = MaxStackCeiling
	}

	return out
}
