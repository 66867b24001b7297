// Package cycle detects likely infinite recursion from a path of traversal keys.
//
// The detector is a heuristic keyed on repeating KEY PATTERNS, not object
// identity: it catches A→B→A→B→A→B shaped descent even when no object is
// ever re-visited, but can miss a deep chain whose keys never repeat.
// Callers must combine it with an independent depth bound.
//
// # Algorithm
//
// For every candidate run length ℓ, starting at the configured minimum and
// growing while ℓ repetitions still fit in the stack, and for every stagger
// offset within ℓ, the stack is partitioned into consecutive windows of ℓ
// keys. Each window is joined into a single string and adjacent equal
// windows are counted; reaching the repetition threshold signals a cycle.
//
// Cost is O(n²/runLength) for a stack of n keys. The guard never panics;
// a detection is a policy signal, not an error.
package cycle

import "strings"

// Defaults for Guard configuration.
const (
	// DefaultRunLength is the smallest repeating unit considered.
	DefaultRunLength = 5

	// DefaultMaxRepetitions is how many adjacent repeats of a unit
	// are required before the path is considered cyclic.
	DefaultMaxRepetitions = 3
)

// windowSep joins keys inside a window. It only needs to be unlikely in
// real keys; a collision makes the guard slightly more eager, never unsafe.
const windowSep = "\x1f"

// Guard detects repeating key patterns in a traversal path.
// The zero value uses the package defaults.
type Guard struct {
	// RunLength is the smallest repeating unit size to test.
	// Values below 1 fall back to DefaultRunLength.
	RunLength int

	// MaxRepetitions is the number of adjacent repeats required for a
	// detection. Values below 2 fall back to DefaultMaxRepetitions.
	MaxRepetitions int

	// OnRepeat, when non-nil, is invoked with the offending window of
	// keys on the first detection within a Detect call.
	OnRepeat func(window []string)
}

// Detect reports whether stack contains a contiguous subsequence that
// repeats at least MaxRepetitions times for some run length between
// RunLength and len(stack)/MaxRepetitions.
func (g Guard) Detect(stack []string) bool {
	runLength := g.RunLength
	if runLength < 1 {
		runLength = DefaultRunLength
	}
	maxReps := g.MaxRepetitions
	if maxReps < 2 {
		maxReps = DefaultMaxRepetitions
	}

	if len(stack) < runLength*maxReps {
		return false
	}

	for length := runLength; length <= len(stack)/maxReps; length++ {
		for offset := 0; offset < length; offset++ {
			if g.scan(stack[offset:], length, maxReps) {
				return true
			}
		}
	}
	return false
}

// scan partitions keys into consecutive windows of the given length and
// counts adjacent equal windows, reporting when the count reaches maxReps.
func (g Guard) scan(keys []string, length, maxReps int) bool {
	var (
		prev    string
		repeats = 1
	)
	for start := 0; start+length <= len(keys); start += length {
		window := strings.Join(keys[start:start+length], windowSep)
		if start > 0 && window == prev {
			repeats++
			if repeats >= maxReps {
				if g.OnRepeat != nil {
					g.OnRepeat(keys[start : start+length])
				}
				return true
			}
		} else {
			repeats = 1
		}
		prev = window
	}
	return false
}

// Detect runs a default-configured Guard against stack.
func Detect(stack []string) bool {
	return Guard{}.Detect(stack)
}
