// Package copy deep-copies and freezes arbitrarily shaped values.
//
// Copy takes any value — slices, arrays, maps, sets, structs, values with
// hidden state exposed through entries.Fielder — and produces an
// independent copy, or, with Options.Freeze, a recursively immutable
// snapshot built from the frozen container types. It never panics and
// never loops forever, regardless of how the input is shaped: cyclic and
// pathologically deep inputs degrade to partial (shallower) copies rather
// than failures.
//
// # Dispatch
//
// Values are dispatched by runtime kind:
//
//   - untyped nil yields Options.UndefinedReplacement, typed nils yield
//     Options.NullReplacement
//   - strings, numbers, booleans and functions pass through unchanged
//   - time.Time and *regexp.Regexp are rebuilt as fresh values
//   - errors are rebuilt through the library's structured error type,
//     preserving cause chain and stack text
//   - slices, arrays, maps, container.Set and container.OrderedMap recurse
//     per element; map keys are treated as opaque and never deep-copied
//   - structs recurse per exported field; types implementing
//     entries.Fielder are copied entry-by-entry into a record, and a
//     Rebuilder hook restores type identity when present
//
// # Safety bounds
//
// Three independent mechanisms bound the traversal: an identity set of the
// pointers on the active descent path, the key-pattern heuristic from the
// cycle package (which also catches repetition without pointer re-visits),
// and the depth/stack limits from Options. Whichever trips first truncates
// only that branch — siblings still copy fully.
//
// The package holds no state between calls; concurrent copies of values
// that are not concurrently mutated need no locking.
package copy
