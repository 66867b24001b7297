// Package entries produces a uniform ordered view of any value's children.
//
// Every container kind — slices, arrays, maps, sets, structs, and the
// frozen container types — is reduced to the same shape: an ordered list
// of (key, value, owner) triples. The copy engine recurses through this
// view, and logging helpers use it to stringify arbitrary values safely.
//
// # Extraction rules
//
//   - Slices and arrays yield one entry per index, in order.
//   - container.OrderedMap and container.Set yield entries in insertion
//     order; native Go maps have no order, so their keys are sorted for
//     deterministic output.
//   - Structs yield one entry per exported field, in declaration order.
//   - Types implementing Fielder additionally contribute their Fields()
//     output; when a name collides with an exported field, the first
//     occurrence wins.
//   - time.Time and *regexp.Regexp yield fixed synthetic entries
//     (isoString/timestamp/... and source/flags respectively).
//
// Entries with nil values are omitted, as are a small deny-list of
// transient names (constructor-like names, toString/valueOf analogues and
// generated unique-id fields). Extraction never panics; children it cannot
// read are skipped.
package entries
