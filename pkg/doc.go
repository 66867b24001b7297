// Package pkg provides the core libraries for MirrorKit deep copying.
//
// # Overview
//
// MirrorKit produces independent copies, immutable snapshots, and
// visualizations of arbitrarily shaped values. The pkg directory is
// organized into five main areas:
//
//  1. [copy] - The copy engine (deep copy, freeze, thaw, options)
//  2. [entries] - Uniform entry extraction from any value shape
//  3. [cycle], [container], [frozen] - Traversal safety and container types
//  4. [render] - Object-graph visualization
//  5. [errors], [observability], [inspect], [buildinfo] - Cross-cutting support
//
// # Architecture
//
// The typical data flow through MirrorKit:
//
//	Arbitrary value (maps, slices, structs, Fielder types)
//	         ↓
//	    [entries] package (extract uniform key/value entries)
//	         ↓
//	    [copy] package (bounded traversal + reconstruction)
//	         ↓
//	    Independent copy, frozen snapshot, or [render] diagram
//
// # Quick Start
//
// Deep-copy a value with default options:
//
//	copied := copy.Copy(value, nil)
//
// Produce an immutable snapshot:
//
//	snapshot := copy.DeepFreeze(value)
//
// Render an object graph:
//
//	dot := objgraph.ToDOT(value, objgraph.Options{})
//	svg, err := objgraph.RenderSVG(dot)
//
// # Safety
//
// Every traversal in this tree is bounded three ways: an identity set of
// the references on the active descent path, the key-pattern heuristic in
// [cycle], and the depth and stack limits in [copy.Options]. Cyclic or
// pathologically deep input degrades to a partial copy, never a hang or a
// panic.
package pkg
