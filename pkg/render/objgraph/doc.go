// Package objgraph renders object graphs as node-link diagrams.
//
// # Overview
//
// This package turns an arbitrary value — the same shapes the copy engine
// accepts — into a directed graph: containers become boxes, scalars become
// leaf labels, and edges carry the entry keys that connect them. Rendering
// goes through Graphviz.
//
// # Usage
//
// Convert a value to DOT format, then render to SVG:
//
//	dot := objgraph.ToDOT(value, objgraph.Options{})
//	svg, err := objgraph.RenderSVG(dot)
//
// For PNG output:
//
//	png, err := objgraph.RenderPNG(dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: when true, container labels include their kind and size
//   - MaxDepth: how many container levels are expanded (default 8)
//
// # Safety
//
// The walk shares the library's traversal defenses: the key-pattern cycle
// guard and the depth bound. Cyclic values render as a truncated graph
// with a back-edge marker node rather than hanging.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG and
// PNG rendering, so no external Graphviz installation is required.
package objgraph
