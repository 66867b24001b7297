// Package container provides insertion-ordered value containers.
//
// Go's built-in map has no iteration order and no set type. The copy and
// entries packages need both: the extraction contract promises insertion
// order for map and set entries, and a copied set must come back as a set.
// OrderedMap and Set fill that gap with small, allocation-friendly
// slice-plus-index implementations.
//
// Both containers hold values of type any and compare keys/elements with
// ordinary Go equality. They are not safe for concurrent mutation.
package container
