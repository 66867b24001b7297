package cli

import (
	"fmt"
	"strings"

	"github.com/mirrorkit/mirrorkit/pkg/cycle"
	"github.com/mirrorkit/mirrorkit/pkg/entries"
	"github.com/mirrorkit/mirrorkit/pkg/inspect"
)

// =============================================================================
// Entry Tree Rendering
// =============================================================================

// renderTree renders v's entry tree with box-drawing connectors, one line per
// entry. Containers show their type and size; leaves show a bounded value
// string. Depth and the key-pattern cycle guard bound the walk.
func renderTree(v any, maxDepth int) string {
	var b strings.Builder
	b.WriteString(StyleType.Render(describe(v)))
	b.WriteString("\n")

	t := &treeWriter{b: &b, maxDepth: maxDepth}
	t.children(v, "")
	return b.String()
}

type treeWriter struct {
	b        *strings.Builder
	maxDepth int
	path     []string
}

func (t *treeWriter) children(v any, prefix string) {
	ext := entries.Of(v)
	for i, e := range ext {
		last := i == len(ext)-1
		connector, childPrefix := "├── ", prefix+"│   "
		if last {
			connector, childPrefix = "└── ", prefix+"    "
		}

		key := e.Key.String()
		t.b.WriteString(prefix + StyleDim.Render(connector) + StyleKey.Render(key))

		sub := entries.Of(e.Value)
		if len(sub) == 0 {
			t.b.WriteString(StyleDim.Render(": ") + StyleValue.Render(inspect.String(e.Value)) + "\n")
			continue
		}

		t.b.WriteString(" " + StyleType.Render(describe(e.Value)) + "\n")

		t.path = append(t.path, key)
		if len(t.path) >= t.maxDepth || cycle.Detect(t.path) {
			t.b.WriteString(childPrefix + StyleDim.Render("└── …") + "\n")
		} else {
			t.children(e.Value, childPrefix)
		}
		t.path = t.path[:len(t.path)-1]
	}
}

// describe returns a short container label like "(map, 3 entries)".
func describe(v any) string {
	n := len(entries.Of(v))
	noun := "entries"
	if n == 1 {
		noun = "entry"
	}
	return fmt.Sprintf("(%s, %d %s)", typeNoun(v), n, noun)
}

func typeNoun(v any) string {
	switch v.(type) {
	case map[string]any:
		return "map"
	case []any:
		return "list"
	}
	s := fmt.Sprintf("%T", v)
	s = strings.TrimPrefix(s, "*")
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		s = s[i+1:]
	}
	return strings.ToLower(s)
}
