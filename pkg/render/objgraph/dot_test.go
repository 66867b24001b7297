package objgraph

import (
	"strings"
	"testing"
)

func TestToDOTStructure(t *testing.T) {
	dot := ToDOT(map[string]any{"name": "ada", "tags": []any{"x"}}, Options{})

	if !strings.HasPrefix(dot, "digraph G {") || !strings.HasSuffix(dot, "}\n") {
		t.Fatalf("not a DOT digraph:\n%s", dot)
	}
	for _, want := range []string{`label="name"`, `label="tags"`, `"\"ada\""`, `"\"x\""`} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %s:\n%s", want, dot)
		}
	}
}

func TestToDOTScalarRoot(t *testing.T) {
	dot := ToDOT(42, Options{})

	if !strings.Contains(dot, `[label="42"]`) {
		t.Errorf("scalar root missing:\n%s", dot)
	}
	if strings.Contains(dot, "->") {
		t.Errorf("scalar root should have no edges:\n%s", dot)
	}
}

func TestToDOTDetailedLabels(t *testing.T) {
	v := map[string]any{"a": 1, "b": 2}

	plain := ToDOT(v, Options{})
	if strings.Contains(plain, "(2)") {
		t.Error("size shown without Detailed")
	}

	detailed := ToDOT(v, Options{Detailed: true})
	if !strings.Contains(detailed, "(2)") {
		t.Errorf("Detailed label missing size:\n%s", detailed)
	}
}

func TestToDOTDepthTruncation(t *testing.T) {
	deep := map[string]any{"a": map[string]any{"b": map[string]any{"c": 1}}}

	dot := ToDOT(deep, Options{MaxDepth: 1})
	if !strings.Contains(dot, `label="…"`) {
		t.Errorf("depth-limited graph missing truncation node:\n%s", dot)
	}
}

func TestToDOTCyclicInputTerminates(t *testing.T) {
	m := map[string]any{"value": 1}
	m["self"] = m

	dot := ToDOT(m, Options{})
	if !strings.Contains(dot, `label="…"`) {
		t.Errorf("cyclic graph missing truncation node:\n%s", dot)
	}
}

func TestToDOTFanoutCap(t *testing.T) {
	items := make([]any, 10)
	for i := range items {
		items[i] = i
	}

	dot := ToDOT(items, Options{MaxFanout: 3})
	if !strings.Contains(dot, "+7 more") {
		t.Errorf("fanout cap label missing:\n%s", dot)
	}
}

func TestToDOTUniqueNodeIDs(t *testing.T) {
	// Equal scalars must still become distinct nodes.
	dot := ToDOT([]any{"same", "same"}, Options{})

	count := strings.Count(dot, `"\"same\""`)
	if count != 2 {
		t.Errorf("expected 2 leaf nodes, found %d:\n%s", count, dot)
	}
}
