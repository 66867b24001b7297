package objgraph

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-graphviz"
	"github.com/google/uuid"

	"github.com/mirrorkit/mirrorkit/pkg/cycle"
	"github.com/mirrorkit/mirrorkit/pkg/entries"
	"github.com/mirrorkit/mirrorkit/pkg/inspect"
	"github.com/mirrorkit/mirrorkit/pkg/observability"
)

// Options configures object-graph rendering.
type Options struct {
	// Detailed includes container kind and entry count in node labels.
	// When false, containers show only their kind.
	Detailed bool

	// MaxDepth is how many container levels are expanded. Zero means
	// the default of 8.
	MaxDepth int

	// MaxFanout caps how many entries of one container become child
	// nodes. Zero means the default of 32.
	MaxFanout int
}

func (o Options) withDefaults() Options {
	if o.MaxDepth <= 0 {
		o.MaxDepth = 8
	}
	if o.MaxFanout <= 0 {
		o.MaxFanout = 32
	}
	return o
}

// ToDOT converts a value's object graph to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG] or [RenderPNG].
//
// Cyclic or over-deep branches are truncated into a grey ellipsis node so
// the output is always finite.
func ToDOT(v any, opts Options) string {
	o := opts.withDefaults()
	start := time.Now()
	observability.Render().OnRenderStart("dot")

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	w := &walker{buf: &buf, opts: o}
	w.node(v, o.MaxDepth)
	buf.WriteString("}\n")

	observability.Render().OnRenderComplete("dot", w.count, time.Since(start), nil)
	return buf.String()
}

// walker emits one DOT node per visited value, connected by key-labeled
// edges. It carries the same traversal defenses as the copy engine: the
// key-pattern guard plus a depth bound.
type walker struct {
	buf   *bytes.Buffer
	opts  Options
	path  []string
	count int
}

// node emits the subgraph rooted at v and returns its node id.
func (w *walker) node(v any, depth int) string {
	id := newNodeID()
	w.count++

	ext := entries.Of(v)
	if len(ext) == 0 {
		fmt.Fprintf(w.buf, "  %q [label=%q];\n", id, inspect.String(v))
		return id
	}

	fmt.Fprintf(w.buf, "  %q [label=%q, fillcolor=lightyellow];\n", id, w.containerLabel(v, len(ext)))

	if depth <= 0 || cycle.Detect(w.path) {
		w.edge(id, w.truncated(), "…")
		return id
	}

	for i, e := range ext {
		if i >= w.opts.MaxFanout {
			w.edge(id, w.truncated(), fmt.Sprintf("+%d more", len(ext)-i))
			break
		}
		key := e.Key.String()
		w.path = append(w.path, key)
		child := w.node(e.Value, depth-1)
		w.path = w.path[:len(w.path)-1]
		w.edge(id, child, key)
	}
	return id
}

// truncated emits the grey marker node standing in for a cut branch.
func (w *walker) truncated() string {
	id := newNodeID()
	w.count++
	fmt.Fprintf(w.buf, "  %q [label=\"…\", style=\"rounded,filled,dashed\", fillcolor=lightgrey];\n", id)
	return id
}

func (w *walker) edge(from, to, label string) {
	fmt.Fprintf(w.buf, "  %q -> %q [label=%q];\n", from, to, label)
}

func (w *walker) containerLabel(v any, size int) string {
	kind := kindLabel(v)
	if !w.opts.Detailed {
		return kind
	}
	return fmt.Sprintf("%s (%d)", kind, size)
}

func kindLabel(v any) string {
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
	return s
}

// newNodeID returns a fresh DOT-safe node id. Values carry no usable
// identity of their own (two equal scalars are distinct nodes), so ids
// are simply generated.
func newNodeID() string {
	return "n" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return render(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG)
}

func render(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
