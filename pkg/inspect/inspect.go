// Package inspect renders arbitrary values as bounded, log-safe strings.
//
// Logging a value of unknown shape is risky: it may be huge, cyclic, or
// carry transient metadata. This package walks values through the entries
// extractor — inheriting its nil-omission and deny-list filtering — and
// cuts the output off at hard bounds, so the result is always a short
// single-line string regardless of input shape.
package inspect

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mirrorkit/mirrorkit/pkg/entries"
)

// Options bounds the rendered output. Zero values mean the defaults.
type Options struct {
	// MaxDepth is how many container levels are expanded. Deeper values
	// render as "…". Default 3.
	MaxDepth int

	// MaxEntries is how many entries per container are shown. Default 8.
	MaxEntries int

	// MaxStringLen truncates long strings. Default 64.
	MaxStringLen int
}

func (o Options) withDefaults() Options {
	if o.MaxDepth <= 0 {
		o.MaxDepth = 3
	}
	if o.MaxEntries <= 0 {
		o.MaxEntries = 8
	}
	if o.MaxStringLen <= 0 {
		o.MaxStringLen = 64
	}
	return o
}

// String renders v with default bounds.
func String(v any) string {
	return Render(v, Options{})
}

// Render renders v as a single line within the given bounds.
func Render(v any, opts Options) string {
	o := opts.withDefaults()
	var b strings.Builder
	render(&b, v, o, o.MaxDepth)
	return b.String()
}

// Fields returns alternating key/value pairs for a structured logger,
// one pair per top-level entry of v.
//
//	logger.Debug("loaded", inspect.Fields(value)...)
func Fields(v any) []any {
	o := Options{}.withDefaults()
	ext := entries.Of(v)
	out := make([]any, 0, 2*len(ext))
	for i, e := range ext {
		if i >= o.MaxEntries {
			break
		}
		var b strings.Builder
		render(&b, e.Value, o, o.MaxDepth-1)
		out = append(out, e.Key.String(), b.String())
	}
	return out
}

func render(b *strings.Builder, v any, o Options, depth int) {
	switch val := v.(type) {
	case nil:
		b.WriteString("nil")
		return
	case string:
		b.WriteString(strconv.Quote(clip(val, o.MaxStringLen)))
		return
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		fmt.Fprint(b, val)
		return
	case error:
		b.WriteString(strconv.Quote(clip(val.Error(), o.MaxStringLen)))
		return
	}

	ext := entries.Of(v)
	if len(ext) == 0 {
		b.WriteString(clip(fmt.Sprint(v), o.MaxStringLen))
		return
	}
	if depth <= 0 {
		b.WriteString("…")
		return
	}

	indexed := ext[0].Key.IsIndex()
	open, closer := "{", "}"
	if indexed {
		open, closer = "[", "]"
	}

	b.WriteString(open)
	for i, e := range ext {
		if i >= o.MaxEntries {
			b.WriteString(", …")
			break
		}
		if i > 0 {
			b.WriteString(", ")
		}
		if !indexed {
			b.WriteString(e.Key.String())
			b.WriteString(": ")
		}
		render(b, e.Value, o, depth-1)
	}
	b.WriteString(closer)
}

// clip truncates s to at most max bytes, backing up to a rune boundary so
// the cut never splits an encoded character.
func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}
