package inspect

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestStringScalars(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"Nil", nil, "nil"},
		{"Int", 42, "42"},
		{"Bool", true, "true"},
		{"Float", 1.5, "1.5"},
		{"String", "hello", `"hello"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := String(tt.v); got != tt.want {
				t.Errorf("String(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestStringContainers(t *testing.T) {
	if got := String([]any{1, 2, 3}); got != "[1, 2, 3]" {
		t.Errorf("slice = %q", got)
	}
	// Map keys are sorted by the extractor.
	if got := String(map[string]any{"b": 2, "a": 1}); got != "{a: 1, b: 2}" {
		t.Errorf("map = %q", got)
	}
	if got := String(map[string]any{"outer": []any{true}}); got != "{outer: [true]}" {
		t.Errorf("nested = %q", got)
	}
}

func TestRenderDepthBound(t *testing.T) {
	deep := map[string]any{"a": map[string]any{"b": map[string]any{"c": 1}}}

	got := Render(deep, Options{MaxDepth: 2})
	if !strings.Contains(got, "…") {
		t.Errorf("Render = %q, want truncation marker beyond depth", got)
	}
	if strings.Contains(got, "c:") {
		t.Errorf("Render = %q, rendered past the depth bound", got)
	}
}

func TestRenderEntryBound(t *testing.T) {
	wide := make(map[string]any)
	for _, k := range []string{"a", "b", "c", "d"} {
		wide[k] = 1
	}

	got := Render(wide, Options{MaxEntries: 2})
	if !strings.Contains(got, ", …") {
		t.Errorf("Render = %q, want entry truncation", got)
	}
	if strings.Contains(got, "c:") || strings.Contains(got, "d:") {
		t.Errorf("Render = %q, rendered past the entry bound", got)
	}
}

func TestRenderStringBound(t *testing.T) {
	long := strings.Repeat("x", 100)

	got := Render(long, Options{MaxStringLen: 10})
	if len(got) > 20 {
		t.Errorf("Render left a long string unclipped: %q", got)
	}
	if !strings.Contains(got, "…") {
		t.Errorf("Render = %q, want clip marker", got)
	}
}

func TestRenderError(t *testing.T) {
	err := errFixed("boom")
	if got := String(err); got != `"boom"` {
		t.Errorf("String(error) = %q", got)
	}
}

type errFixed string

func (e errFixed) Error() string { return string(e) }

func TestFields(t *testing.T) {
	got := Fields(map[string]any{"b": 2, "a": "x"})

	if len(got) != 4 {
		t.Fatalf("Fields returned %d values, want 4", len(got))
	}
	// Alternating key/value, keys in extractor order.
	if got[0] != "a" || got[1] != `"x"` {
		t.Errorf("first pair = %v %v", got[0], got[1])
	}
	if got[2] != "b" || got[3] != "2" {
		t.Errorf("second pair = %v %v", got[2], got[3])
	}
}

func TestStringIsSingleLine(t *testing.T) {
	v := map[string]any{"text": "line1\nline2", "nested": []any{1, 2}}
	if got := String(v); strings.Contains(got, "\n") {
		t.Errorf("String produced multiple lines: %q", got)
	}
}

func TestClipRuneBoundary(t *testing.T) {
	// 30 three-byte runes; a 64-byte cut would land mid-rune.
	s := strings.Repeat("世", 30)

	got := clip(s, 64)
	if !utf8.ValidString(got) {
		t.Fatalf("clip produced invalid UTF-8: %q", got)
	}
	if want := strings.Repeat("世", 21) + "…"; got != want {
		t.Errorf("clip = %q, want %q", got, want)
	}

	if got := clip("short", 64); got != "short" {
		t.Errorf("clip left short string = %q, want unchanged", got)
	}
}
