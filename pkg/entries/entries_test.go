package entries

import (
	"regexp"
	"testing"
	"time"

	"github.com/mirrorkit/mirrorkit/pkg/container"
	"github.com/mirrorkit/mirrorkit/pkg/frozen"
)

// keyStrings flattens entry keys for comparison.
func keyStrings(ext []Entry) []string {
	out := make([]string, len(ext))
	for i, e := range ext {
		out[i] = e.Key.String()
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestOfSlice(t *testing.T) {
	ext := Of([]any{10, 20, 30})

	if !equalStrings(keyStrings(ext), []string{"0", "1", "2"}) {
		t.Fatalf("keys = %v, want [0 1 2]", keyStrings(ext))
	}
	for i, want := range []int{10, 20, 30} {
		if ext[i].Value != want {
			t.Errorf("entry %d value = %v, want %d", i, ext[i].Value, want)
		}
		if !ext[i].Key.IsIndex() {
			t.Errorf("entry %d should carry an index key", i)
		}
	}
}

func TestOfSliceOmitsNil(t *testing.T) {
	ext := Of([]any{1, nil, 3, (*int)(nil)})

	if len(ext) != 2 {
		t.Fatalf("len = %d, want 2 (nil and typed nil omitted)", len(ext))
	}
	// Original positions are kept so holes stay visible.
	if !equalStrings(keyStrings(ext), []string{"0", "2"}) {
		t.Errorf("keys = %v, want [0 2]", keyStrings(ext))
	}
}

func TestOfMapSortsKeys(t *testing.T) {
	ext := Of(map[string]any{"zebra": 1, "apple": 2, "mango": 3})

	if !equalStrings(keyStrings(ext), []string{"apple", "mango", "zebra"}) {
		t.Errorf("keys = %v, want sorted", keyStrings(ext))
	}
}

func TestOfOrderedMapKeepsInsertionOrder(t *testing.T) {
	m := container.NewOrderedMap()
	m.Set("zebra", 1)
	m.Set("apple", 2)

	ext := Of(m)
	if !equalStrings(keyStrings(ext), []string{"zebra", "apple"}) {
		t.Errorf("keys = %v, want insertion order", keyStrings(ext))
	}
}

func TestDeniedNames(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"constructor", true},
		{"Constructor", true},
		{"__proto__", true},
		{"_uid", true},
		{"_GUID", true},
		{"toString", true},
		{"valueOf", true},
		{"hashCode", true},
		{"name", false},
		{"uid", false},
		{"proto", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Denied(tt.name); got != tt.want {
				t.Errorf("Denied(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestOfMapFiltersDeniedNames(t *testing.T) {
	ext := Of(map[string]any{
		"constructor": "hidden",
		"_uid":        "hidden",
		"visible":     1,
	})

	if len(ext) != 1 || ext[0].Key.String() != "visible" {
		t.Errorf("entries = %v, want only visible", keyStrings(ext))
	}
}

type plainStruct struct {
	Name   string
	Count  int
	hidden string
}

func TestOfStruct(t *testing.T) {
	ext := Of(plainStruct{Name: "a", Count: 2, hidden: "x"})

	if !equalStrings(keyStrings(ext), []string{"Name", "Count"}) {
		t.Errorf("keys = %v, want exported fields only", keyStrings(ext))
	}
}

type withState struct {
	Visible string
	secret  int
}

func (w *withState) Fields() []Entry {
	return []Entry{
		{Key: StringKey("secret"), Value: w.secret},
		{Key: StringKey("Visible"), Value: "shadowed"},
	}
}

func TestFielderMergedAfterFields(t *testing.T) {
	// Pointer receiver: the pointer form must be honored.
	ext := Of(&withState{Visible: "real", secret: 7})

	if !equalStrings(keyStrings(ext), []string{"Visible", "secret"}) {
		t.Fatalf("keys = %v, want [Visible secret]", keyStrings(ext))
	}
	// Exported fields win over Fielder duplicates.
	if ext[0].Value != "real" {
		t.Errorf("Visible = %v, want the struct field value", ext[0].Value)
	}
	if ext[1].Value != 7 {
		t.Errorf("secret = %v, want 7", ext[1].Value)
	}
}

type panickyFielder struct {
	OK bool
}

func (panickyFielder) Fields() []Entry {
	panic("broken accessor")
}

func TestFielderPanicContributesNothing(t *testing.T) {
	ext := Of(panickyFielder{OK: true})

	// The exported field survives; the panicking Fields adds nothing.
	if !equalStrings(keyStrings(ext), []string{"OK"}) {
		t.Errorf("keys = %v, want [OK]", keyStrings(ext))
	}
}

func TestIncludeTypeNames(t *testing.T) {
	ext := Extract(plainStruct{Name: "a"}, Options{IncludeTypeNames: true})

	if len(ext) == 0 || ext[0].Key.String() != ClassKey {
		t.Fatalf("first key = %v, want %q", keyStrings(ext), ClassKey)
	}
	if ext[0].Value != "plainStruct" {
		t.Errorf("class = %v, want plainStruct", ext[0].Value)
	}
}

func TestDateEntries(t *testing.T) {
	epoch := time.UnixMilli(0).UTC()
	ext := Of(epoch)

	got := map[string]any{}
	for _, e := range ext {
		got[e.Key.String()] = e.Value
	}

	if got["timestamp"] != int64(0) {
		t.Errorf("timestamp = %v, want 0", got["timestamp"])
	}
	if got["year"] != 1970 || got["month"] != 1 || got["day"] != 1 {
		t.Errorf("date parts = %v/%v/%v, want 1970/1/1", got["year"], got["month"], got["day"])
	}
	if got["isoString"] != epoch.Format(time.RFC3339Nano) {
		t.Errorf("isoString = %v", got["isoString"])
	}
}

func TestRegexpEntries(t *testing.T) {
	re := regexp.MustCompile(`(?i)(a)(b)`)
	ext := Of(re)

	got := map[string]any{}
	for _, e := range ext {
		got[e.Key.String()] = e.Value
	}

	if got["source"] != `(?i)(a)(b)` {
		t.Errorf("source = %v", got["source"])
	}
	if got["groups"] != 2 {
		t.Errorf("groups = %v, want 2", got["groups"])
	}
	if got["flags"] != "i" {
		t.Errorf("flags = %v, want i", got["flags"])
	}
}

func TestRegexpEntriesNoFlags(t *testing.T) {
	ext := Of(regexp.MustCompile(`abc(?:d)`))
	for _, e := range ext {
		if e.Key.String() == "flags" {
			t.Errorf("flags entry present for pattern without a flag group")
		}
	}
}

func TestOfFrozenContainers(t *testing.T) {
	list := frozen.NewList([]any{"a", "b"})
	if got := keyStrings(Of(list)); !equalStrings(got, []string{"0", "1"}) {
		t.Errorf("frozen list keys = %v", got)
	}

	m := frozen.NewMap([]string{"k2", "k1"}, map[string]any{"k1": 1, "k2": 2})
	if got := keyStrings(Of(m)); !equalStrings(got, []string{"k2", "k1"}) {
		t.Errorf("frozen map keys = %v, want declared order", got)
	}

	r := frozen.NewRecord("Point", []string{"X"}, map[string]any{"X": 1})
	ext := Extract(r, Options{IncludeTypeNames: true})
	if len(ext) != 2 || ext[0].Key.String() != ClassKey || ext[0].Value != "Point" {
		t.Errorf("record entries = %v, want class first", keyStrings(ext))
	}
}

func TestOfScalarsYieldNothing(t *testing.T) {
	for _, v := range []any{nil, 42, "text", true, 1.5} {
		if ext := Of(v); len(ext) != 0 {
			t.Errorf("Of(%v) = %d entries, want 0", v, len(ext))
		}
	}
}

func TestKeyForms(t *testing.T) {
	k := StringKey("name")
	if k.IsIndex() || k.Name() != "name" || k.String() != "name" {
		t.Errorf("StringKey broken: %v %v %v", k.IsIndex(), k.Name(), k.String())
	}

	i := IndexKey(4)
	if !i.IsIndex() || i.Name() != "" || i.String() != "4" {
		t.Errorf("IndexKey broken: %v %v %v", i.IsIndex(), i.Name(), i.String())
	}
	if idx, ok := i.Index(); !ok || idx != 4 {
		t.Errorf("Index() = %d, %v, want 4, true", idx, ok)
	}
}
