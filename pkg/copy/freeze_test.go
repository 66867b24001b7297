package copy

import (
	"reflect"
	"testing"

	"github.com/mirrorkit/mirrorkit/pkg/container"
	"github.com/mirrorkit/mirrorkit/pkg/frozen"
)

func TestDeepFreezeNested(t *testing.T) {
	original := map[string]any{
		"name": "config",
		"list": []any{1, map[string]any{"inner": true}},
		"map":  map[string]any{"x": 1},
	}

	root, ok := DeepFreeze(original).(*frozen.Map)
	if !ok {
		t.Fatalf("DeepFreeze = %T, want *frozen.Map", DeepFreeze(original))
	}

	// Native map keys come out sorted.
	if got := root.Keys(); !reflect.DeepEqual(got, []string{"list", "map", "name"}) {
		t.Errorf("keys = %v, want sorted", got)
	}

	listVal, _ := root.Get("list")
	list, ok := listVal.(*frozen.List)
	if !ok {
		t.Fatalf("list = %T, want *frozen.List", listVal)
	}
	if list.At(0) != 1 {
		t.Errorf("list[0] = %v, want 1", list.At(0))
	}
	if _, ok := list.At(1).(*frozen.Map); !ok {
		t.Errorf("list[1] = %T, want *frozen.Map (freeze is recursive)", list.At(1))
	}

	mapVal, _ := root.Get("map")
	if _, ok := mapVal.(*frozen.Map); !ok {
		t.Errorf("map = %T, want *frozen.Map", mapVal)
	}
}

func TestDeepFreezeScalarsStayScalar(t *testing.T) {
	for _, v := range []any{42, "text", true} {
		if got := DeepFreeze(v); got != v {
			t.Errorf("DeepFreeze(%v) = %v, want unchanged", v, got)
		}
	}
}

func TestDeepFreezeStructBecomesRecord(t *testing.T) {
	rec, ok := DeepFreeze(point{X: 1, Y: 2}).(*frozen.Record)
	if !ok {
		t.Fatalf("DeepFreeze(struct) = %T, want *frozen.Record", DeepFreeze(point{}))
	}
	if v, _ := rec.Field("X"); v != 1 {
		t.Errorf("X = %v, want 1", v)
	}
	if got := rec.Fields(); !reflect.DeepEqual(got, []string{"X", "Y"}) {
		t.Errorf("fields = %v, want [X Y]", got)
	}
}

func TestDeepFreezeIgnoresRebuilder(t *testing.T) {
	// A rebuilt value could be mutated through its own type, so freeze
	// keeps the record form even when the type offers reconstruction.
	out := DeepFreeze(&vault{Label: "prod", secret: 42})

	rec, ok := out.(*frozen.Record)
	if !ok {
		t.Fatalf("DeepFreeze(Rebuilder) = %T, want *frozen.Record", out)
	}
	if v, _ := rec.Field("Label"); v != "prod" {
		t.Errorf("Label = %v", v)
	}
	if v, _ := rec.Field("secret"); v != 42 {
		t.Errorf("secret = %v", v)
	}
}

func TestFreezeRecordsTypeName(t *testing.T) {
	opts := DefaultOptions()
	opts.Freeze = true
	opts.IncludeTypeNames = true

	rec := Copy(point{X: 1}, &opts).(*frozen.Record)
	if rec.TypeName() != "point" {
		t.Errorf("TypeName = %q, want point", rec.TypeName())
	}

	// Without the option the name is not recorded.
	plain := DeepFreeze(point{X: 1}).(*frozen.Record)
	if plain.TypeName() != "" {
		t.Errorf("TypeName = %q, want empty", plain.TypeName())
	}
}

func TestDeepFreezeSet(t *testing.T) {
	s := container.NewSet("a", "b")

	fs, ok := DeepFreeze(s).(*frozen.Set)
	if !ok {
		t.Fatalf("DeepFreeze(set) = %T, want *frozen.Set", DeepFreeze(s))
	}
	if fs.Len() != 2 || !fs.Has("a") {
		t.Errorf("frozen set = %v", fs.Items())
	}
}

func TestDeepFreezeOrderedMapKeepsOrder(t *testing.T) {
	m := container.NewOrderedMap()
	m.Set("zebra", 1)
	m.Set("apple", 2)

	fm := DeepFreeze(m).(*frozen.Map)
	if got := fm.Keys(); !reflect.DeepEqual(got, []string{"zebra", "apple"}) {
		t.Errorf("keys = %v, want insertion order preserved", got)
	}
}

func TestThawRoundTrip(t *testing.T) {
	original := map[string]any{"list": []any{1, 2}, "name": "x"}

	snapshot := DeepFreeze(original).(*frozen.Map)
	thawed, ok := Thaw(snapshot).(*container.OrderedMap)
	if !ok {
		t.Fatalf("Thaw = %T, want *container.OrderedMap", Thaw(snapshot))
	}

	name, _ := thawed.Get("name")
	if name != "x" {
		t.Errorf("name = %v", name)
	}
	listVal, _ := thawed.Get("list")
	list, ok := listVal.([]any)
	if !ok {
		t.Fatalf("list = %T, want []any after thaw", listVal)
	}
	if !reflect.DeepEqual(list, []any{1, 2}) {
		t.Errorf("list = %v", list)
	}
}

func TestDeepFreezeSelfReference(t *testing.T) {
	m := map[string]any{"value": 1}
	m["self"] = m

	root := DeepFreeze(m).(*frozen.Map)

	if v, _ := root.Get("value"); v != 1 {
		t.Errorf("value = %v", v)
	}
	// The truncated branch shares the original mutable map; freezing a
	// genuine cycle out of immutable nodes is impossible bottom-up.
	self, _ := root.Get("self")
	if reflect.ValueOf(self).Pointer() != reflect.ValueOf(m).Pointer() {
		t.Error("cyclic branch should share the original reference")
	}
}

func TestFreezeReplacements(t *testing.T) {
	opts := DefaultOptions()
	opts.Freeze = true
	opts.NullReplacement = []any{1, 2}

	out := Copy((*int)(nil), &opts)
	if _, ok := out.(*frozen.List); !ok {
		t.Errorf("container replacement = %T, want *frozen.List under freeze", out)
	}
}
