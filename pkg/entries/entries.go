package entries

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/mirrorkit/mirrorkit/pkg/container"
	"github.com/mirrorkit/mirrorkit/pkg/frozen"
	"github.com/mirrorkit/mirrorkit/pkg/observability"
)

// Entry is one (key, value, owner) triple produced by extraction.
// Keys are unique within a single extraction pass; a value may itself be a
// container requiring further extraction.
type Entry struct {
	Key   Key
	Value any
	Owner any
}

// Fielder exposes state that is not visible as exported fields.
//
// Types implement Fielder to opt additional state into copying and
// inspection: the returned entries are merged after the exported struct
// fields, first occurrence winning. This replaces any notion of scanning a
// type's source for accessors — a type exposes exactly what it wants.
type Fielder interface {
	Fields() []Entry
}

// Options controls extraction behavior.
type Options struct {
	// IncludeTypeNames prepends a synthetic "class" entry holding the
	// dynamic type name for struct and Fielder values.
	IncludeTypeNames bool
}

// ClassKey is the key of the synthetic type-name entry emitted when
// Options.IncludeTypeNames is set.
const ClassKey = "class"

// deniedNames lists transient property names that never become entries.
// They carry metadata rather than state and, for generated id fields,
// would make otherwise identical values look distinct.
var deniedNames = map[string]struct{}{
	"constructor": {},
	"prototype":   {},
	"__proto__":   {},
	"tostring":    {},
	"valueof":     {},
	"getclass":    {},
	"hashcode":    {},
	"_uid":        {},
	"_guid":       {},
}

// Denied reports whether name is on the transient-name deny list.
// Matching is case-insensitive.
func Denied(name string) bool {
	_, ok := deniedNames[strings.ToLower(name)]
	return ok
}

// Of extracts the entries of v with default options.
func Of(v any) []Entry {
	return Extract(v, Options{})
}

// Extract produces the ordered entries of v.
//
// Scalars and unsupported kinds yield no entries. Extraction never panics:
// a Fielder whose Fields method panics simply contributes nothing.
func Extract(v any, opts Options) []Entry {
	if v == nil {
		return nil
	}

	var out []Entry
	switch val := v.(type) {
	case time.Time:
		out = dateEntries(val)
	case *time.Time:
		if val == nil {
			return nil
		}
		out = dateEntries(*val)
	case *regexp.Regexp:
		if val == nil {
			return nil
		}
		out = regexpEntries(val)
	case *container.OrderedMap:
		out = orderedMapEntries(val)
	case *container.Set:
		out = setEntries(val.Items(), val)
	case *frozen.List:
		out = indexEntries(val.Items(), val)
	case *frozen.Set:
		out = setEntries(val.Items(), val)
	case *frozen.Map:
		out = frozenMapEntries(val)
	case *frozen.Record:
		out = frozenRecordEntries(val, opts)
	default:
		out = reflectEntries(v, opts)
	}

	observability.Extract().OnExtract(kindName(v), len(out))
	return out
}

// reflectEntries handles the kinds with no direct case: slices, arrays,
// native maps, structs (plus their Fielder contribution) and pointers.
func reflectEntries(v any, opts Options) []Entry {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		// Keep the pointer as owner so Fielder implementations with
		// pointer receivers are honored.
		if rv.Elem().Kind() == reflect.Struct {
			return structEntries(rv.Elem(), v, opts)
		}
		return Extract(rv.Elem().Interface(), opts)
	case reflect.Slice, reflect.Array:
		return sequenceEntries(rv, v)
	case reflect.Map:
		return mapEntries(rv, v)
	case reflect.Struct:
		return structEntries(rv, v, opts)
	default:
		return nil
	}
}

func sequenceEntries(rv reflect.Value, owner any) []Entry {
	out := make([]Entry, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		child := rv.Index(i).Interface()
		if isNil(child) {
			dropped(owner, fmt.Sprint(i), "nil value")
			continue
		}
		out = append(out, Entry{Key: IndexKey(i), Value: child, Owner: owner})
	}
	return out
}

func indexEntries(items []any, owner any) []Entry {
	out := make([]Entry, 0, len(items))
	for i, it := range items {
		if isNil(it) {
			dropped(owner, fmt.Sprint(i), "nil value")
			continue
		}
		out = append(out, Entry{Key: IndexKey(i), Value: it, Owner: owner})
	}
	return out
}

// setEntries mirrors indexEntries; sets are keyed positionally.
func setEntries(items []any, owner any) []Entry {
	return indexEntries(items, owner)
}

func mapEntries(rv reflect.Value, owner any) []Entry {
	keys := rv.MapKeys()
	type pair struct {
		name  string
		value any
	}
	pairs := make([]pair, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, pair{name: keyString(k), value: rv.MapIndex(k).Interface()})
	}
	// Native Go maps have no insertion order; sort for determinism.
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].name < pairs[j].name })

	out := make([]Entry, 0, len(pairs))
	seen := make(map[string]struct{}, len(pairs))
	for _, p := range pairs {
		if !admit(owner, p.name, p.value, seen) {
			continue
		}
		out = append(out, Entry{Key: StringKey(p.name), Value: p.value, Owner: owner})
	}
	return out
}

func orderedMapEntries(m *container.OrderedMap) []Entry {
	out := make([]Entry, 0, m.Len())
	seen := make(map[string]struct{}, m.Len())
	m.Each(func(key string, value any) bool {
		if admit(m, key, value, seen) {
			out = append(out, Entry{Key: StringKey(key), Value: value, Owner: m})
		}
		return true
	})
	return out
}

func frozenMapEntries(m *frozen.Map) []Entry {
	out := make([]Entry, 0, m.Len())
	seen := make(map[string]struct{}, m.Len())
	m.Each(func(key string, value any) bool {
		if admit(m, key, value, seen) {
			out = append(out, Entry{Key: StringKey(key), Value: value, Owner: m})
		}
		return true
	})
	return out
}

func frozenRecordEntries(r *frozen.Record, opts Options) []Entry {
	out := make([]Entry, 0, r.Len()+1)
	if opts.IncludeTypeNames && r.TypeName() != "" {
		out = append(out, Entry{Key: StringKey(ClassKey), Value: r.TypeName(), Owner: r})
	}
	seen := make(map[string]struct{}, r.Len())
	r.Each(func(name string, value any) bool {
		if admit(r, name, value, seen) {
			out = append(out, Entry{Key: StringKey(name), Value: value, Owner: r})
		}
		return true
	})
	return out
}

func structEntries(rv reflect.Value, owner any, opts Options) []Entry {
	t := rv.Type()
	out := make([]Entry, 0, t.NumField()+1)
	seen := make(map[string]struct{}, t.NumField())

	if opts.IncludeTypeNames {
		out = append(out, Entry{Key: StringKey(ClassKey), Value: typeName(owner), Owner: owner})
		seen[ClassKey] = struct{}{}
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue // unexported
		}
		value := rv.Field(i).Interface()
		if !admit(owner, f.Name, value, seen) {
			continue
		}
		out = append(out, Entry{Key: StringKey(f.Name), Value: value, Owner: owner})
	}

	// Fielder contribution comes after exported fields; first wins.
	if f, ok := owner.(Fielder); ok {
		for _, e := range safeFields(f) {
			name := e.Key.String()
			if !admit(owner, name, e.Value, seen) {
				continue
			}
			out = append(out, Entry{Key: e.Key, Value: e.Value, Owner: owner})
		}
	}

	return out
}

// safeFields calls f.Fields, catching panics. A Fielder that fails
// contributes nothing; extraction of the rest of the value proceeds.
func safeFields(f Fielder) (fields []Entry) {
	defer func() {
		if r := recover(); r != nil {
			fields = nil
			dropped(f, "Fields()", fmt.Sprintf("panic: %v", r))
		}
	}()
	return f.Fields()
}

// admit applies the shared entry filters: deny list, nil values and
// duplicate names. It records name in seen when the entry is admitted.
func admit(owner any, name string, value any, seen map[string]struct{}) bool {
	if Denied(name) {
		dropped(owner, name, "denied name")
		return false
	}
	if isNil(value) {
		dropped(owner, name, "nil value")
		return false
	}
	if _, dup := seen[name]; dup {
		dropped(owner, name, "duplicate name")
		return false
	}
	seen[name] = struct{}{}
	return true
}

func dropped(owner any, name, reason string) {
	observability.Extract().OnEntryDropped(kindName(owner), name, reason)
}

// keyString renders a map key as its canonical string form.
func keyString(k reflect.Value) string {
	return fmt.Sprint(k.Interface())
}

// typeName returns a readable dynamic type name for v, without the
// pointer marker.
func typeName(v any) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}

// kindName is a coarse label for hooks: the reflect kind, or the concrete
// type for the container kinds.
func kindName(v any) string {
	switch v.(type) {
	case nil:
		return "nil"
	case *container.OrderedMap, *frozen.Map:
		return "map"
	case *container.Set, *frozen.Set:
		return "set"
	case *frozen.List:
		return "list"
	case *frozen.Record:
		return "record"
	case time.Time, *time.Time:
		return "date"
	case *regexp.Regexp:
		return "regexp"
	default:
		return reflect.ValueOf(v).Kind().String()
	}
}

// isNil reports whether v is nil, including typed nils.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

