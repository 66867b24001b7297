package copy

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/mirrorkit/mirrorkit/pkg/container"
	"github.com/mirrorkit/mirrorkit/pkg/cycle"
	"github.com/mirrorkit/mirrorkit/pkg/entries"
	mkerrors "github.com/mirrorkit/mirrorkit/pkg/errors"
	"github.com/mirrorkit/mirrorkit/pkg/frozen"
	"github.com/mirrorkit/mirrorkit/pkg/observability"
)

// Rebuilder restores type identity after an entry-by-entry copy.
//
// When a Fielder value is copied, the engine produces its copied entries
// and, if the type also implements Rebuilder, hands them over so the type
// can reconstruct itself. Without the hook the copy is a plain record
// (map[string]any).
type Rebuilder interface {
	Rebuild(fields []entries.Entry) any
}

// Copy produces an independent copy of v according to opts.
//
// Copy never returns an error and never panics for data-shape reasons:
// unsupported kinds pass through unchanged, cyclic branches are truncated
// to shallow shares, and per-entry access failures drop only the affected
// entry. A nil opts uses the library defaults.
func Copy(v any, opts *Options) any {
	ro := Resolve(opts)
	start := time.Now()
	kind := kindOf(v)
	observability.Copy().OnCopyStart(kind, ro.Freeze)

	e := &engine{opts: ro, active: make(map[visitKey]struct{})}
	out := e.copyValue(v, ro.MaxDepth)

	observability.Copy().OnCopyComplete(kind, time.Since(start))
	return out
}

// DeepFreeze copies v and locks the whole result tree into the frozen
// container types. Equivalent to Copy with Freeze set and default bounds.
func DeepFreeze(v any) any {
	o := DefaultOptions()
	o.Freeze = true
	return Copy(v, &o)
}

// Thaw deep-copies a value back into mutable shape. Frozen containers
// become their mutable counterparts; everything else copies as usual.
func Thaw(v any) any {
	return Copy(v, nil)
}

// visitKey identifies a traversed reference for cycle truncation.
type visitKey struct {
	ptr uintptr
	typ reflect.Type
}

// engine holds the per-call traversal state. One engine serves exactly one
// Copy invocation; nothing is shared between calls.
type engine struct {
	opts   Options
	path   []string
	active map[visitKey]struct{}
}

func (e *engine) copyValue(v any, depth int) any {
	if v == nil {
		return e.replacement(e.opts.UndefinedReplacement)
	}

	switch val := v.(type) {
	case bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, complex64, complex128:
		return v
	case time.Time:
		return val
	case *time.Time:
		if val == nil {
			return e.replacement(e.opts.NullReplacement)
		}
		t := *val
		return &t
	case *regexp.Regexp:
		if val == nil {
			return e.replacement(e.opts.NullReplacement)
		}
		return rebuildRegexp(val)
	case *container.OrderedMap:
		if val == nil {
			return e.replacement(e.opts.NullReplacement)
		}
		return e.copyOrderedMap(val, depth)
	case *container.Set:
		if val == nil {
			return e.replacement(e.opts.NullReplacement)
		}
		return e.copySetItems(val.Items(), val, depth)
	case *frozen.List:
		if val == nil {
			return e.replacement(e.opts.NullReplacement)
		}
		return e.copyFrozenList(val, depth)
	case *frozen.Map:
		if val == nil {
			return e.replacement(e.opts.NullReplacement)
		}
		return e.copyFrozenMap(val, depth)
	case *frozen.Record:
		if val == nil {
			return e.replacement(e.opts.NullReplacement)
		}
		return e.copyFrozenRecord(val, depth)
	case *frozen.Set:
		if val == nil {
			return e.replacement(e.opts.NullReplacement)
		}
		return e.copySetItems(val.Items(), val, depth)
	}

	rv := reflect.ValueOf(v)

	// Typed nils still satisfy interfaces like error; substitute before
	// any method dispatch can dereference one.
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return e.replacement(e.opts.NullReplacement)
		}
	}

	if err, ok := v.(error); ok {
		return mkerrors.Remake(err)
	}

	switch rv.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return v
	case reflect.Pointer:
		return e.copyPointer(rv, depth)
	case reflect.Slice:
		return e.copySlice(rv, depth)
	case reflect.Array:
		return e.copyArray(rv, depth)
	case reflect.Map:
		return e.copyMap(rv, depth)
	case reflect.Struct:
		return e.copyStruct(rv, v, depth)
	default:
		// Named scalar types and anything without a rule pass through.
		return v
	}
}

// =============================================================================
// Traversal bookkeeping
// =============================================================================

// mayDescend reports whether children at the current position may still be
// copied deeply. False means share by reference.
func (e *engine) mayDescend(depth int) bool {
	if depth <= 0 || len(e.path) >= e.opts.MaxStackSize {
		observability.Copy().OnDepthLimit(e.pathCopy())
		return false
	}
	return true
}

// cyclic consults the key-pattern guard on the current path.
func (e *engine) cyclic() bool {
	detected := cycle.Guard{
		OnRepeat: func(window []string) {
			observability.Copy().OnCycleDetected(window)
		},
	}.Detect(e.path)
	return detected
}

// descend decides whether a container's children get deep copies. The
// guard runs only when the bounds still allow a descent at all.
func (e *engine) descend(depth int) bool {
	if !e.mayDescend(depth) {
		return false
	}
	return !e.cyclic()
}

// enter marks a reference as being copied on the current branch. The
// second return is false when the reference is already active, i.e. the
// traversal has looped back onto itself.
func (e *engine) enter(rv reflect.Value) (visitKey, bool) {
	key := visitKey{ptr: rv.Pointer(), typ: rv.Type()}
	if _, ok := e.active[key]; ok {
		observability.Copy().OnCycleDetected(e.pathCopy())
		return key, false
	}
	e.active[key] = struct{}{}
	return key, true
}

func (e *engine) leave(key visitKey) {
	delete(e.active, key)
}

// copyChild copies one child value with its key pushed onto the path.
func (e *engine) copyChild(key string, child any, depth int) any {
	e.path = append(e.path, key)
	out := e.copyValue(child, depth)
	e.path = e.path[:len(e.path)-1]
	return out
}

func (e *engine) pathCopy() []string {
	return append([]string(nil), e.path...)
}

// =============================================================================
// Containers
// =============================================================================

func (e *engine) copySlice(rv reflect.Value, depth int) any {
	key, ok := e.enter(rv)
	if !ok {
		return rv.Interface() // truncate: share the original branch
	}
	defer e.leave(key)

	deep := e.descend(depth)

	if e.opts.Freeze {
		return e.freezeSequence(rv, depth, deep)
	}

	out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
	for i := 0; i < rv.Len(); i++ {
		child := rv.Index(i)
		if !deep {
			out.Index(i).Set(child)
			continue
		}
		copied := e.copyChild(strconv.Itoa(i), child.Interface(), depth-1)
		setOrShare(out.Index(i), copied, child)
	}
	return out.Interface()
}

func (e *engine) copyArray(rv reflect.Value, depth int) any {
	deep := e.descend(depth)

	if e.opts.Freeze {
		return e.freezeSequence(rv, depth, deep)
	}

	out := reflect.New(rv.Type()).Elem()
	for i := 0; i < rv.Len(); i++ {
		child := rv.Index(i)
		if !deep {
			out.Index(i).Set(child)
			continue
		}
		copied := e.copyChild(strconv.Itoa(i), child.Interface(), depth-1)
		setOrShare(out.Index(i), copied, child)
	}
	return out.Interface()
}

func (e *engine) freezeSequence(rv reflect.Value, depth int, deep bool) any {
	items := make([]any, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		child := rv.Index(i).Interface()
		if deep {
			child = e.copyChild(strconv.Itoa(i), child, depth-1)
		}
		items = append(items, child)
	}
	observability.Copy().OnFreeze("list")
	return frozen.NewList(items)
}

func (e *engine) copyMap(rv reflect.Value, depth int) any {
	key, ok := e.enter(rv)
	if !ok {
		return rv.Interface()
	}
	defer e.leave(key)

	deep := e.descend(depth)

	if e.opts.Freeze {
		keys := make([]string, 0, rv.Len())
		values := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			name := fmt.Sprint(iter.Key().Interface())
			child := iter.Value().Interface()
			if deep {
				child = e.copyChild(name, child, depth-1)
			}
			keys = append(keys, name)
			values[name] = child
		}
		sort.Strings(keys)
		observability.Copy().OnFreeze("map")
		return frozen.NewMap(keys, values)
	}

	out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k := iter.Key() // map keys are opaque: reused, never deep-copied
		child := iter.Value()
		if !deep {
			out.SetMapIndex(k, child)
			continue
		}
		copied := e.copyChild(fmt.Sprint(k.Interface()), child.Interface(), depth-1)
		if cv := reflect.ValueOf(copied); cv.IsValid() && cv.Type().AssignableTo(rv.Type().Elem()) {
			out.SetMapIndex(k, cv)
		} else if copied == nil {
			out.SetMapIndex(k, reflect.Zero(rv.Type().Elem()))
		} else {
			out.SetMapIndex(k, child)
		}
	}
	return out.Interface()
}

func (e *engine) copyOrderedMap(m *container.OrderedMap, depth int) any {
	key, ok := e.enter(reflect.ValueOf(m))
	if !ok {
		return m
	}
	defer e.leave(key)

	deep := e.descend(depth)

	if e.opts.Freeze {
		keys := make([]string, 0, m.Len())
		values := make(map[string]any, m.Len())
		m.Each(func(name string, child any) bool {
			if deep {
				child = e.copyChild(name, child, depth-1)
			}
			keys = append(keys, name)
			values[name] = child
			return true
		})
		observability.Copy().OnFreeze("map")
		return frozen.NewMap(keys, values)
	}

	out := container.NewOrderedMap()
	m.Each(func(name string, child any) bool {
		if deep {
			child = e.copyChild(name, child, depth-1)
		}
		out.Set(name, child)
		return true
	})
	return out
}

// copySetItems copies set elements positionally; owner is the original
// set (mutable or frozen) used for identity tracking.
func (e *engine) copySetItems(items []any, owner any, depth int) any {
	key, ok := e.enter(reflect.ValueOf(owner))
	if !ok {
		return owner
	}
	defer e.leave(key)

	deep := e.descend(depth)

	copied := make([]any, 0, len(items))
	for i, child := range items {
		if deep {
			child = e.copyChild(strconv.Itoa(i), child, depth-1)
		}
		copied = append(copied, child)
	}

	if e.opts.Freeze {
		observability.Copy().OnFreeze("set")
		return frozen.NewSet(copied)
	}
	return container.NewSet(copied...)
}

// =============================================================================
// Frozen inputs
// =============================================================================

func (e *engine) copyFrozenList(l *frozen.List, depth int) any {
	deep := e.descend(depth)

	items := l.Items()
	for i, child := range items {
		if deep {
			items[i] = e.copyChild(strconv.Itoa(i), child, depth-1)
		}
	}
	if e.opts.Freeze {
		observability.Copy().OnFreeze("list")
		return frozen.NewList(items)
	}
	return items
}

func (e *engine) copyFrozenMap(m *frozen.Map, depth int) any {
	deep := e.descend(depth)

	keys := m.Keys()
	values := make(map[string]any, m.Len())
	m.Each(func(name string, child any) bool {
		if deep {
			child = e.copyChild(name, child, depth-1)
		}
		values[name] = child
		return true
	})

	if e.opts.Freeze {
		observability.Copy().OnFreeze("map")
		return frozen.NewMap(keys, values)
	}
	out := container.NewOrderedMap()
	for _, name := range keys {
		out.Set(name, values[name])
	}
	return out
}

func (e *engine) copyFrozenRecord(r *frozen.Record, depth int) any {
	deep := e.descend(depth)

	keys := r.Fields()
	values := make(map[string]any, r.Len())
	r.Each(func(name string, child any) bool {
		if deep {
			child = e.copyChild(name, child, depth-1)
		}
		values[name] = child
		return true
	})

	if e.opts.Freeze {
		observability.Copy().OnFreeze("record")
		return frozen.NewRecord(r.TypeName(), keys, values)
	}
	out := make(map[string]any, len(values))
	for _, name := range keys {
		out[name] = values[name]
	}
	if e.opts.IncludeTypeNames && r.TypeName() != "" {
		out[entries.ClassKey] = r.TypeName()
	}
	return out
}

// =============================================================================
// Pointers and structs
// =============================================================================

func (e *engine) copyPointer(rv reflect.Value, depth int) any {
	if rv.IsNil() {
		return e.replacement(e.opts.NullReplacement)
	}

	key, ok := e.enter(rv)
	if !ok {
		return rv.Interface()
	}
	defer e.leave(key)

	elem := rv.Elem()

	var copied any
	if elem.Kind() == reflect.Struct {
		// Pass the pointer as owner so pointer-receiver Fielder and
		// Rebuilder implementations are honored.
		copied = e.copyStruct(elem, rv.Interface(), depth)
	} else {
		copied = e.copyValue(elem.Interface(), depth)
	}

	// Re-wrap in a pointer when the copy kept the pointee's type.
	if cv := reflect.ValueOf(copied); cv.IsValid() && cv.Type() == elem.Type() {
		out := reflect.New(elem.Type())
		out.Elem().Set(cv)
		return out.Interface()
	}
	return copied
}

func (e *engine) copyStruct(rv reflect.Value, owner any, depth int) any {
	deep := e.descend(depth)

	// Fielder values and all freeze-mode structs are copied entry by
	// entry; plain structs keep their Go type through reflection.
	if _, isFielder := owner.(entries.Fielder); isFielder || e.opts.Freeze {
		return e.copyRecord(owner, depth, deep)
	}

	t := rv.Type()
	out := reflect.New(t).Elem()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" {
			continue // unexported state is only copied via Fielder
		}
		field := rv.Field(i)
		if !deep {
			out.Field(i).Set(field)
			continue
		}
		copied := e.copyChild(sf.Name, field.Interface(), depth-1)
		setOrShare(out.Field(i), copied, field)
	}
	return out.Interface()
}

// copyRecord builds a record copy from the extractor's view of owner.
// The Rebuilder hook runs last so the type can restore its identity;
// freeze mode ignores the hook because a rebuilt value could not be
// locked without genericizing it again.
func (e *engine) copyRecord(owner any, depth int, deep bool) any {
	ext := entries.Of(owner)

	keys := make([]string, 0, len(ext))
	values := make(map[string]any, len(ext))
	copied := make([]entries.Entry, 0, len(ext))
	for _, entry := range ext {
		v := entry.Value
		if deep {
			v = e.copyChild(entry.Key.String(), v, depth-1)
		}
		name := entry.Key.String()
		keys = append(keys, name)
		values[name] = v
		copied = append(copied, entries.Entry{Key: entry.Key, Value: v, Owner: owner})
	}

	if e.opts.Freeze {
		name := ""
		if e.opts.IncludeTypeNames {
			name = typeNameOf(owner)
		}
		observability.Copy().OnFreeze("record")
		return frozen.NewRecord(name, keys, values)
	}

	if rb, ok := owner.(Rebuilder); ok {
		if rebuilt, ok := safeRebuild(rb, copied); ok {
			return rebuilt
		}
	}

	out := make(map[string]any, len(values)+1)
	for _, name := range keys {
		out[name] = values[name]
	}
	if e.opts.IncludeTypeNames {
		out[entries.ClassKey] = typeNameOf(owner)
	}
	return out
}

// safeRebuild invokes the reconstruction hook, treating a panic as "no
// hook": the caller falls back to the plain record form.
func safeRebuild(rb Rebuilder, fields []entries.Entry) (out any, ok bool) {
	defer func() {
		if recover() != nil {
			out, ok = nil, false
		}
	}()
	return rb.Rebuild(fields), true
}

// =============================================================================
// Leaves and helpers
// =============================================================================

// rebuildRegexp returns a fresh compiled pattern holding the same source.
func rebuildRegexp(re *regexp.Regexp) any {
	fresh, err := regexp.Compile(re.String())
	if err != nil {
		return re // cannot happen for an already-compiled pattern
	}
	return fresh
}

// replacement substitutes a missing value, freezing container-shaped
// replacements when the options ask for it.
func (e *engine) replacement(r any) any {
	if !e.opts.Freeze || r == nil {
		return r
	}
	switch val := r.(type) {
	case []any:
		return frozen.NewList(append([]any(nil), val...))
	case map[string]any:
		keys := make([]string, 0, len(val))
		values := make(map[string]any, len(val))
		for k, v := range val {
			keys = append(keys, k)
			values[k] = v
		}
		sort.Strings(keys)
		return frozen.NewMap(keys, values)
	case *container.Set:
		return frozen.NewSet(val.Items())
	case *container.OrderedMap:
		values := make(map[string]any, val.Len())
		val.Each(func(k string, v any) bool {
			values[k] = v
			return true
		})
		return frozen.NewMap(val.Keys(), values)
	default:
		return r
	}
}

// setOrShare stores copied into dst when type-compatible, falling back to
// sharing the original child (e.g. a frozen or record-shaped copy cannot
// live in a typed slot).
func setOrShare(dst reflect.Value, copied any, original reflect.Value) {
	if copied == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return
	}
	cv := reflect.ValueOf(copied)
	if cv.Type().AssignableTo(dst.Type()) {
		dst.Set(cv)
		return
	}
	dst.Set(original)
}

// typeNameOf returns a readable dynamic type name, without pointer markers.
func typeNameOf(v any) string {
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

// kindOf is a coarse label used for hooks.
func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "nil"
	case time.Time, *time.Time:
		return "date"
	case *regexp.Regexp:
		return "regexp"
	case *container.OrderedMap, *frozen.Map:
		return "map"
	case *container.Set, *frozen.Set:
		return "set"
	case *frozen.List:
		return "list"
	case *frozen.Record:
		return "record"
	default:
		return reflect.ValueOf(v).Kind().String()
	}
}
