package cyjs

import (
	"reflect"

	"github.com/matzehuels/cyjs/pkg/graph"
)

// truthy reports whether v counts as set when choosing between an attribute
// value and a fallback. Zero numbers, false, empty strings, and empty
// collections count as unset, exactly like missing keys, whatever their
// concrete or named type. Values of other kinds are always set.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case *graph.Attrs:
		return x.Len() > 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array, reflect.String:
		return rv.Len() > 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return !rv.IsZero()
	}
	return true
}

// lookupOr returns a[key] when it is truthy, otherwise fallback.
func lookupOr(a *graph.Attrs, key string, fallback any) any {
	if v, ok := a.Get(key); ok && truthy(v) {
		return v
	}
	return fallback
}
