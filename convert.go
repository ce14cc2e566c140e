package keycase

import "reflect"

// KeyFunc rewrites a single map key. It receives every key of every map,
// including non-string ones, and must return the key to use in the output
// map. [ToSnakeCase] and [ToCamelCase] are the stock implementations.
type KeyFunc func(key any) any

// SnakeKeys converts all map keys in v to snake_case. See [ConvertKeys].
func SnakeKeys(v any) any {
	return ConvertKeys(v, ToSnakeCase)
}

// CamelKeys converts all map keys in v to camelCase. See [ConvertKeys].
func CamelKeys(v any) any {
	return ConvertKeys(v, ToCamelCase)
}

// ConvertKeys returns a copy of v with every map key, at every depth,
// rewritten by fn. The input is never mutated.
//
// Maps produce new maps of the same Go type and size; slices and arrays
// produce new ones of the same length with each element converted. Struct
// values (and pointers to them) are records, not plain mappings: they are
// returned unchanged in their entirety, field names included, which keeps
// time.Time, multipart.FileHeader, and any other opaque composite intact
// wherever it is nested. []byte is raw payload and also passes through.
// Everything else — strings, numbers, nil, whatever — is returned as-is,
// so ConvertKeys never fails regardless of input shape.
//
// Only keys whose dynamic type is string or [Symbol] are rewritten; other
// key types (ints, named string types) are kept. If fn maps two distinct
// keys of a map to the same result, the entry processed last silently wins;
// with Go's map iteration order the winner is unspecified. Recursion depth
// equals the nesting depth of the input.
func ConvertKeys(v any, fn KeyFunc) any {
	switch t := v.(type) {
	case map[string]any:
		if t == nil {
			return t
		}
		out := make(map[string]any, len(t))
		for k, val := range t {
			if conv, ok := fn(k).(string); ok {
				k = conv
			}
			out[k] = ConvertKeys(val, fn)
		}
		return out
	case []any:
		if t == nil {
			return t
		}
		out := make([]any, len(t))
		for i := range t {
			out[i] = ConvertKeys(t[i], fn)
		}
		return out
	case []byte, string, Symbol, nil:
		return v
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return v
		}
		return convertMap(rv, fn).Interface()
	case reflect.Slice:
		if rv.IsNil() || rv.Type().Elem().Kind() == reflect.Uint8 {
			return v
		}
		return convertSlice(rv, fn).Interface()
	case reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return v
		}
		return convertArray(rv, fn).Interface()
	default:
		// Structs, pointers, scalars, channels, funcs: opaque, unchanged.
		return v
	}
}

func convertMap(rv reflect.Value, fn KeyFunc) reflect.Value {
	out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
	keyType := rv.Type().Key()
	iter := rv.MapRange()
	for iter.Next() {
		key := iter.Key()
		switch key.Interface().(type) {
		case string, Symbol:
			conv := reflect.ValueOf(fn(key.Interface()))
			if conv.IsValid() && conv.Type().AssignableTo(keyType) {
				key = conv
			}
		}
		out.SetMapIndex(key, convertValue(iter.Value(), fn))
	}
	return out
}

func convertSlice(rv reflect.Value, fn KeyFunc) reflect.Value {
	out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out.Index(i).Set(convertValue(rv.Index(i), fn))
	}
	return out
}

func convertArray(rv reflect.Value, fn KeyFunc) reflect.Value {
	out := reflect.New(rv.Type()).Elem()
	for i := 0; i < rv.Len(); i++ {
		out.Index(i).Set(convertValue(rv.Index(i), fn))
	}
	return out
}

// convertValue converts a single container element, keeping the result
// assignable to the element's static type. Conversion preserves concrete
// types, so the assignability check only rejects untyped nils.
func convertValue(val reflect.Value, fn KeyFunc) reflect.Value {
	conv := reflect.ValueOf(ConvertKeys(val.Interface(), fn))
	if conv.IsValid() && conv.Type().AssignableTo(val.Type()) {
		return conv
	}
	return val
}
