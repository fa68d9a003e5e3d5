package render

import (
	"net"
	"os"
	"reflect"
	"time"
)

// Category is the rendering category a value falls into
type Category int

// Categories in dispatch priority order. CategoryIterable is an explicit
// container protocol and wins over the generic record and collection rules.
const (
	CategoryOpaque Category = iota
	CategoryNull
	CategoryTemporal
	CategoryText
	CategoryBoolean
	CategoryNumber
	CategoryHandle
	CategoryIterable
	CategoryRecord
	CategoryCollection
)

// String returns the string representation of the category
func (c Category) String() string {
	switch c {
	case CategoryNull:
		return "null"
	case CategoryTemporal:
		return "temporal"
	case CategoryText:
		return "text"
	case CategoryBoolean:
		return "boolean"
	case CategoryNumber:
		return "number"
	case CategoryHandle:
		return "handle"
	case CategoryIterable:
		return "iterable"
	case CategoryRecord:
		return "record"
	case CategoryCollection:
		return "collection"
	default:
		return "opaque"
	}
}

var (
	timeType        = reflect.TypeOf(time.Time{})
	fileType        = reflect.TypeOf((*os.File)(nil))
	connType        = reflect.TypeOf((*net.Conn)(nil)).Elem()
	handleType      = reflect.TypeOf((*Handle)(nil)).Elem()
	iterableType    = reflect.TypeOf((*Iterable)(nil)).Elem()
	inspectableType = reflect.TypeOf((*Inspectable)(nil)).Elem()
)

// Classify reports the category v is rendered as. Pointers and interfaces
// are followed the same way the engine follows them.
func Classify(v any) Category {
	_, category, ok := resolve(reflect.ValueOf(v), DefaultMaxDepth)
	if !ok {
		return CategoryOpaque
	}
	return category
}

// resolve unwraps interfaces and pointers to non-record values, then
// classifies what is left. ok is false when a pointer chain is longer than
// limit.
func resolve(v reflect.Value, limit int) (reflect.Value, Category, bool) {
	for hops := 0; ; hops++ {
		if hops > limit {
			return v, CategoryOpaque, false
		}

		if !v.IsValid() {
			return v, CategoryNull, true
		}

		switch v.Kind() {
		case reflect.Interface:
			if v.IsNil() {
				return v, CategoryNull, true
			}
			v = v.Elem()
			continue
		case reflect.Pointer, reflect.Func, reflect.Chan, reflect.UnsafePointer:
			if v.IsNil() {
				return v, CategoryNull, true
			}
		}

		if category, ok := classifyValue(v); ok {
			return v, category, true
		}

		if v.Kind() == reflect.Pointer {
			v = v.Elem()
			continue
		}

		return v, CategoryOpaque, true
	}
}

// classifyValue applies the dispatch order to a non-nil, non-interface
// value. It returns false for pointers that should be dereferenced first.
func classifyValue(v reflect.Value) (Category, bool) {
	t := v.Type()

	switch {
	case t == timeType:
		return CategoryTemporal, true
	case t.Kind() == reflect.Pointer && t.Elem() == timeType:
		return CategoryOpaque, false
	case v.Kind() == reflect.String:
		return CategoryText, true
	case v.Kind() == reflect.Bool:
		return CategoryBoolean, true
	case isNumberKind(v.Kind()):
		return CategoryNumber, true
	case isHandle(v):
		return CategoryHandle, true
	case t.Implements(iterableType),
		t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(iterableType):
		return CategoryIterable, true
	case isRecord(v):
		return CategoryRecord, true
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return CategoryCollection, true
	case reflect.Pointer:
		return CategoryOpaque, false
	}
	return CategoryOpaque, true
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

func isHandle(v reflect.Value) bool {
	t := v.Type()
	return t.Implements(handleType) ||
		t == fileType ||
		t.Implements(connType) ||
		v.Kind() == reflect.Chan
}

func isRecord(v reflect.Value) bool {
	t := v.Type()
	if t.Implements(inspectableType) {
		return true
	}
	if t.Kind() == reflect.Struct {
		return true
	}
	return t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct
}

// displayName is the type name shown for records and named containers
func displayName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer && t.Name() == "" {
		t = t.Elem()
	}
	if t.Kind() == reflect.Struct && t.Name() == "" {
		return "struct@anonymous"
	}
	return t.String()
}
