package render

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unsafe"

	"github.com/arthur-debert/insightdump/pkg/markup"
)

// Inspectable is implemented by values that choose which fields a dump
// shows. Records that do not implement it are enumerated by reflection.
type Inspectable interface {
	InspectFields() []Field
}

// Field is one named attribute of an Inspectable record. Value is called
// lazily; a panic inside it renders the field as empty.
type Field struct {
	Name   string
	Static bool
	Value  func() any
}

const staticPrefix = "static "

// Registry records the identities of records already rendered in a pass.
// Ids are assigned sequentially from 1. A Registry is not safe for
// concurrent use.
type Registry struct {
	ids   map[identity]int
	names []string
}

type identity struct {
	addr uintptr
	typ  reflect.Type
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{ids: make(map[identity]int)}
}

// Len returns the number of ids handed out
func (r *Registry) Len() int {
	return len(r.names)
}

// Lookup returns the display name registered under id
func (r *Registry) Lookup(id int) (string, bool) {
	if id < 1 || id > len(r.names) {
		return "", false
	}
	return r.names[id-1], true
}

// visit returns the id of the record. seen is true when a stable identity
// was already registered; records without one always get a fresh id.
func (r *Registry) visit(key identity, stable bool, name string) (id int, seen bool) {
	if stable {
		if id, ok := r.ids[key]; ok {
			return id, true
		}
	}
	r.names = append(r.names, name)
	id = len(r.names)
	if stable {
		r.ids[key] = id
	}
	return id, false
}

type fieldValue struct {
	name   string
	static bool
	value  reflect.Value
	failed bool
}

func (s *state) record(v reflect.Value, indentLevel, depth int) string {
	name := displayName(v.Type())
	key, stable := recordIdentity(v)

	id, seen := s.visited.visit(key, stable, name)
	if seen {
		return s.backReference(name, id)
	}

	fields := s.fields(v)
	if len(fields) == 0 {
		return markup.Wrap(ClassObject, s.text(name)) + "::class"
	}

	indent := s.indent(indentLevel)
	inner := s.indent(indentLevel + 1)

	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		prefix := ""
		if f.static {
			prefix = staticPrefix
		}
		value := ""
		if !f.failed {
			value = s.render(f.value, indentLevel+1, depth+1, false)
		}
		lines = append(lines, fmt.Sprintf("%s%s%s: %s,", inner, prefix, markup.Wrap(ClassObjectKey, s.text(f.name)), value))
	}
	last := len(lines) - 1
	lines[last] = strings.TrimSuffix(lines[last], ",")

	var b strings.Builder
	b.WriteString(s.backReference(name, id))
	b.WriteString(" {\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")
	b.WriteString(indent)
	b.WriteString("}")
	return b.String()
}

func (s *state) backReference(name string, id int) string {
	return markup.Wrap(ClassObject, s.text(name)) + " " + markup.Wrap(ClassObjectID, "#"+strconv.Itoa(id))
}

// recordIdentity keys pointers by their target and addressable structs by
// their address. Zero-sized types share addresses, so they are never stable.
func recordIdentity(v reflect.Value) (identity, bool) {
	switch {
	case v.Kind() == reflect.Pointer:
		t := v.Type().Elem()
		return identity{addr: v.Pointer(), typ: t}, t.Size() > 0
	case v.Kind() == reflect.Struct && v.CanAddr():
		return identity{addr: v.UnsafeAddr(), typ: v.Type()}, v.Type().Size() > 0
	}
	return identity{}, false
}

// fields enumerates the attributes of a record in declaration order
func (s *state) fields(v reflect.Value) []fieldValue {
	if in, ok := inspectable(v); ok {
		return s.inspectFields(in)
	}

	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	v = addressable(v)

	t := v.Type()
	fields := make([]fieldValue, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		fields = append(fields, fieldValue{
			name:  t.Field(i).Name,
			value: readable(v.Field(i)),
		})
	}
	return fields
}

func inspectable(v reflect.Value) (Inspectable, bool) {
	if v.CanInterface() {
		if in, ok := v.Interface().(Inspectable); ok {
			return in, true
		}
	}
	if v.Kind() != reflect.Pointer && v.CanAddr() && v.Addr().CanInterface() {
		if in, ok := v.Addr().Interface().(Inspectable); ok {
			return in, true
		}
	}
	return nil, false
}

func (s *state) inspectFields(in Inspectable) []fieldValue {
	declared := in.InspectFields()
	fields := make([]fieldValue, 0, len(declared))
	for _, f := range declared {
		value, ok := s.readField(f)
		fields = append(fields, fieldValue{
			name:   f.Name,
			static: f.Static,
			value:  reflect.ValueOf(value),
			failed: !ok,
		})
	}
	return fields
}

func (s *state) readField(f Field) (value any, ok bool) {
	if f.Value == nil {
		return nil, true
	}
	defer func() {
		if r := recover(); r != nil {
			s.engine.log().Debug().
				Str("field", f.Name).
				Interface("panic", r).
				Msg("Field read failed")
			value, ok = nil, false
		}
	}()
	return f.Value(), true
}

// addressable returns v itself when it can be addressed, otherwise an
// addressable copy, so unexported fields can be read through their address.
func addressable(v reflect.Value) reflect.Value {
	if v.CanAddr() {
		return v
	}
	c := reflect.New(v.Type()).Elem()
	c.Set(v)
	return c
}

// readable lifts the read-only flag set on values reached through
// unexported fields.
func readable(f reflect.Value) reflect.Value {
	if f.CanInterface() || !f.CanAddr() {
		return f
	}
	return reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem()
}
