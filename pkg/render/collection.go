package render

import (
	"cmp"
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/arthur-debert/insightdump/pkg/markup"
)

// Iterable is implemented by containers that enumerate their own entries.
// Entries are rendered in the order All yields them, with record-style keys.
type Iterable interface {
	All() iter.Seq2[any, any]
}

// Sized is implemented by Iterable values that know their entry count
// without being enumerated.
type Sized interface {
	Len() int
}

type entry struct {
	key   reflect.Value
	value reflect.Value
}

// addressable returns a pointer to v, copying v first when it is held in a
// spot that cannot be addressed (a map value or an interface)
func addressable(v reflect.Value) reflect.Value {
	if v.CanAddr() {
		return v.Addr()
	}
	p := reflect.New(v.Type())
	p.Elem().Set(v)
	return p
}

func (s *state) iterable(v reflect.Value, indentLevel, depth int) string {
	it, ok := v.Interface().(Iterable)
	if !ok {
		it, ok = addressable(v).Interface().(Iterable)
	}
	if !ok {
		return ""
	}

	name := displayName(v.Type())
	count := -1
	if sized, ok := it.(Sized); ok {
		count = sized.Len()
		if count == 0 {
			return s.emptyCollection(name, depth)
		}
	}

	var entries []entry
	for k, val := range it.All() {
		entries = append(entries, entry{key: reflect.ValueOf(k), value: reflect.ValueOf(val)})
	}
	if count < 0 {
		count = len(entries)
	}
	if count == 0 || len(entries) == 0 {
		return s.emptyCollection(name, depth)
	}

	return s.entries(name, count, entries, true, indentLevel, depth)
}

func (s *state) collection(v reflect.Value, indentLevel, depth int) string {
	name := collectionName(v.Type())
	count := v.Len()
	if count == 0 {
		return s.emptyCollection(name, depth)
	}

	entries := make([]entry, 0, count)
	switch v.Kind() {
	case reflect.Map:
		keys := v.MapKeys()
		sortKeys(keys)
		for _, k := range keys {
			entries = append(entries, entry{key: k, value: v.MapIndex(k)})
		}
	default:
		for i := 0; i < count; i++ {
			entries = append(entries, entry{key: reflect.ValueOf(i), value: v.Index(i)})
		}
	}

	return s.entries(name, count, entries, false, indentLevel, depth)
}

func collectionName(t reflect.Type) string {
	if t.Name() != "" {
		return t.String()
	}
	switch t.Kind() {
	case reflect.Map:
		return "map"
	case reflect.Array:
		return "array"
	default:
		return "slice"
	}
}

func collectionState(depth int) string {
	if depth <= 1 {
		return StateOpened
	}
	return StateClosed
}

func (s *state) collectionHeader(name string, count, depth int) string {
	class := ClassType + " " + collectionState(depth) + " " + ClassToggle
	return markup.Wrap(class, fmt.Sprintf("%s(%d):", s.text(name), count))
}

func (s *state) emptyCollection(name string, depth int) string {
	return s.collectionHeader(name, 0, depth) + " [ ]"
}

// entries renders the body of a collection. keyed selects the record-like
// key style and separator used for Iterable containers.
func (s *state) entries(name string, count int, entries []entry, keyed bool, indentLevel, depth int) string {
	indent := s.indent(indentLevel)
	inner := s.indent(indentLevel + 1)

	sep := " => "
	if keyed {
		sep = ": "
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		value := s.render(e.value, indentLevel+1, depth+1, true)
		lines = append(lines, inner+s.key(e.key, keyed)+sep+value+",")
	}
	last := len(lines) - 1
	lines[last] = strings.TrimSuffix(lines[last], ",")

	var b strings.Builder
	b.WriteString(s.collectionHeader(name, count, depth))
	b.WriteString(" [")
	b.WriteString(markup.OpenTag(ClassArrayContent+"-"+collectionState(depth), "\n"))
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")
	b.WriteString(markup.CloseTag(indent))
	b.WriteString("]")
	return b.String()
}

func (s *state) key(k reflect.Value, keyed bool) string {
	for k.IsValid() && k.Kind() == reflect.Interface && !k.IsNil() {
		k = k.Elem()
	}

	if k.IsValid() && k.Kind() == reflect.String {
		if keyed {
			return markup.Wrap(ClassObjectKey, s.text(k.String()))
		}
		return "'" + markup.Wrap(ClassString, s.text(k.String())) + "'"
	}
	return markup.Wrap(ClassArrayKey, s.text(keyLiteral(k)))
}

func keyLiteral(k reflect.Value) string {
	if !k.IsValid() {
		return "null"
	}
	switch {
	case k.Kind() == reflect.Bool:
		return strconv.FormatBool(k.Bool())
	case isNumberKind(k.Kind()):
		return formatNumber(k)
	case k.CanInterface():
		return fmt.Sprint(k.Interface())
	}
	return k.Type().String()
}

// key ranks used to order map keys of mixed dynamic types
const (
	rankNil = iota
	rankBool
	rankNumber
	rankString
	rankOther
)

func keyRank(k reflect.Value) int {
	if !k.IsValid() {
		return rankNil
	}
	switch k.Kind() {
	case reflect.Bool:
		return rankBool
	case reflect.String:
		return rankString
	case reflect.Complex64, reflect.Complex128:
		return rankOther
	}
	if isNumberKind(k.Kind()) {
		return rankNumber
	}
	return rankOther
}

// sortKeys orders map keys deterministically: numbers numerically, strings
// lexically, false before true, anything else by type then printed form.
func sortKeys(keys []reflect.Value) {
	for i, k := range keys {
		for k.Kind() == reflect.Interface && !k.IsNil() {
			k = k.Elem()
		}
		keys[i] = k
	}
	slices.SortStableFunc(keys, compareKeys)
}

func compareKeys(a, b reflect.Value) int {
	ra, rb := keyRank(a), keyRank(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}

	switch ra {
	case rankBool:
		return compareBools(a.Bool(), b.Bool())
	case rankNumber:
		return compareNumbers(a, b)
	case rankString:
		return cmp.Compare(a.String(), b.String())
	case rankOther:
		if c := cmp.Compare(a.Type().String(), b.Type().String()); c != 0 {
			return c
		}
		return cmp.Compare(keyLiteral(a), keyLiteral(b))
	}
	return 0
}

func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func compareNumbers(a, b reflect.Value) int {
	ka, kb := numberClass(a.Kind()), numberClass(b.Kind())
	if ka == kb {
		switch ka {
		case reflect.Int:
			return cmp.Compare(a.Int(), b.Int())
		case reflect.Uint:
			return cmp.Compare(a.Uint(), b.Uint())
		}
	}
	return cmp.Compare(asFloat(a), asFloat(b))
}

func numberClass(k reflect.Kind) reflect.Kind {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return reflect.Int
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return reflect.Uint
	}
	return reflect.Float64
}

func asFloat(v reflect.Value) float64 {
	switch numberClass(v.Kind()) {
	case reflect.Int:
		return float64(v.Int())
	case reflect.Uint:
		return float64(v.Uint())
	}
	return v.Float()
}
