package render_test

import (
	"testing"

	"github.com/arthur-debert/insightdump/pkg/render"
	"github.com/stretchr/testify/assert"
)

func TestOrderedMap(t *testing.T) {
	m := render.NewOrderedMap(0)
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set(3, "three")
	m.Set("b", 10)

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []any{"b", "a", 3}, m.Keys())

	v, ok := m.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 10, v)

	assert.True(t, m.Delete("a"))
	assert.False(t, m.Delete("missing"))
	assert.Equal(t, []any{"b", 3}, m.Keys())

	var keys []any
	for k := range m.All() {
		keys = append(keys, k)
		break
	}
	assert.Equal(t, []any{"b"}, keys)
}

func TestOrderedMapZeroValue(t *testing.T) {
	var m render.OrderedMap
	_, ok := m.Get("x")
	assert.False(t, ok)

	m.Set("x", 1)
	assert.Equal(t, 1, m.Len())
}

func TestRegistryLookup(t *testing.T) {
	reg := render.NewRegistry()
	_, ok := reg.Lookup(1)
	assert.False(t, ok)

	newEngine().RenderWith([]any{&point{}, empty{}}, 0, 0, reg)
	assert.Equal(t, 2, reg.Len())

	name, ok := reg.Lookup(2)
	assert.True(t, ok)
	assert.Equal(t, "render_test.empty", name)
}
