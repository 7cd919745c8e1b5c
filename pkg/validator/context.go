package validator

import (
	"maps"
	"slices"
)

// Context is an ordered key-value bag that supplies or overrides validator
// parameters for a single call. A nil *Context reads as empty.
type Context struct {
	keys   []string
	values map[string]any
}

// NewContext returns an empty context.
func NewContext() *Context {
	return &Context{values: make(map[string]any)}
}

// ContextFrom builds a context from a map. Keys are inserted in lexical order
// so the result does not depend on map iteration order.
func ContextFrom(values map[string]any) *Context {
	c := NewContext()
	for _, k := range slices.Sorted(maps.Keys(values)) {
		c.Set(k, values[k])
	}
	return c
}

// Set stores value under key. Re-setting an existing key keeps its position.
func (c *Context) Set(key string, value any) *Context {
	if c.values == nil {
		c.values = make(map[string]any)
	}
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
	return c
}

// Get returns the value under key, or def when the key is absent.
// A key present with a nil value returns nil, not def.
func (c *Context) Get(key string, def any) any {
	if v, ok := c.Lookup(key); ok {
		return v
	}
	return def
}

// Lookup returns the value under key and whether the key is present.
func (c *Context) Lookup(key string) (any, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.values[key]
	return v, ok
}

func (c *Context) Has(key string) bool {
	_, ok := c.Lookup(key)
	return ok
}

// Remove deletes key. Removing an absent key is a no-op.
func (c *Context) Remove(key string) {
	if c == nil {
		return
	}
	if _, ok := c.values[key]; !ok {
		return
	}
	delete(c.values, key)
	c.keys = slices.DeleteFunc(c.keys, func(k string) bool { return k == key })
}

// All returns a copy of the stored values.
func (c *Context) All() map[string]any {
	if c == nil {
		return map[string]any{}
	}
	return maps.Clone(c.values)
}

// Keys returns keys in insertion order.
func (c *Context) Keys() []string {
	if c == nil {
		return nil
	}
	return slices.Clone(c.keys)
}

func (c *Context) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

func (c *Context) Clear() {
	if c == nil {
		return
	}
	c.keys = nil
	c.values = make(map[string]any)
}

// Clone returns an independent copy. Values are copied shallowly.
func (c *Context) Clone() *Context {
	out := NewContext()
	if c == nil {
		return out
	}
	for _, k := range c.keys {
		out.Set(k, c.values[k])
	}
	return out
}

// Merge returns a new context holding c's entries overlaid with other's.
// Neither input is modified.
func (c *Context) Merge(other *Context) *Context {
	out := c.Clone()
	if other == nil {
		return out
	}
	for _, k := range other.keys {
		out.Set(k, other.values[k])
	}
	return out
}
