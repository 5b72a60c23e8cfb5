package template

import (
	"sort"
	"strings"
)

// Fields are the required substitution inputs every render receives. Image is
// a path or URL string and is not decoded or validated here.
type Fields struct {
	Title string
	Text  string
	Image string
}

// Context is an ordered substitution mapping. Set overwrites an existing
// value without disturbing first-insertion order, which preserves the
// required-then-extension overlay semantics: later writers win on collision.
type Context struct {
	keys   []string
	values map[string]string
}

// NewContext returns an empty substitution context.
func NewContext() *Context {
	return &Context{values: make(map[string]string)}
}

// Set binds key to value, overwriting any earlier binding.
func (c *Context) Set(key, value string) {
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
}

// SetDefault binds key to value only when the key is not already bound.
func (c *Context) SetDefault(key, value string) {
	if _, ok := c.values[key]; ok {
		return
	}
	c.Set(key, value)
}

// Get returns the bound value for key.
func (c *Context) Get(key string) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Keys returns the bound keys in insertion order.
func (c *Context) Keys() []string {
	return append([]string(nil), c.keys...)
}

// Len reports the number of bound keys.
func (c *Context) Len() int {
	return len(c.keys)
}

// BuildContext assembles the substitution context: required fields first,
// then extension fields overlaid in sorted key order. Extension values win on
// collision, so a caller may deliberately override a required field. The
// title value feeds both the "title" and "topic" placeholders since templates
// exist against either name.
func BuildContext(required Fields, ext map[string]string) *Context {
	ctx := NewContext()
	ctx.Set("topic", required.Title)
	ctx.Set("title", required.Title)
	ctx.Set("text", required.Text)
	ctx.Set("image", required.Image)

	extKeys := make([]string, 0, len(ext))
	for key := range ext {
		extKeys = append(extKeys, key)
	}
	sort.Strings(extKeys)
	for _, key := range extKeys {
		ctx.Set(key, ext[key])
	}
	return ctx
}

// Substitute replaces every {{key}} token whose key is bound in the context
// with its plain string value. Replacement is literal: no nested expansion,
// no escaping, no HTML encoding. Tokens whose key is absent from the context
// stay verbatim in the output and are allowed to reach the rendering backend;
// templates rely on that to surface raw tokens for debugging.
func Substitute(source string, ctx *Context) string {
	out := source
	for _, key := range ctx.Keys() {
		value, _ := ctx.Get(key)
		out = strings.ReplaceAll(out, "{{"+key+"}}", value)
	}
	return out
}
