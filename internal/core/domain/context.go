package domain

import "sort"

// Well-known context keys. Templates reference these like any other field.
const (
	// KeyURL is the context key holding the page's destination URL.
	KeyURL = "url"
	// KeyBody is the context key holding the page's rendered body.
	KeyBody = "body"
	// KeyPath is the context key holding the page's source path.
	KeyPath = "path"
)

// Context is the set of key-value pairs a template is instantiated with.
// Keys are template field names, values are the strings substituted for them.
type Context map[string]string

// Union merges two contexts into a new one. When both define the same key,
// the value from primary wins. Every combination of pages in the system
// funnels through this single merge rule.
func Union(primary, secondary Context) Context {
	merged := make(Context, len(primary)+len(secondary))
	for k, v := range secondary {
		merged[k] = v
	}
	for k, v := range primary {
		merged[k] = v
	}
	return merged
}

// Keys returns the context's keys in sorted order for deterministic iteration.
func (c Context) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a shallow copy of the context.
func (c Context) Clone() Context {
	clone := make(Context, len(c))
	for k, v := range c {
		clone[k] = v
	}
	return clone
}
