package domain

import "context"

// Value is a context field value that is either available immediately or
// computed when the page is built. Deferred values run once per build; a
// page that is built twice computes them twice.
type Value struct {
	literal string
	fn      func(ctx context.Context) (string, error)
}

// Literal creates a Value that is available without any computation.
func Literal(s string) Value {
	return Value{literal: s}
}

// Deferred creates a Value computed at build time.
func Deferred(fn func(ctx context.Context) (string, error)) Value {
	return Value{fn: fn}
}

// Resolve produces the string for this value, invoking the deferred
// computation if there is one.
func (v Value) Resolve(ctx context.Context) (string, error) {
	if v.fn == nil {
		return v.literal, nil
	}
	return v.fn(ctx)
}

// Field is a named value in a page's field list. Field lists are ordered;
// when two fields share a key, the later one wins once the list is resolved
// into a Context.
type Field struct {
	Key   string
	Value Value
}

// ResolveFields resolves an ordered field list into a Context. A failure in
// any single value fails the whole resolution.
func ResolveFields(ctx context.Context, fields []Field) (Context, error) {
	resolved := make(Context, len(fields))
	for _, f := range fields {
		v, err := f.Value.Resolve(ctx)
		if err != nil {
			return nil, err
		}
		resolved[f.Key] = v
	}
	return resolved, nil
}
