// Package graphql models GraphQL query requests as ordered trees of
// arguments and field selections, and renders them to query text.
package graphql

// EnumValue is rendered bare (unquoted) in query text, e.g. `asc` or `name`.
type EnumValue string

// Arg is a single key/value pair of an argument list or input object.
type Arg struct {
	Key   string
	Value any
}

// Args is an ordered argument list. It doubles as a GraphQL input object
// when nested as a value. Order is preserved on render, which matters for
// multi-key order_by objects.
type Args []Arg

// Get returns the value stored under key.
func (a Args) Get(key string) (any, bool) {
	for _, arg := range a {
		if arg.Key == key {
			return arg.Value, true
		}
	}
	return nil, false
}

// Has reports whether key is present.
func (a Args) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// Object returns the nested input object stored under key, or nil.
func (a Args) Object(key string) Args {
	v, ok := a.Get(key)
	if !ok {
		return nil
	}
	obj, _ := v.(Args)
	return obj
}

// Compact returns a copy of a with nil values removed. Nested objects are
// compacted recursively and dropped when nothing is left in them, so an
// unset filter never reaches the rendered query.
func (a Args) Compact() Args {
	var out Args
	for _, arg := range a {
		switch v := arg.Value.(type) {
		case nil:
			continue
		case Args:
			nested := v.Compact()
			if len(nested) == 0 {
				continue
			}
			out = append(out, Arg{Key: arg.Key, Value: nested})
		default:
			out = append(out, arg)
		}
	}
	return out
}

// Opt converts an optional scalar into a value for Args. A nil pointer
// becomes an untyped nil, which Compact removes.
func Opt[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

// Selection is a field in the selection set, with optional arguments and
// sub-fields.
type Selection struct {
	Name   string
	Args   Args
	Fields []Selection
}

// Field builds a selection with the given sub-fields.
func Field(name string, fields ...Selection) Selection {
	return Selection{Name: name, Fields: fields}
}

// Fields builds leaf selections for each name.
func Fields(names ...string) []Selection {
	out := make([]Selection, 0, len(names))
	for _, n := range names {
		out = append(out, Selection{Name: n})
	}
	return out
}

// WithArgs returns a copy of s carrying args.
func (s Selection) WithArgs(args Args) Selection {
	s.Args = args
	return s
}

// Request is a complete query operation with a single root field.
type Request struct {
	Root Selection
}

// Entity is the name of the root field being queried, e.g. "flow".
func (r Request) Entity() string {
	return r.Root.Name
}

// Where returns the predicate tree, or nil when no filter is applied.
func (r Request) Where() Args {
	return r.Root.Args.Object("where")
}

// OrderBy returns the ordering object.
func (r Request) OrderBy() Args {
	return r.Root.Args.Object("order_by")
}
