package jsonstream

// Visitor is called once per scalar value and once per empty Object/Array
// encountered during Visit, in document order, with the Path at which it
// occurred. A non-empty container is never passed to fn itself — it is
// represented by the calls made for its descendants. Returning an error
// aborts the traversal.
type Visitor func(value any, path Path) error

// Visit walks v depth-first, calling fn for every scalar and for every
// Object/Array found to have no children, matching the recursion in
// original_source/src/json_stream/visitor.py: a non-empty container is
// never itself handed to fn, only its descendants are. Visit consumes v
// as it walks: after it returns, nothing further can be read from a
// transient tree, and a persistent one is left fully retained.
func Visit(v any, fn Visitor) error {
	return visit(v, Path{}, fn)
}

func visit(v any, path Path, fn Visitor) error {
	switch c := v.(type) {
	case Object:
		empty := true
		for k, child := range c.Items() {
			empty = false
			if err := visit(child, path.append(k), fn); err != nil {
				return err
			}
		}
		if empty {
			return fn(v, path)
		}
		return nil
	case Array:
		empty := true
		for i, child := range c.Iterate() {
			empty = false
			if err := visit(child, path.append(i), fn); err != nil {
				return err
			}
		}
		if empty {
			return fn(v, path)
		}
		return nil
	default:
		return fn(v, path)
	}
}
