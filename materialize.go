package jsonstream

// ToStandardTypes recursively materialises a lazy value into plain Go
// types (map[string]any, []any, string, Number, bool, nil), the same
// operation original_source/src/json_stream/dump/__init__.py calls
// "to_standard_types" — the escape hatch for code that wants the
// lazy tree to stop being lazy and behave like encoding/json's Unmarshal
// output instead. StringReader values (only possible when the tree was
// built with WithStringsAsStreams) are drained in full.
func ToStandardTypes(v any) any {
	switch c := v.(type) {
	case Object:
		m := make(map[string]any, c.Len())
		for k, child := range c.Items() {
			m[k] = ToStandardTypes(child)
		}
		return m
	case Array:
		s := make([]any, 0, c.Len())
		for _, child := range c.Iterate() {
			s = append(s, ToStandardTypes(child))
		}
		return s
	case *StringReader:
		str, err := c.ReadAll()
		if err != nil {
			return ""
		}
		return str
	default:
		return v
	}
}
