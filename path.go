package jsonstream

import "strconv"

// Path is an ordered sequence of object keys and array indices from the
// document root to a value observed by Visit. The root has the empty path.
// Each segment is either a string (object key) or an int (array index).
type Path []any

// String renders the path the way a jq-style selector would: ".a[0].b".
func (p Path) String() string {
	var b []byte
	for _, seg := range p {
		switch v := seg.(type) {
		case string:
			b = append(b, '.')
			b = append(b, v...)
		case int:
			b = append(b, '[')
			b = strconv.AppendInt(b, int64(v), 10)
			b = append(b, ']')
		}
	}
	if len(b) == 0 {
		return "."
	}
	return string(b)
}

// append returns a new Path with seg appended, never aliasing p's backing
// array so sibling calls (e.g. two children of the same object) can't
// stomp on each other's path slice.
func (p Path) append(seg any) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = seg
	return out
}
