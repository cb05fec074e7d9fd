package jsonstream

// orderedMap is an append-only, insertion-ordered string-keyed map used as
// the retained buffer for persistent objects (spec.md §3: "an ordered map
// for objects"). It only ever grows: persistent containers never forget an
// element once retained.
type orderedMap struct {
	keys []string
	vals map[string]any
}

func newOrderedMap() *orderedMap {
	return &orderedMap{vals: make(map[string]any)}
}

func (o *orderedMap) set(k string, v any) {
	if _, exists := o.vals[k]; !exists {
		o.keys = append(o.keys, k)
	}
	o.vals[k] = v
}

func (o *orderedMap) get(k string) (any, bool) {
	v, ok := o.vals[k]
	return v, ok
}

func (o *orderedMap) len() int { return len(o.keys) }

func (o *orderedMap) at(i int) (string, any) {
	k := o.keys[i]
	return k, o.vals[k]
}
