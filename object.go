package jsonstream

import "iter"

// Object is the lazy view of a JSON object. Persistent objects (opted into
// via WithPersistent(true) at the point this object is created, which in
// practice means the whole tree or nothing — see Load/LoadMany) retain
// every element they've yielded so Get and the iterators may be called
// repeatedly and in any order; transient objects (the default) forget an
// element the moment it's passed over, matching spec.md §4.4.
type Object interface {
	// Get returns the value for key. On a transient Object this advances
	// the stream past every pair up to and including key; requesting a key
	// already passed returns an ErrStreamAlreadyPassed error.
	Get(key string) (any, error)
	// GetDefault is Get without the "missing key" error case.
	GetDefault(key string, def any) any
	// Len is only meaningful once the object has been fully consumed; for
	// a persistent object mid-stream it reports how many pairs have been
	// retained so far, not the final count.
	Len() int
	Keys() iter.Seq[string]
	Values() iter.Seq[any]
	Items() iter.Seq2[string, any]
	Persistent() bool
}

type object struct {
	base
	retained *orderedMap
	opened   bool // loadPair has been called at least once (caller already consumed the leading '{')
	done     bool // closing '}' consumed
}

func newObject(tok *Tokenizer, persistent bool) *object {
	return &object{base: newBase(tok, persistent), retained: newOrderedMap()}
}

func (o *object) Persistent() bool { return o.persistent }

func (o *object) Len() int { return o.retained.len() }

// loadPair reads the next key/value pair from the stream. The caller already
// consumed the leading '{' to decide an Object was being built in the first
// place, so loadPair's first call treats the token it just read as the
// first key (or the closing '}'); later calls expect a ',' separator. done
// is true once the closing '}' has been consumed, in which case key/value
// are zero.
func (o *object) loadPair() (key string, value any, done bool, err error) {
	if err := o.driveChild(); err != nil {
		return "", nil, false, err
	}
	if o.done {
		return "", nil, true, nil
	}

	t, err := nextNonEOF(o.tok, ErrUnterminatedObject)
	if err != nil {
		return "", nil, false, err
	}

	switch {
	case !o.opened:
		o.opened = true
	case t.Kind == TokenOperator && t.Op == ',':
		t, err = nextNonEOF(o.tok, ErrUnterminatedObject)
		if err != nil {
			return "", nil, false, err
		}
	case !(t.Kind == TokenOperator && t.Op == '}'):
		return "", nil, false, newError(ErrMalformedJSON, t.Index, "expected ',' or '}' in object")
	}

	if t.Kind == TokenOperator && t.Op == '}' {
		o.done = true
		return "", nil, true, nil
	}
	if t.Kind != TokenString {
		return "", nil, false, newError(ErrMalformedJSON, t.Index, "expected a string key in object, got something else")
	}
	key = t.Str

	colon, err := nextNonEOF(o.tok, ErrUnterminatedObject)
	if err != nil {
		return "", nil, false, err
	}
	if colon.Kind != TokenOperator || colon.Op != ':' {
		return "", nil, false, newError(ErrMalformedJSON, colon.Index, "expected ':' after object key %q", key)
	}

	value, err = o.readValue()
	if err != nil {
		return "", nil, false, err
	}
	return key, value, false, nil
}

// readValue reads the single value token or container that begins at the
// tokenizer's current position, recording any freshly-opened container as
// this object's open child.
func (o *object) readValue() (any, error) {
	t, err := nextNonEOF(o.tok, ErrUnterminatedObject)
	if err != nil {
		return nil, err
	}
	if t.Kind == TokenOperator && (t.Op == '{' || t.Op == '[') {
		v, c := newChildContainer(o.tok, t.Op, o.childrenPersistent)
		o.child = c
		return v, nil
	}
	return tokenValue(t), nil
}

// drain discards the rest of this object's pairs without retaining them,
// used when a parent moves past this object without the caller fully
// consuming it (spec.md §3 invariant: only the deepest active container
// may advance the cursor).
func (o *object) drain() error {
	for {
		_, v, done, err := o.loadPair()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		if c, ok := v.(container); ok {
			o.child = c
		}
		if err := o.driveChild(); err != nil {
			return err
		}
	}
}

func (o *object) Get(key string) (any, error) {
	v, ok, err := o.get(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, newError(ErrMissingKey, -1, "no such key: %q", key)
	}
	return v, nil
}

func (o *object) GetDefault(key string, def any) any {
	v, ok, err := o.get(key)
	if err != nil || !ok {
		return def
	}
	return v
}

func (o *object) get(key string) (any, bool, error) {
	if v, ok := o.retained.get(key); ok {
		return v, true, nil
	}
	if !o.persistent && o.passed(key) {
		return nil, false, newError(ErrStreamAlreadyPassed, -1, "key %q has already been passed in this transient stream", key)
	}
	o.markStarted()
	for {
		k, v, done, err := o.loadPair()
		if err != nil {
			return nil, false, err
		}
		if done {
			return nil, false, nil
		}
		if o.persistent {
			o.retained.set(k, v)
		}
		if k == key {
			if !o.persistent {
				o.notePassed(k)
			}
			return v, true, nil
		}
		if !o.persistent {
			o.notePassed(k)
			if c, ok := v.(container); ok {
				o.child = c
			}
			if err := o.driveChild(); err != nil {
				return nil, false, err
			}
		}
	}
}

// passedKeys/notePassed/passed implement the transient "already passed"
// bookkeeping: a small set is enough since transient objects never retain
// values, only the fact that a key went by.
func (o *object) passed(key string) bool {
	_, ok := o.retained.get(passedSentinel + key)
	return ok
}

func (o *object) notePassed(key string) {
	o.retained.set(passedSentinel+key, struct{}{})
}

// passedSentinel prefixes bookkeeping entries in the same orderedMap used
// for persistent retention, so transient objects don't need a second map.
// No real JSON key can collide with it.
const passedSentinel = "\x00passed\x00"

func (o *object) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for k := range o.Items() {
			if !yield(k) {
				return
			}
		}
	}
}

func (o *object) Values() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, v := range o.Items() {
			if !yield(v) {
				return
			}
		}
	}
}

func (o *object) Items() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if err := o.beginIteration(); err != nil {
			return
		}
		if o.persistent {
			i := 0
			for i < o.retained.len() {
				k, v := o.retained.at(i)
				if isSentinelKey(k) {
					i++
					continue
				}
				if !yield(k, v) {
					return
				}
				i++
			}
		}
		for {
			k, v, done, err := o.loadPair()
			if err != nil || done {
				return
			}
			if o.persistent {
				o.retained.set(k, v)
			} else if c, ok := v.(container); ok {
				o.child = c
			}
			if !yield(k, v) {
				if !o.persistent {
					o.driveChild()
				}
				return
			}
			if !o.persistent {
				if err := o.driveChild(); err != nil {
					return
				}
			}
		}
	}
}

func isSentinelKey(k string) bool {
	return len(k) >= len(passedSentinel) && k[:len(passedSentinel)] == passedSentinel
}
