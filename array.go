package jsonstream

import "iter"

// Array is the lazy view of a JSON array, with the same persistent/
// transient distinction as Object (spec.md §4.4): persistent arrays retain
// every element so Index and iteration can be repeated; transient arrays
// only move forward, and Index on an index already passed over fails with
// ErrStreamAlreadyPassed.
type Array interface {
	Index(i int) (any, error)
	Len() int
	Iterate() iter.Seq2[int, any]
	Persistent() bool
}

type array struct {
	base
	retained  []any
	opened    bool // loadItem has been called at least once (caller already consumed the leading '[')
	done      bool
	lastIndex int64 // transient only: highest index yielded so far, -1 if none
}

func newArray(tok *Tokenizer, persistent bool) *array {
	return &array{base: newBase(tok, persistent), lastIndex: -1}
}

func (a *array) Persistent() bool { return a.persistent }

func (a *array) Len() int {
	if a.persistent {
		return len(a.retained)
	}
	return int(a.lastIndex + 1)
}

// loadItem reads the next element. The caller already consumed the leading
// '[' to decide an Array was being built in the first place, so loadItem's
// first call treats the token it just read as the first element (or the
// closing ']'); later calls expect a ',' separator. done is true once the
// closing ']' has been consumed.
func (a *array) loadItem() (value any, done bool, err error) {
	if err := a.driveChild(); err != nil {
		return nil, false, err
	}
	if a.done {
		return nil, true, nil
	}

	t, err := nextNonEOF(a.tok, ErrUnterminatedList)
	if err != nil {
		return nil, false, err
	}

	switch {
	case !a.opened:
		a.opened = true
	case t.Kind == TokenOperator && t.Op == ',':
		t, err = nextNonEOF(a.tok, ErrUnterminatedList)
		if err != nil {
			return nil, false, err
		}
	case !(t.Kind == TokenOperator && t.Op == ']'):
		return nil, false, newError(ErrMalformedJSON, t.Index, "expected ',' or ']' in list")
	}

	if t.Kind == TokenOperator && t.Op == ']' {
		a.done = true
		return nil, true, nil
	}

	if t.Kind == TokenOperator && (t.Op == '{' || t.Op == '[') {
		v, c := newChildContainer(a.tok, t.Op, a.childrenPersistent)
		a.child = c
		return v, false, nil
	}
	return tokenValue(t), false, nil
}

func (a *array) drain() error {
	for {
		v, done, err := a.loadItem()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		if c, ok := v.(container); ok {
			a.child = c
		}
		if err := a.driveChild(); err != nil {
			return err
		}
	}
}

func (a *array) Index(i int) (any, error) {
	if i < 0 {
		return nil, newError(ErrIndexOutOfRange, -1, "negative index %d", i)
	}
	if a.persistent {
		for len(a.retained) <= i {
			v, done, err := a.loadItem()
			if err != nil {
				return nil, err
			}
			if done {
				return nil, newError(ErrIndexOutOfRange, -1, "index %d out of range", i)
			}
			a.retained = append(a.retained, v)
		}
		return a.retained[i], nil
	}

	if int64(i) <= a.lastIndex {
		return nil, newError(ErrStreamAlreadyPassed, -1, "index %d has already been passed in this transient stream", i)
	}
	a.markStarted()
	for {
		v, done, err := a.loadItem()
		if err != nil {
			return nil, err
		}
		if done {
			return nil, newError(ErrIndexOutOfRange, -1, "index %d out of range", i)
		}
		a.lastIndex++
		if a.lastIndex == int64(i) {
			return v, nil
		}
		if c, ok := v.(container); ok {
			a.child = c
		}
		if err := a.driveChild(); err != nil {
			return nil, err
		}
	}
}

func (a *array) Iterate() iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		if err := a.beginIteration(); err != nil {
			return
		}
		if a.persistent {
			i := 0
			for i < len(a.retained) {
				if !yield(i, a.retained[i]) {
					return
				}
				i++
			}
		}
		for {
			v, done, err := a.loadItem()
			if err != nil || done {
				return
			}
			if a.persistent {
				a.retained = append(a.retained, v)
			} else {
				a.lastIndex++
				if c, ok := v.(container); ok {
					a.child = c
				}
			}
			idx := a.Len() - 1
			if !yield(idx, v) {
				if !a.persistent {
					a.driveChild()
				}
				return
			}
			if !a.persistent {
				if err := a.driveChild(); err != nil {
					return
				}
			}
		}
	}
}
