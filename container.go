package jsonstream

import "io"

// container is the internal capability every lazy node needs regardless of
// whether it's an Object or an Array: the ability to be abandoned by its
// parent and drained to its closing delimiter. The concrete *object and
// *array types behind the exported Object and Array interfaces both
// satisfy it.
type container interface {
	drain() error
}

// base holds the state spec.md §3 assigns to every lazy container: a
// reference to the shared token cursor, the persistence flag, and the
// currently open child (if any). Object and Array embed it
// rather than duplicating this bookkeeping, which is the Go rendering of
// the design note in spec.md §9 ("polymorphism over a small capability set
// is adequate; deep inheritance is unnecessary") — one struct per shape
// (object/array), each branching on persistent internally, instead of the
// reference's four-class hierarchy.
type base struct {
	tok                *Tokenizer
	child              container
	persistent         bool // this container's own persistence
	childrenPersistent bool // persistence handed to children created from now on
	started            bool // transient-only: true once any read-advancing op has run
}

func newBase(tok *Tokenizer, persistent bool) base {
	return base{
		tok:                tok,
		persistent:         persistent,
		childrenPersistent: persistent,
	}
}

// driveChild fully drains the currently open child, if any, so this
// container may advance the shared cursor again. This is the mechanism
// spec.md §4.4 describes for safely skipping an abandoned subtree: the
// parent, not the caller, is responsible for consuming it.
func (b *base) driveChild() error {
	if b.child == nil {
		return nil
	}
	c := b.child
	b.child = nil
	return c.drain()
}

// beginIteration enforces spec.md §4.4's single-shot rule for transient
// containers: a second call to Iterate/Keys/Values/Items after the stream
// has already started (via iteration OR a prior lookup) fails.
func (b *base) beginIteration() error {
	if b.persistent {
		return nil
	}
	if b.started {
		return newError(ErrStreamAlreadyStarted, -1, "cannot restart iteration of a transient JSON stream")
	}
	b.started = true
	return nil
}

// markStarted records that a read-advancing lookup has happened, without
// erroring — lookups may repeat (subject to their own already-passed
// rules), only a *second iterator* is forbidden.
func (b *base) markStarted() { b.started = true }

func unterminatedErr(kind ErrorKind, index int64) error {
	msg := "unterminated object at end of file"
	if kind == ErrUnterminatedList {
		msg = "unterminated list at end of file"
	}
	return &Error{Kind: kind, Index: index, Message: msg}
}

// tokenValue converts a scalar token into its public Go representation.
// OPERATOR tokens never reach here (callers special-case '{'/'['/etc.).
func tokenValue(t Token) any {
	switch t.Kind {
	case TokenString:
		if t.StrR != nil {
			return t.StrR
		}
		return t.Str
	case TokenNumber:
		return t.Num
	case TokenBoolean:
		return t.Bool
	case TokenNull:
		return nil
	default:
		return nil
	}
}

// newChildContainer builds the Object or Array a parent yields when it
// sees an opening '{' or '[' where a value was expected, wired to the same
// shared *Tokenizer (the structural equivalent of spec.md's "exactly one
// cursor, shared by the entire tree").
func newChildContainer(tok *Tokenizer, open byte, persistent bool) (any, container) {
	switch open {
	case '{':
		o := newObject(tok, persistent)
		return o, o
	case '[':
		a := newArray(tok, persistent)
		return a, a
	default:
		panic("newChildContainer: not an opening delimiter")
	}
}

// nextNonEOF reads the next token, translating the tokenizer's io.EOF
// (meaning "no more bytes in the document at all") into the
// container-specific "unterminated" error, since running out of document
// while a container is still streaming is always a violation of
// spec.md §3 invariant 5.
func nextNonEOF(tok *Tokenizer, kind ErrorKind) (Token, error) {
	t, err := tok.Next()
	if err == io.EOF {
		return Token{}, unterminatedErr(kind, tok.src.index())
	}
	return t, err
}
