package jsonstream

import (
	"io"
	"math/big"
)

// TokenKind identifies which field of a Token is meaningful.
type TokenKind int

const (
	TokenOperator TokenKind = iota
	TokenString
	TokenNumber
	TokenBoolean
	TokenNull
)

// Number holds a JSON number exactly as the tokenizer classified it: an
// arbitrary-precision integer when the lexical form had no '.', 'e', or
// 'E', and a float64 otherwise. Silently clamping integers to 64 bits is
// exactly what spec.md §4.2 forbids, hence math/big.
type Number struct {
	Int     *big.Int
	Float   float64
	IsFloat bool
}

func (n Number) String() string {
	if n.IsFloat {
		return formatFloat(n.Float)
	}
	return n.Int.String()
}

// MarshalJSON writes n as a bare JSON number, so encoders emit 42 rather
// than the struct's fields.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n.String()), nil
}

// Token is one lexical unit produced by the Tokenizer.
type Token struct {
	Kind  TokenKind
	Op    byte
	Str   string
	StrR  *StringReader
	Num   Number
	Bool  bool
	Index int64 // byte offset where the token began
}

// tokState is the tokenizer's FSM state, named after spec.md §4.2's
// conceptual state list.
type tokState int

const (
	stWhitespace tokState = iota
	stIntegerZero
	stIntegerSign
	stInteger
	stIntegerExpZero
	stIntegerExp
	stFloatZero
	stFloat
	stString
	stStringEnd
	stTrue1
	stTrue2
	stTrue3
	stFalse1
	stFalse2
	stFalse3
	stFalse4
	stNull1
	stNull2
	stNull3
)

const eof = -1 // pseudo-byte fed once at end of input to flush trailing tokens

// Tokenizer is a single-pass, pull-driven JSON lexer: Next returns one
// token at a time, reading from its source only as far as needed. It
// implements the FSM of spec.md §4.2 plus the embedded string sub-reader
// of §4.3, grounded on original_source/src/json_stream/tokenizer/__init__.py
// and translated into tailscale-hujson's style of threading FSM state
// through a struct rather than Python closures.
type Tokenizer struct {
	src              *blockReader
	state            tokState
	digits           []byte
	stringsAsStreams bool
	pendingString    *StringReader // streaming-mode string not yet drained
	pendingByte      int           // buffered byte not yet consumed by the FSM, or -2 if empty
	tokenStart       int64         // byte index of the token currently being built
}

const noPendingByte = -2

// NewTokenizer constructs a tokenizer reading from r in blocks of
// `buffering` bytes (-1 for a computed default, 0 for single-byte reads).
// When stringsAsStreams is true, STRING tokens carry an incremental
// *StringReader instead of a decoded string.
func NewTokenizer(r io.Reader, buffering int, stringsAsStreams bool) *Tokenizer {
	if buffering == 0 {
		buffering = 1
	}
	return &Tokenizer{
		src:              newBlockReader(r, buffering),
		state:            stWhitespace,
		stringsAsStreams: stringsAsStreams,
		pendingByte:      noPendingByte,
	}
}

func isDelimiter(c int) bool {
	if c == eof {
		return true
	}
	switch byte(c) {
	case ' ', '\t', '\n', '\r', '\f', '\v', '{', '}', '[', ']', ':', ',':
		return true
	}
	return false
}

func isDigit(c int) bool { return c >= '0' && c <= '9' }

// Next produces the next token, or io.EOF once the document is exhausted.
// Lexical errors in numbers, literals and structure are *Error with Kind
// ErrMalformedJSON; errors inside a string body carry the string kinds
// (ErrUnterminatedString, ErrInvalidEscape, ErrInvalidUnicodeLiteral,
// ErrUnpairedSurrogate).
func (t *Tokenizer) Next() (Token, error) {
	if t.pendingString != nil && !t.pendingString.Complete() {
		// The caller abandoned a streaming string reader without draining
		// it; the tokenizer must not advance past the closing quote on its
		// own behalf, so we drain it here instead (spec.md §4.3).
		if _, err := t.pendingString.ReadAll(); err != nil {
			return Token{}, err
		}
	}
	t.pendingString = nil
	t.digits = t.digits[:0]
	t.tokenStart = -1

	for {
		c, err := t.peek()
		if err != nil {
			return Token{}, err
		}
		if t.state == stWhitespace && c != eof && !isSpace(c) {
			t.tokenStart = t.src.index()
		}
		startIndex := t.tokenStart
		tok, consumed, done, err := t.step(c, startIndex)
		if err != nil {
			return Token{}, err
		}
		if consumed {
			t.consume()
		}
		if done {
			return tok, nil
		}
		if c == eof {
			// step() didn't finish us off and there is no more input: either
			// we're in WHITESPACE (clean end of stream) or mid-token.
			if t.state == stWhitespace {
				return Token{}, io.EOF
			}
			return Token{}, t.incompleteErr(startIndex)
		}
	}
}

func isSpace(c int) bool {
	switch byte(c) {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// peek returns the next input byte (or eof) without permanently consuming
// it; step() decides whether to consume via consume().
func (t *Tokenizer) peek() (int, error) {
	if t.pendingByte != noPendingByte {
		return t.pendingByte, nil
	}
	b, err := t.src.next()
	if err == io.EOF {
		t.pendingByte = eof
		return eof, nil
	}
	if err != nil {
		return 0, err
	}
	t.pendingByte = int(b)
	return t.pendingByte, nil
}

func (t *Tokenizer) consume() {
	t.pendingByte = noPendingByte
}

func (t *Tokenizer) incompleteErr(startIndex int64) *Error {
	return newError(ErrMalformedJSON, startIndex, "unexpected end of input while parsing token")
}

// step runs one FSM transition for byte/pseudo-byte c. It returns the
// completed token (when done), whether c should be consumed (vs. pushed
// back for the next token, e.g. the delimiter after a number), and
// whether a token is complete.
func (t *Tokenizer) step(c int, startIndex int64) (Token, bool, bool, error) {
	idx := t.src.index()
	switch t.state {
	case stWhitespace:
		switch {
		case c == '{' || c == '}' || c == '[' || c == ']' || c == ':' || c == ',':
			return Token{Kind: TokenOperator, Op: byte(c), Index: idx}, true, true, nil
		case c == '"':
			sr := newStringReader(t.src)
			if t.stringsAsStreams {
				t.pendingString = sr
				t.state = stStringEnd
				return Token{Kind: TokenString, StrR: sr, Index: idx}, true, true, nil
			}
			// Whole-value mode: decode the string to completion right here,
			// in the same step() call that consumed the opening quote. The
			// surrounding Next() loop always peeks one byte ahead of
			// whatever step() dispatches on; if we instead looped back
			// through peek() first, that peeked byte would be pulled from
			// the shared blockReader but never handed to the string reader
			// (which reads t.src directly), silently dropping it.
			s, err := sr.ReadAll()
			if err != nil {
				return Token{}, true, false, err
			}
			t.state = stStringEnd
			return Token{Kind: TokenString, Str: s, Index: idx}, true, true, nil
		case c >= '1' && c <= '9':
			t.digits = append(t.digits, byte(c))
			t.state = stInteger
			return Token{}, true, false, nil
		case c == '0':
			t.digits = append(t.digits, '0')
			t.state = stIntegerZero
			return Token{}, true, false, nil
		case c == '-':
			t.digits = append(t.digits, '-')
			t.state = stIntegerSign
			return Token{}, true, false, nil
		case c == 'f':
			t.state = stFalse1
			return Token{}, true, false, nil
		case c == 't':
			t.state = stTrue1
			return Token{}, true, false, nil
		case c == 'n':
			t.state = stNull1
			return Token{}, true, false, nil
		case c == eof:
			return Token{}, true, false, nil
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v':
			return Token{}, true, false, nil
		default:
			return Token{}, false, false, newError(ErrMalformedJSON, idx, "invalid JSON character %q in state WHITESPACE", rune(c))
		}

	case stInteger:
		return t.stepDigits(c, stFloatZero, stIntegerExpZero, idx, startIndex, false)
	case stIntegerZero:
		switch {
		case c == '.':
			t.digits = append(t.digits, '.')
			t.state = stFloatZero
			return Token{}, true, false, nil
		case c == 'e' || c == 'E':
			t.digits = append(t.digits, byte(c))
			t.state = stIntegerExpZero
			return Token{}, true, false, nil
		case isDelimiter(c):
			t.state = stWhitespace
			return t.emitInt(startIndex), false, true, nil
		default:
			return Token{}, false, false, newError(ErrMalformedJSON, idx, "a 0 must be followed by '.' or 'e', got %q", rune(c))
		}
	case stIntegerSign:
		switch {
		case c == '0':
			t.digits = append(t.digits, '0')
			t.state = stIntegerZero
			return Token{}, true, false, nil
		case c >= '1' && c <= '9':
			t.digits = append(t.digits, byte(c))
			t.state = stInteger
			return Token{}, true, false, nil
		default:
			return Token{}, false, false, newError(ErrMalformedJSON, idx, "a '-' must be followed by a digit, got %q", rune(c))
		}
	case stIntegerExpZero:
		if c == '+' || c == '-' || isDigit(c) {
			t.digits = append(t.digits, byte(c))
			t.state = stIntegerExp
			return Token{}, true, false, nil
		}
		return Token{}, false, false, newError(ErrMalformedJSON, idx, "an exponent must start with a sign or digit, got %q", rune(c))
	case stIntegerExp:
		switch {
		case isDigit(c):
			t.digits = append(t.digits, byte(c))
			return Token{}, true, false, nil
		case isDelimiter(c):
			if !isDigit(int(t.digits[len(t.digits)-1])) {
				return Token{}, false, false, newError(ErrMalformedJSON, idx, "an exponent sign must be followed by a digit, got %q", rune(c))
			}
			t.state = stWhitespace
			return t.emitFloat(startIndex), false, true, nil
		default:
			return Token{}, false, false, newError(ErrMalformedJSON, idx, "a number exponent must consist only of digits, got %q", rune(c))
		}
	case stFloat:
		switch {
		case isDigit(c):
			t.digits = append(t.digits, byte(c))
			return Token{}, true, false, nil
		case c == 'e' || c == 'E':
			t.digits = append(t.digits, byte(c))
			t.state = stIntegerExpZero
			return Token{}, true, false, nil
		case isDelimiter(c):
			t.state = stWhitespace
			return t.emitFloat(startIndex), false, true, nil
		default:
			return Token{}, false, false, newError(ErrMalformedJSON, idx, "a number must include only digits, got %q", rune(c))
		}
	case stFloatZero:
		if isDigit(c) {
			t.digits = append(t.digits, byte(c))
			t.state = stFloat
			return Token{}, true, false, nil
		}
		return Token{}, false, false, newError(ErrMalformedJSON, idx, "a decimal point must be followed by a fractional digit, got %q", rune(c))

	case stFalse1:
		return t.stepLiteral(c, 'a', stFalse2, idx)
	case stFalse2:
		return t.stepLiteral(c, 'l', stFalse3, idx)
	case stFalse3:
		return t.stepLiteral(c, 's', stFalse4, idx)
	case stFalse4:
		if c == 'e' {
			t.state = stWhitespace
			return Token{Kind: TokenBoolean, Bool: false, Index: startIndex}, true, true, nil
		}
		return Token{}, false, false, newError(ErrMalformedJSON, idx, "invalid JSON literal, expected 'e', got %q", rune(c))
	case stTrue1:
		return t.stepLiteral(c, 'r', stTrue2, idx)
	case stTrue2:
		return t.stepLiteral(c, 'u', stTrue3, idx)
	case stTrue3:
		if c == 'e' {
			t.state = stWhitespace
			return Token{Kind: TokenBoolean, Bool: true, Index: startIndex}, true, true, nil
		}
		return Token{}, false, false, newError(ErrMalformedJSON, idx, "invalid JSON literal, expected 'e', got %q", rune(c))
	case stNull1:
		return t.stepLiteral(c, 'u', stNull2, idx)
	case stNull2:
		return t.stepLiteral(c, 'l', stNull3, idx)
	case stNull3:
		if c == 'l' {
			t.state = stWhitespace
			return Token{Kind: TokenNull, Index: startIndex}, true, true, nil
		}
		return Token{}, false, false, newError(ErrMalformedJSON, idx, "invalid JSON literal, expected 'l', got %q", rune(c))

	case stStringEnd:
		if isDelimiter(c) {
			t.state = stWhitespace
			return Token{}, false, false, nil
		}
		return Token{}, false, false, newError(ErrMalformedJSON, idx, "expected whitespace or an operator after string, got %q", rune(c))
	}
	panic("unreachable tokenizer state")
}

func (t *Tokenizer) stepDigits(c int, toFloat, toExp tokState, idx, startIndex int64, _ bool) (Token, bool, bool, error) {
	switch {
	case isDigit(c):
		t.digits = append(t.digits, byte(c))
		return Token{}, true, false, nil
	case c == '.':
		t.digits = append(t.digits, '.')
		t.state = toFloat
		return Token{}, true, false, nil
	case c == 'e' || c == 'E':
		t.digits = append(t.digits, byte(c))
		t.state = toExp
		return Token{}, true, false, nil
	case isDelimiter(c):
		t.state = stWhitespace
		return t.emitInt(startIndex), false, true, nil
	default:
		return Token{}, false, false, newError(ErrMalformedJSON, idx, "a number must contain only digits, got %q", rune(c))
	}
}

func (t *Tokenizer) stepLiteral(c int, want byte, next tokState, idx int64) (Token, bool, bool, error) {
	if byte(c) == want && c != eof {
		t.state = next
		return Token{}, true, false, nil
	}
	return Token{}, false, false, newError(ErrMalformedJSON, idx, "invalid JSON literal, expected %q, got %q", rune(want), rune(c))
}

func (t *Tokenizer) emitInt(startIndex int64) Token {
	n := new(big.Int)
	n.SetString(string(t.digits), 10)
	return Token{Kind: TokenNumber, Num: Number{Int: n}, Index: startIndex}
}

func (t *Tokenizer) emitFloat(startIndex int64) Token {
	f := parseFloatStrict(string(t.digits))
	return Token{Kind: TokenNumber, Num: Number{Float: f, IsFloat: true}, Index: startIndex}
}
