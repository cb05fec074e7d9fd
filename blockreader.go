package jsonstream

import "io"

// blockReader is the tokenizer's low-level pull source: it requests bytes
// from an io.Reader in blocks of a configured size and hands them out one
// at a time, tracking a running byte index for error messages. It is
// shared between the Tokenizer and any *StringReader it hands out, so both
// sides agree on the document's byte offset — the Go analogue of
// spec.md §4.1's read-buffer plus the shared `index` counter threaded
// through the reference tokenizer's `process_char` closure.
type blockReader struct {
	r       io.Reader
	size    int
	buf     []byte
	pos     int
	idx     int64
	err     error // sticky error from the underlying reader, once hit
	started bool
}

func newBlockReader(r io.Reader, size int) *blockReader {
	if size <= 0 {
		size = defaultBufferSize()
	}
	return &blockReader{r: r, size: size}
}

// next returns the next byte in the document, or io.EOF once exhausted.
func (b *blockReader) next() (byte, error) {
	for b.pos >= len(b.buf) {
		if b.err != nil {
			return 0, b.err
		}
		buf := make([]byte, b.size)
		n, err := b.r.Read(buf)
		b.buf = buf[:n]
		b.pos = 0
		if err != nil {
			b.err = err
		}
		if n == 0 {
			if b.err != nil {
				return 0, b.err
			}
			// zero-byte, nil-error read: keep polling, per io.Reader contract.
			continue
		}
	}
	c := b.buf[b.pos]
	b.pos++
	b.idx++
	return c, nil
}

// index returns the byte offset of the last byte returned by next().
func (b *blockReader) index() int64 {
	return b.idx - 1
}
