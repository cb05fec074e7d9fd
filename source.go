package jsonstream

import (
	"bufio"
	"bytes"
	"io"

	kcompress "github.com/klauspost/compress/gzip"
	"github.com/klauspost/cpuid/v2"
)

// ChunkReader is the "lazy sequence of byte blocks" input shape from
// spec.md §4.1/§6: a pull source that hands back one chunk at a time and
// signals end-of-stream with io.EOF, without ever exposing a single
// combined buffer. Channels of []byte satisfy this role via ChanChunks.
type ChunkReader interface {
	NextChunk() ([]byte, error)
}

// ChanChunks adapts a channel of byte chunks into a ChunkReader, the
// channel-based equivalent of the reference's IterableStream wrapping a
// Python iterable of bytes.
type ChanChunks <-chan []byte

func (c ChanChunks) NextChunk() ([]byte, error) {
	chunk, ok := <-c
	if !ok {
		return nil, io.EOF
	}
	return chunk, nil
}

// chunkStreamReader adapts a ChunkReader to io.Reader by keeping a
// residual chunk: the tail of the last chunk that didn't fit in the
// caller's buffer. This is the Go shape of spec.md §4.1's "residual
// chunk" rule.
type chunkStreamReader struct {
	src       ChunkReader
	residual  []byte
	eof       bool
}

func newChunkStreamReader(src ChunkReader) *chunkStreamReader {
	return &chunkStreamReader{src: src}
}

func (r *chunkStreamReader) Read(p []byte) (int, error) {
	for len(r.residual) == 0 {
		if r.eof {
			return 0, io.EOF
		}
		chunk, err := r.src.NextChunk()
		if len(chunk) > 0 {
			r.residual = chunk
		}
		if err != nil {
			r.eof = true
			if len(r.residual) == 0 {
				return 0, err
			}
		}
		if len(r.residual) > 0 {
			break
		}
	}
	n := copy(p, r.residual)
	r.residual = r.residual[n:]
	return n, nil
}

// CharsetDeclarer is implemented by sources that can tell us their declared
// character set without us guessing (e.g. an HTTP response with a
// Content-Type header) — the structural analogue of spec.md §4.1's "unless
// the source exposes a declared character set".
type CharsetDeclarer interface {
	DeclaredCharset() (string, bool)
}

// asReader normalizes any of io.Reader, ChunkReader, or <-chan []byte into
// a plain io.Reader, and peeks for a gzip magic number so Load/LoadMany can
// transparently accept gzip-compressed bodies per GzipMode.
func asReader(input any, gz GzipMode) (io.Reader, error) {
	var r io.Reader
	switch v := input.(type) {
	case io.Reader:
		r = v
	case ChunkReader:
		r = newChunkStreamReader(v)
	case <-chan []byte:
		r = newChunkStreamReader(ChanChunks(v))
	default:
		return nil, newError(ErrMalformedJSON, -1, "unsupported input type %T", input)
	}
	return maybeGunzip(r, gz)
}

// maybeGunzip wraps r with a gzip reader when GzipAlways is requested, or
// when GzipAuto is requested and the stream's first two bytes are the gzip
// magic number 0x1f 0x8b. klauspost/compress/gzip is used for the actual
// decompression (it is a drop-in, allocation-lighter replacement for
// compress/gzip, already a direct dependency of minio/simdjson-go in the
// retrieval pack); the magic number is compared as literal bytes below.
func maybeGunzip(r io.Reader, mode GzipMode) (io.Reader, error) {
	if mode == GzipNever {
		return r, nil
	}
	br := bufio.NewReader(r)
	if mode == GzipAuto {
		magic, err := br.Peek(2)
		if err != nil || !bytes.Equal(magic, []byte{0x1f, 0x8b}) {
			return br, nil
		}
	}
	gzr, err := kcompress.NewReader(br)
	if err != nil {
		return nil, err
	}
	return gzr, nil
}

// defaultBufferSize picks the block size used when Option WithBuffering(-1)
// (the default) is in effect. It consults klauspost/cpuid/v2 for the L1
// data cache size as a sizing heuristic — purely a throughput tweak,
// never a correctness requirement, since any positive buffering value
// behaves identically from the tokenizer's point of view.
func defaultBufferSize() int {
	if l1 := cpuid.CPU.Cache.L1D; l1 > 0 {
		// Use the L1 size only when it lies in [4096, bufio.MaxScanTokenSize);
		// smaller or exotic reported values fall back to the stdlib's own
		// default reader size below.
		if l1 < bufio.MaxScanTokenSize && l1 >= 4096 {
			return l1
		}
	}
	return bufio.NewReader(nil).Size()
}
