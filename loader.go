package jsonstream

import (
	"io"
	"iter"
)

// Load reads exactly one JSON value from r and returns it fully lazy:
// scalars come back as their Go value directly, objects/arrays come back
// as Object/Array which pull further bytes from r only as they're
// consulted. This is the direct analogue of json_stream.load in
// original_source.
func Load(r any, opts ...Option) (any, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	src, err := asReader(r, cfg.gzip)
	if err != nil {
		return nil, err
	}
	factory := cfg.tokenizerFactory
	if factory == nil {
		factory = NewTokenizer
	}
	tok := factory(src, cfg.buffering, cfg.stringsAsStreams)

	t, err := tok.Next()
	if err != nil {
		return nil, err
	}
	if t.Kind == TokenOperator && (t.Op == '{' || t.Op == '[') {
		v, _ := newChildContainer(tok, t.Op, cfg.persistent)
		return v, nil
	}
	return tokenValue(t), nil
}

// LoadManyResult is one element of the sequence LoadMany yields: either a
// value or an error, never both. A non-nil Err ends the sequence; callers
// that range over LoadMany should stop consuming once they see one.
type LoadManyResult struct {
	Value any
	Err   error
}

// LoadMany treats r as a sequence of whitespace- or newline-delimited JSON
// documents (the common "JSON Lines"/NDJSON shape) and lazily yields one
// value per document. Per original_source's test_load_many_skips_after_
// item_partially_consumed, a document the caller only partially consumed
// (e.g. an Object it called Get on once and then abandoned) is fully
// drained before the next document is parsed, so the shared byte cursor
// always lands exactly on the start of the next value.
func LoadMany(r any, opts ...Option) iter.Seq[LoadManyResult] {
	return func(yield func(LoadManyResult) bool) {
		cfg := defaultConfig()
		for _, opt := range opts {
			opt(&cfg)
		}
		src, err := asReader(r, cfg.gzip)
		if err != nil {
			yield(LoadManyResult{Err: err})
			return
		}
		factory := cfg.tokenizerFactory
		if factory == nil {
			factory = NewTokenizer
		}
		tok := factory(src, cfg.buffering, cfg.stringsAsStreams)

		var pending container
		for {
			if pending != nil {
				if err := pending.drain(); err != nil {
					yield(LoadManyResult{Err: err})
					return
				}
				pending = nil
			}

			t, err := tok.Next()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(LoadManyResult{Err: err})
				return
			}
			var v any
			if t.Kind == TokenOperator && (t.Op == '{' || t.Op == '[') {
				var c container
				v, c = newChildContainer(tok, t.Op, cfg.persistent)
				pending = c
			} else {
				v = tokenValue(t)
			}
			if !yield(LoadManyResult{Value: v}) {
				return
			}
		}
	}
}
