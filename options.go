package jsonstream

import "io"

// GzipMode controls whether Load/LoadMany transparently decompress their
// input.
type GzipMode int

const (
	// GzipAuto sniffs the first two bytes for the gzip magic number.
	GzipAuto GzipMode = iota
	// GzipAlways always wraps the source in a gzip reader.
	GzipAlways
	// GzipNever never decompresses, even if the input looks gzipped.
	GzipNever
)

// TokenizerFactory builds a *Tokenizer over a reader. It is the escape
// hatch matching spec.md §6's `tokenizer=default_tokenizer` parameter — the
// slot the reference implementation uses to swap in its optional Rust
// tokenizer extension. When no factory is set, NewTokenizer is used.
type TokenizerFactory func(r io.Reader, buffering int, stringsAsStreams bool) *Tokenizer

type config struct {
	persistent       bool
	buffering        int
	stringsAsStreams bool
	gzip             GzipMode
	tokenizerFactory TokenizerFactory
}

func defaultConfig() config {
	return config{
		persistent:       false,
		buffering:        -1,
		stringsAsStreams: false,
		gzip:             GzipAuto,
		tokenizerFactory: nil,
	}
}

// Option configures Load and LoadMany.
type Option func(*config)

// WithPersistent selects persistent containers (restartable iteration,
// repeatable lookups) instead of the default transient ones.
func WithPersistent(persistent bool) Option {
	return func(c *config) { c.persistent = persistent }
}

// WithBuffering sets the tokenizer's read-block size: -1 uses a computed
// default, 0 means single-character reads, N>0 uses N-byte blocks.
func WithBuffering(n int) Option {
	return func(c *config) { c.buffering = n }
}

// WithStringsAsStreams exposes STRING tokens as incremental *StringReader
// values instead of fully-decoded strings.
func WithStringsAsStreams(enabled bool) Option {
	return func(c *config) { c.stringsAsStreams = enabled }
}

// WithGzip controls transparent gzip decompression of the input.
func WithGzip(mode GzipMode) Option {
	return func(c *config) { c.gzip = mode }
}

// WithTokenizer overrides tokenizer construction.
func WithTokenizer(f TokenizerFactory) Option {
	return func(c *config) { c.tokenizerFactory = f }
}
