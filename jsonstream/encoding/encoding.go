// Package encoding provides pluggable JSON encoders for re-serialising a
// jsonstream value tree (scalars, materialized maps/slices, or a lazy
// Object/Array run through jsonstream.ToStandardTypes first). spec.md's
// reference implementation hard-codes Python's stdlib json.dumps behind a
// thread-local monkey-patch (dump/threading.py); Go has no equivalent need
// for that trick (no GIL-adjacent global state to guard), so this package
// instead exposes the choice of backend directly, the way a Go library
// normally would.
package encoding

import (
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
)

// Encoder marshals a Go value (typically the output of
// jsonstream.ToStandardTypes) to JSON bytes.
type Encoder interface {
	Marshal(v any) ([]byte, error)
}

// StdBackend wraps encoding/json. It is the default: always available,
// always correct, and what every other backend is benchmarked against.
type StdBackend struct {
	Indent string
}

func (b StdBackend) Marshal(v any) ([]byte, error) {
	if b.Indent != "" {
		return json.MarshalIndent(v, "", b.Indent)
	}
	return json.Marshal(v)
}

// JSONIterBackend wraps json-iterator/go, configured for maximum
// compatibility with encoding/json's output (field ordering, escaping)
// rather than its faster-but-divergent "fastest config" mode.
type JSONIterBackend struct{}

var jsoniterAPI = jsoniter.ConfigCompatibleWithStandardLibrary

func (JSONIterBackend) Marshal(v any) ([]byte, error) {
	return jsoniterAPI.Marshal(v)
}

// Backend names accepted by ParseBackend / the CLI's --encoder flag.
const (
	BackendStd     = "std"
	BackendJSONIter = "jsoniter"
	BackendSonic   = "sonic"
)

// ParseBackend resolves a backend name to an Encoder. Unknown names fall
// back to StdBackend{} rather than erroring, so a typo in a config file
// degrades to "slow but correct" instead of refusing to serve traffic.
func ParseBackend(name string) Encoder {
	switch name {
	case BackendJSONIter:
		return JSONIterBackend{}
	case BackendSonic:
		return newSonicBackend()
	default:
		return StdBackend{}
	}
}
