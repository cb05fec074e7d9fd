//go:build amd64

package encoding

import "github.com/bytedance/sonic"

// SonicBackend wraps bytedance/sonic, which JIT-compiles a codec per type
// on amd64. It's the fastest of the three backends on this platform; on
// any other architecture newSonicBackend falls back to StdBackend (see
// sonic_other.go).
type SonicBackend struct{}

func (SonicBackend) Marshal(v any) ([]byte, error) {
	return sonic.Marshal(v)
}

func newSonicBackend() Encoder { return SonicBackend{} }
