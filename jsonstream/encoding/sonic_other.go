//go:build !amd64

package encoding

// sonic only ships an assembly-optimised codec path for amd64; elsewhere
// it degrades to its own compat mode, which buys nothing over StdBackend,
// so non-amd64 builds just use StdBackend and skip the dependency's
// non-JIT path entirely.
func newSonicBackend() Encoder { return StdBackend{} }
