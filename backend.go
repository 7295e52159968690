// This file defines the Backend contract: an alternate implementation of
// the public operation surface, selectable by name. The portable native
// engine is always registered and always correct; additional backends
// (such as the GMP delegate behind the "gmp" build tag) register at init
// time and exist for performance comparison and cross-checking, never as
// a correctness requirement.

package bigint

import (
	"sort"
	"sync"
)

// Backend is an implementation of the engine's core operation contract.
// Every method allocates fresh results and leaves its operands untouched,
// matching the semantics of the corresponding Int methods.
type Backend interface {
	// Name returns a human-readable backend description.
	Name() string
	// Add returns x + y.
	Add(x, y *Int) *Int
	// Sub returns x - y.
	Sub(x, y *Int) *Int
	// Mul returns x * y.
	Mul(x, y *Int) *Int
	// QuoRem returns the truncating quotient and remainder of x and y.
	QuoRem(x, y *Int) (*Int, *Int, error)
	// GCD returns the non-negative greatest common divisor of x and y.
	GCD(x, y *Int) *Int
	// ModPow returns x**y mod m in [0, |m|).
	ModPow(x, y, m *Int) (*Int, error)
}

var (
	backendsMu sync.RWMutex
	backends   = make(map[string]func() Backend)
)

// RegisterBackend makes a backend constructor available under the given
// key. Typically called from an init function, possibly behind a build
// tag. Registering a key twice replaces the earlier constructor.
func RegisterBackend(key string, constructor func() Backend) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	backends[key] = constructor
}

// NewBackend constructs the backend registered under the given key.
func NewBackend(key string) (Backend, bool) {
	backendsMu.RLock()
	constructor, ok := backends[key]
	backendsMu.RUnlock()
	if !ok {
		return nil, false
	}
	return constructor(), true
}

// BackendKeys returns the sorted keys of all registered backends.
func BackendKeys() []string {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	keys := make([]string, 0, len(backends))
	for k := range backends {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func init() {
	RegisterBackend("native", func() Backend { return nativeBackend{} })
}

// nativeBackend adapts the Int methods themselves to the Backend
// interface. It is the reference every other backend is tested against.
type nativeBackend struct{}

// Name returns the backend description.
func (nativeBackend) Name() string { return "native (portable limb engine)" }

// Add returns x + y.
func (nativeBackend) Add(x, y *Int) *Int { return new(Int).Add(x, y) }

// Sub returns x - y.
func (nativeBackend) Sub(x, y *Int) *Int { return new(Int).Sub(x, y) }

// Mul returns x * y.
func (nativeBackend) Mul(x, y *Int) *Int { return new(Int).Mul(x, y) }

// QuoRem returns the truncating quotient and remainder of x and y.
func (nativeBackend) QuoRem(x, y *Int) (*Int, *Int, error) {
	q, r, err := new(Int).QuoRem(x, y, new(Int))
	return q, r, err
}

// GCD returns the non-negative greatest common divisor of x and y.
func (nativeBackend) GCD(x, y *Int) *Int { return new(Int).GCD(x, y) }

// ModPow returns x**y mod m in [0, |m|).
func (nativeBackend) ModPow(x, y, m *Int) (*Int, error) {
	return new(Int).ModPow(x, y, m)
}
