// Package partmap provide a partitioned map safe for concurrent use.
package partmap

import (
	"hash/maphash"

	"github.com/go-ricrob/keypadsolver/internal/packed"
	"github.com/go-ricrob/keypadsolver/internal/spinlock"
)

type part[K packed.Packable, V any] struct {
	mu spinlock.Mutex
	m  map[K]V
}

// Map is split into parts by key hash, each guarded by its own lock.
type Map[K packed.Packable, V any] struct {
	numPart uint64
	seed    maphash.Seed
	parts   []*part[K, V]
}

// New returns an empty map with numPart parts.
func New[K packed.Packable, V any](numPart int) *Map[K, V] {
	if numPart < 1 {
		numPart = 1
	}
	pm := &Map[K, V]{
		numPart: uint64(numPart),
		seed:    maphash.MakeSeed(),
		parts:   make([]*part[K, V], numPart),
	}
	for i := range pm.parts {
		pm.parts[i] = &part[K, V]{m: map[K]V{}}
	}
	return pm
}

func (pm *Map[K, V]) part(k K) *part[K, V] { return pm.parts[k.Hash(pm.seed)%pm.numPart] }

// Load returns the value stored for k.
func (pm *Map[K, V]) Load(k K) (V, bool) {
	part := pm.part(k)
	part.mu.Lock()
	v, ok := part.m[k]
	part.mu.Unlock()
	return v, ok
}

// StoreIfAbsent stores v for k unless k is present already. It reports
// whether v was stored.
func (pm *Map[K, V]) StoreIfAbsent(k K, v V) bool {
	part := pm.part(k)
	part.mu.Lock()
	if _, ok := part.m[k]; !ok {
		part.m[k] = v
		part.mu.Unlock()
		return true
	}
	part.mu.Unlock()
	return false
}

// Size returns the number of stored keys.
func (pm *Map[K, V]) Size() int {
	size := 0
	for _, part := range pm.parts {
		part.mu.Lock()
		size += len(part.m)
		part.mu.Unlock()
	}
	return size
}
