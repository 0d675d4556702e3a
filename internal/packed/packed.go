// Package packed provides a memory efficient representation of memo keys.
package packed

import (
	"hash/maphash"

	"github.com/go-ricrob/keypadsolver/keypad"
)

// MaxLayers is the largest layer count a packed key can hold.
const MaxLayers = 255

// Packable interface defines the constraint of packed key types.
type Packable interface {
	~[3]byte
	Hash(seed maphash.Seed) uint64
}

// P3 is a compressed representation of a key pair and a layer count.
type P3 [3]byte

// Hash returns a hash value of P3.
func (p P3) Hash(seed maphash.Seed) uint64 { return maphash.Bytes(seed, p[:]) }

// Pack returns the packed representation of pair p at the given layer count.
// layers must not exceed MaxLayers.
func Pack(p keypad.Pair, layers int) P3 {
	return P3{byte(p.From), byte(p.To), byte(layers)}
}
