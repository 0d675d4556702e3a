// Package spinlock provides a spinlock mutex for very short critical sections.
package spinlock

import (
	"runtime"
	"sync/atomic"
)

// Mutex represents a spinlock. The zero value is unlocked.
type Mutex struct {
	locked atomic.Bool
}

// Lock locks the mutex, yielding the processor while it is held elsewhere.
func (m *Mutex) Lock() {
	for !m.locked.CompareAndSwap(false, true) {
		runtime.Gosched()
	}
}

// Unlock unlocks the mutex.
func (m *Mutex) Unlock() { m.locked.Store(false) }
