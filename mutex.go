package port

import (
	"sync"
	"sync/atomic"

	"github.com/hupe1980/port/internal/goid"
)

// Mutex is a mutual exclusion lock that knows which goroutine holds it.
//
// The zero value is an unlocked Mutex. A Mutex must not be copied after
// first use; CondVars bound to it keep a pointer to it.
type Mutex struct {
	mu sync.Mutex
	// owner is the goroutine id of the holder, 0 while unlocked.
	owner atomic.Uint64
}

var _ sync.Locker = (*Mutex)(nil)

// Lock blocks until the calling goroutine is the sole holder of m.
func (m *Mutex) Lock() {
	m.mu.Lock()
	m.owner.Store(goid.Get())
}

// Unlock releases m. It panics if the calling goroutine does not hold m.
func (m *Mutex) Unlock() {
	if m.owner.Load() != goid.Get() {
		panic("port: unlock of mutex not held by caller")
	}
	m.owner.Store(0)
	m.mu.Unlock()
}

// AssertHeld panics unless the calling goroutine holds m.
func (m *Mutex) AssertHeld() {
	if !m.heldByCaller() {
		panic("port: mutex not held by caller")
	}
}

func (m *Mutex) heldByCaller() bool {
	owner := m.owner.Load()
	return owner != 0 && owner == goid.Get()
}
