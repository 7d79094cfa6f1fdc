package port

import "sync/atomic"

// OnceState is the lifecycle state of a OnceGuard.
type OnceState uint32

const (
	// OnceNotStarted means the initializer has not been invoked.
	OnceNotStarted OnceState = iota
	// OnceRunning means a goroutine is executing the initializer.
	OnceRunning
	// OnceDone means the initializer has finished (or panicked).
	OnceDone
)

// String returns the string representation of a OnceState.
func (s OnceState) String() string {
	switch s {
	case OnceNotStarted:
		return "not-started"
	case OnceRunning:
		return "running"
	case OnceDone:
		return "done"
	default:
		return "unknown"
	}
}

// OnceGuard runs an initializer at most once.
//
// The zero value is ready to use. Goroutines that call Do while the
// initializer runs block until it returns; goroutines arriving afterwards
// return immediately. The guard never resets. An initializer that panics
// leaves the guard done and the panic propagates to the goroutine that
// ran it. Calling Do on the same guard from inside its initializer
// deadlocks.
type OnceGuard struct {
	state atomic.Uint32
	mu    Mutex
	cv    *CondVar // created under mu on first slow path
}

// State returns the current state of g.
func (g *OnceGuard) State() OnceState {
	return OnceState(g.state.Load())
}

// Do calls initializer if and only if no call to Do on g has run one yet.
func (g *OnceGuard) Do(initializer func()) {
	if g.state.Load() == uint32(OnceDone) {
		return
	}
	g.doSlow(initializer)
}

func (g *OnceGuard) doSlow(initializer func()) {
	g.mu.Lock()
	if g.cv == nil {
		g.cv = NewCondVar(&g.mu)
	}
	for g.State() == OnceRunning {
		g.cv.Wait()
	}
	if g.State() == OnceDone {
		g.mu.Unlock()
		return
	}
	g.state.Store(uint32(OnceRunning))
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		g.state.Store(uint32(OnceDone))
		g.cv.SignalAll()
		g.mu.Unlock()
	}()
	initializer()
}

// InitOnce runs initializer through once.
func InitOnce(once *OnceGuard, initializer func()) {
	once.Do(initializer)
}
