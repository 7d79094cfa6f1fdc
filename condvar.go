package port

import "sync"

// CondVar is a condition variable bound to one Mutex for its whole life.
//
// The Mutex is not owned by the CondVar and must outlive it. Every Wait
// must happen with that Mutex held. Wakeups may be spurious, so callers
// re-check their condition in a loop:
//
//	mu.Lock()
//	for !ready {
//	    cv.Wait()
//	}
//	mu.Unlock()
type CondVar struct {
	mu   *Mutex
	cond sync.Cond
}

// NewCondVar returns a CondVar bound to mu. It panics if mu is nil.
func NewCondVar(mu *Mutex) *CondVar {
	if mu == nil {
		panic("port: NewCondVar with nil mutex")
	}
	cv := &CondVar{mu: mu}
	cv.cond.L = mu
	return cv
}

// Mutex returns the mutex cv is bound to.
func (cv *CondVar) Mutex() *Mutex {
	return cv.mu
}

// Wait atomically releases the bound mutex and suspends the calling
// goroutine. The mutex is held again when Wait returns. It panics if the
// caller does not hold the mutex.
func (cv *CondVar) Wait() {
	cv.mu.AssertHeld()
	cv.cond.Wait()
}

// Signal wakes one goroutine waiting on cv, if there is any.
// Holding the mutex is not required.
func (cv *CondVar) Signal() {
	cv.cond.Signal()
}

// SignalAll wakes all goroutines waiting on cv. They reacquire the mutex
// one at a time.
func (cv *CondVar) SignalAll() {
	cv.cond.Broadcast()
}
