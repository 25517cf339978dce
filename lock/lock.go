// Package lock provides the concurrency collaborators used by the ortree
// container family. A Locker owns both mutual exclusion and the monotonic
// structure stamp that optimistic readers validate against; containers never
// touch sync primitives directly, they go through a Locker the same way the
// rbtree/list/sortedlist layers go through a Comparator.
package lock

import (
	"fmt"
	"sync"

	"go.uber.org/atomic"
)

// Acquisition is a held lock. Callers must call Release exactly once.
type Acquisition interface {
	Release()
}

// Locker is the L0 collaborator described by the concurrency model: a single
// interface covering both real mutual exclusion (StampedLocker) and
// fail-fast, no-sharing-intended usage (FailFastLocker).
type Locker interface {
	// Lock acquires the lock, blocking until available. cause is a short
	// label naming why the lock was requested; neither locker in this
	// package records or reports it.
	Lock(write bool, cause string) Acquisition

	// TryLock attempts to acquire the lock without blocking.
	TryLock(write bool, cause string) (Acquisition, bool)

	// Stamp returns the current structure stamp without acquiring any lock.
	Stamp() uint64

	// CheckStamp reports whether s still matches the current stamp.
	CheckStamp(s uint64) bool

	// Bump increments and returns the new stamp. Called once per completed
	// structural mutation by the rbtree layer; never called by container
	// code directly.
	Bump() uint64

	// DoOptimistically runs fn under an optimistically-read stamp and
	// discards the attempt if the stamp moved underneath it. How a moved
	// stamp is handled is up to the implementation: StampedLocker retries
	// optimistically up to MaxOptimisticRetries times and then runs fn once
	// under a real read lock; FailFastLocker panics. fn receives a cancel
	// predicate it should poll during traversal;
	// cancel reports true once the stamp has changed, at which point fn
	// should abort its work early since its result will be discarded anyway.
	// The returned bool is fn's own ok result from the attempt that was
	// finally accepted, not a stamp-validity flag: callers use it to learn
	// that fn's answer is, say, "not found" rather than a valid zero value.
	DoOptimistically(fn func(cancel func() bool) (any, bool)) (any, bool)
}

// MaxOptimisticRetries bounds how many lock-free attempts DoOptimistically
// makes before falling back to a real read lock.
const MaxOptimisticRetries = 8

// StampedLocker is a sync.RWMutex paired with an atomic structure stamp,
// grounded on the atomic.Pointer-based lock-free swap in
// amp-labs-amp-common/contexts/atomic.go, adapted here to a plain counter
// rather than a swapped pointer since only the version number, not a whole
// value, needs to move between readers and writers.
type StampedLocker struct {
	mu    sync.RWMutex
	stamp atomic.Uint64
}

// NewStampedLocker returns a ready-to-use StampedLocker at stamp 0.
func NewStampedLocker() *StampedLocker {
	return &StampedLocker{}
}

type rwAcquisition struct {
	mu    *sync.RWMutex
	write bool
}

func (a *rwAcquisition) Release() {
	if a.write {
		a.mu.Unlock()
	} else {
		a.mu.RUnlock()
	}
}

func (l *StampedLocker) Lock(write bool, _ string) Acquisition {
	if write {
		l.mu.Lock()
	} else {
		l.mu.RLock()
	}
	return &rwAcquisition{mu: &l.mu, write: write}
}

func (l *StampedLocker) TryLock(write bool, _ string) (Acquisition, bool) {
	var ok bool
	if write {
		ok = l.mu.TryLock()
	} else {
		ok = l.mu.TryRLock()
	}
	if !ok {
		return nil, false
	}
	return &rwAcquisition{mu: &l.mu, write: write}, true
}

func (l *StampedLocker) Stamp() uint64 {
	return l.stamp.Load()
}

func (l *StampedLocker) CheckStamp(s uint64) bool {
	return l.stamp.Load() == s
}

func (l *StampedLocker) Bump() uint64 {
	return l.stamp.Add(1)
}

func (l *StampedLocker) DoOptimistically(fn func(cancel func() bool) (any, bool)) (any, bool) {
	for attempt := 0; attempt < MaxOptimisticRetries; attempt++ {
		stamp := l.Stamp()
		cancel := func() bool { return !l.CheckStamp(stamp) }
		result, ok := fn(cancel)
		if l.CheckStamp(stamp) {
			return result, ok
		}
	}
	acq := l.Lock(false, "optimistic-read-fallback")
	defer acq.Release()
	return fn(func() bool { return false })
}

// FailFastLocker performs no real mutual exclusion. It is meant for
// single-goroutine or externally-synchronized use where the only thing
// worth paying for is detecting concurrent structural changes made during a
// traversal, so that the traversal can panic immediately rather than run on
// top of a half-updated tree. Lock/TryLock never block and never actually
// exclude anyone; they exist only to satisfy the Locker interface.
type FailFastLocker struct {
	stamp atomic.Uint64
}

// NewFailFastLocker returns a ready-to-use FailFastLocker at stamp 0.
func NewFailFastLocker() *FailFastLocker {
	return &FailFastLocker{}
}

type noopAcquisition struct{}

func (noopAcquisition) Release() {}

func (l *FailFastLocker) Lock(_ bool, _ string) Acquisition {
	return noopAcquisition{}
}

func (l *FailFastLocker) TryLock(_ bool, _ string) (Acquisition, bool) {
	return noopAcquisition{}, true
}

func (l *FailFastLocker) Stamp() uint64 {
	return l.stamp.Load()
}

func (l *FailFastLocker) CheckStamp(s uint64) bool {
	return l.stamp.Load() == s
}

func (l *FailFastLocker) Bump() uint64 {
	return l.stamp.Add(1)
}

// DoOptimistically runs fn exactly once; if the stamp moved during fn (a
// structural mutation happened on another goroutine without any real
// exclusion to prevent it) it panics rather than retrying, since there is no
// lock to retry under.
func (l *FailFastLocker) DoOptimistically(fn func(cancel func() bool) (any, bool)) (any, bool) {
	stamp := l.Stamp()
	cancel := func() bool { return !l.CheckStamp(stamp) }
	result, ok := fn(cancel)
	if !l.CheckStamp(stamp) {
		panic(fmt.Errorf("ortree: concurrent structural modification detected (fail-fast locker)"))
	}
	return result, ok
}
