// Package state holds the shared observable containers that decouple the
// callers issuing searches from the ones rendering results.
package state

import (
	"sync"
	"sync/atomic"
)

type observer[T any] struct {
	fn func(T)

	// mu serializes deliveries to fn; seen is the last version delivered.
	mu      sync.Mutex
	seen    uint64
	removed atomic.Bool
}

// deliver calls fn with v unless a newer version already reached it.
func (obs *observer[T]) deliver(v T, version uint64) {
	obs.mu.Lock()
	defer obs.mu.Unlock()

	if obs.removed.Load() || version <= obs.seen {
		return
	}
	obs.seen = version
	obs.fn(v)
}

// Observable holds a single value. Every Set replaces it wholesale and
// notifies the current observers, in subscription order, before returning.
//
// Writes are serialized, so each observer sees every value exactly once and
// in write order. An observer may subscribe to or unsubscribe from the
// container it is observing; a subscription made during a notification does
// not receive the value being delivered twice. An observer must not call Set
// on the container it is observing.
type Observable[T any] struct {
	mu        sync.RWMutex
	notifyMu  sync.Mutex
	value     T
	version   uint64
	observers []*observer[T]
}

// NewObservable returns a container holding initial.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{value: initial, version: 1}
}

func (o *Observable[T]) Get() T {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.value
}

func (o *Observable[T]) Set(v T) {
	o.notifyMu.Lock()
	defer o.notifyMu.Unlock()

	o.mu.Lock()
	o.value = v
	o.version++
	version := o.version
	observers := make([]*observer[T], len(o.observers))
	copy(observers, o.observers)
	o.mu.Unlock()

	for _, obs := range observers {
		obs.deliver(v, version)
	}
}

// Subscribe registers fn, calls it with the current value, and returns a
// function that removes it. Calling the returned function twice is a no-op.
//
// If a concurrent Set delivers a newer value first, fn starts from that
// value instead.
func (o *Observable[T]) Subscribe(fn func(T)) func() {
	o.mu.Lock()
	obs := &observer[T]{fn: fn}
	o.observers = append(o.observers, obs)
	current, version := o.value, o.version
	o.mu.Unlock()

	obs.deliver(current, version)

	var once sync.Once
	return func() {
		once.Do(func() { o.remove(obs) })
	}
}

// Observers reports how many observers are registered.
func (o *Observable[T]) Observers() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.observers)
}

func (o *Observable[T]) remove(target *observer[T]) {
	target.removed.Store(true)

	o.mu.Lock()
	defer o.mu.Unlock()

	for i, obs := range o.observers {
		if obs == target {
			o.observers = append(o.observers[:i:i], o.observers[i+1:]...)
			return
		}
	}
}
