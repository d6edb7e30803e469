package mysync

import (
	"sync"
)

// Mutex guards a value of type T. Lock and RLock hand out the value together
// with the matching unlock function; Store and Load replace and copy it
// under the lock.
type Mutex[T any] struct {
	mu sync.RWMutex
	v  T
}

type MutexUnlock struct {
	mu *sync.RWMutex
}

type MutexRUnlock struct {
	mu *sync.RWMutex
}

func NewMutex[T any](v T) *Mutex[T] {
	return &Mutex[T]{v: v}
}

func (mu *Mutex[T]) Lock() (*T, MutexUnlock) {
	mu.mu.Lock()
	return &mu.v, MutexUnlock{&mu.mu}
}

func (mu *Mutex[T]) RLock() (T, MutexRUnlock) {
	mu.mu.RLock()
	return mu.v, MutexRUnlock{&mu.mu}
}

func (mu *Mutex[T]) Store(v T) {
	p, u := mu.Lock()
	defer u.Unlock()
	*p = v
}

func (mu *Mutex[T]) Load() T {
	v, u := mu.RLock()
	defer u.RUnlock()
	return v
}

func (u MutexUnlock) Unlock()   { u.mu.Unlock() }
func (u MutexRUnlock) RUnlock() { u.mu.RUnlock() }
