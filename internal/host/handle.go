package host

import (
	"sync"
	"sync/atomic"
)

// Handle is a reference-counted owner of one bound object. Calls through a
// handle are serialized, so the object itself needs no locking.
type Handle struct {
	class string

	mu       sync.Mutex
	obj      any
	refs     atomic.Int32
	released bool
	release  func(any)
}

func newHandle(class string, obj any, release func(any)) *Handle {
	h := &Handle{class: class, obj: obj, release: release}
	h.refs.Store(1)
	return h
}

// Class returns the registered class name of the wrapped object.
func (h *Handle) Class() string { return h.class }

// Refs reports the current reference count.
func (h *Handle) Refs() int32 { return h.refs.Load() }

// Ref adds a reference. It returns false if the handle was already released.
func (h *Handle) Ref() bool {
	for {
		n := h.refs.Load()
		if n <= 0 {
			return false
		}
		if h.refs.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// Unref drops a reference and reports whether it was the last one, in which
// case the object is released.
func (h *Handle) Unref() bool {
	if h.refs.Add(-1) != 0 {
		return false
	}
	h.mu.Lock()
	obj := h.obj
	h.obj = nil
	h.released = true
	h.mu.Unlock()
	if h.release != nil && obj != nil {
		h.release(obj)
	}
	return true
}

// With runs fn against the wrapped object while holding the handle lock.
func (h *Handle) With(fn func(obj any) (any, error)) (any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.released {
		return nil, ErrReleased
	}
	return fn(h.obj)
}
