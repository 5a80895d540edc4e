package lkv

import (
	"slices"
	"sync"
)

// Sync is an OTM guarded by a read-write mutex.
//
// Get returns a copy. Update and Range hand their callbacks views into the
// collection that are only valid while the lock is held, so callbacks must
// not retain them.
type Sync[K comparable, V any] struct {
	mu  sync.RWMutex
	otm *OTM[K, V]
}

// NewSync creates a new empty synchronized collection.
func NewSync[K comparable, V any](optFns ...func(o *Options[K])) *Sync[K, V] {
	return &Sync[K, V]{
		otm: New[K, V](optFns...),
	}
}

// Insert appends val to the values of key.
func (s *Sync[K, V]) Insert(key K, val V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.otm.Insert(key, val)
}

// InsertMany appends all vals to key in order. vals is copied.
func (s *Sync[K, V]) InsertMany(key K, vals ...V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.otm.InsertMany(key, vals...)
}

// Get returns a copy of the values associated with key.
func (s *Sync[K, V]) Get(key K) []V {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.otm.Get(key))
}

// Update calls fn with a mutable view of the values of key while holding the
// write lock. fn is called with an empty slice if key is absent and must not
// retain the view.
func (s *Sync[K, V]) Update(key K, fn func(vals []V)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(s.otm.GetMut(key))
}

// Merge moves every entry of other into s. other must not be shared with
// any other goroutine and is left empty.
func (s *Sync[K, V]) Merge(other *OTM[K, V]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.otm.Merge(other)
}

// Contains reports whether an entry exists for key.
func (s *Sync[K, V]) Contains(key K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.otm.Contains(key)
}

// NumKeys returns the number of distinct keys.
func (s *Sync[K, V]) NumKeys() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.otm.NumKeys()
}

// Len returns the total number of values across all keys.
func (s *Sync[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.otm.Len()
}

// Range calls fn for each key and a read-only view of its values in
// insertion order, holding the read lock for the whole traversal.
// Iteration stops when fn returns false. fn must not retain vals and must
// not call other methods of s that take the write lock.
func (s *Sync[K, V]) Range(fn func(key K, vals []V) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for k, vs := range s.otm.All() {
		if !fn(k, vs) {
			return
		}
	}
}

// Swap replaces the contents of s with an empty collection using the same
// options and returns the previous contents, now owned by the caller.
func (s *Sync[K, V]) Swap() *OTM[K, V] {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.otm
	s.otm = &OTM[K, V]{
		equal:  old.equal,
		logger: old.logger,
	}
	return old
}
