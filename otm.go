package lkv

import (
	"context"
	"iter"
	"slices"
)

// Entry is a key together with all values inserted for it.
type Entry[K comparable, V any] struct {
	Key    K
	Values []V
}

// OTM is a one-to-many collection: each key maps to an ordered list of values.
// Values may occur more than once for each key.
//
// Entries are kept in a plain slice in first-insert order and every keyed
// operation scans it linearly. Prefer a map for large key counts.
//
// An OTM is not safe for concurrent use. It may be handed off between
// goroutines, but shared access requires external synchronization (see Sync).
//
// The zero value is an empty collection that compares keys with ==.
type OTM[K comparable, V any] struct {
	entries []Entry[K, V]
	equal   func(a, b K) bool
	logger  *Logger
}

// New creates a new empty collection.
func New[K comparable, V any](optFns ...func(o *Options[K])) *OTM[K, V] {
	opts := DefaultOptions[K]()
	for _, fn := range optFns {
		fn(&opts)
	}

	return &OTM[K, V]{
		entries: make([]Entry[K, V], 0, max(opts.Capacity, 0)),
		equal:   opts.Equal,
		logger:  opts.Logger,
	}
}

// index returns the position of the entry for key, or -1.
func (m *OTM[K, V]) index(key K) int {
	if m.equal == nil {
		for i := range m.entries {
			if m.entries[i].Key == key {
				return i
			}
		}
		return -1
	}

	for i := range m.entries {
		if m.equal(m.entries[i].Key, key) {
			return i
		}
	}
	return -1
}

// Insert appends val to the values of key, creating the entry if needed.
func (m *OTM[K, V]) Insert(key K, val V) {
	if i := m.index(key); i >= 0 {
		m.entries[i].Values = append(m.entries[i].Values, val)
		return
	}

	m.entries = append(m.entries, Entry[K, V]{Key: key, Values: []V{val}})
}

// InsertMany appends all vals to key in order, including duplicates.
// vals is copied; the caller keeps ownership of it.
func (m *OTM[K, V]) InsertMany(key K, vals ...V) {
	m.extend(key, slices.Clone(vals))
}

// extend appends vals to key. A new entry adopts vals as its storage, so
// vals must not be referenced anywhere else.
func (m *OTM[K, V]) extend(key K, vals []V) {
	if i := m.index(key); i >= 0 {
		m.entries[i].Values = append(m.entries[i].Values, vals...)
		return
	}

	m.entries = append(m.entries, Entry[K, V]{Key: key, Values: vals})
}

// Get returns the values associated with key, or an empty slice if no entry
// exists. The slice is a view into the collection and must not be modified;
// use GetMut for that.
func (m *OTM[K, V]) Get(key K) []V {
	if i := m.index(key); i >= 0 {
		return slices.Clip(m.entries[i].Values)
	}
	return nil
}

// GetMut is identical to Get, but writes to the returned elements are
// visible to later lookups. The view has a fixed length: appending to it
// reallocates and leaves the collection untouched.
func (m *OTM[K, V]) GetMut(key K) []V {
	if i := m.index(key); i >= 0 {
		return slices.Clip(m.entries[i].Values)
	}
	return nil
}

// Contains reports whether an entry exists for key.
func (m *OTM[K, V]) Contains(key K) bool {
	return m.index(key) >= 0
}

// Merge moves every entry of other into m, in other's insertion order,
// including duplicates. Values of shared keys are appended after m's own;
// values of new keys are moved without copying. other is left empty. Merging nil or m into itself does nothing.
func (m *OTM[K, V]) Merge(other *OTM[K, V]) {
	if other == nil || other == m {
		return
	}

	entries := other.entries
	other.entries = nil

	// other no longer references entries, so new keys adopt their values.
	before := len(m.entries)
	for _, e := range entries {
		m.extend(e.Key, e.Values)
	}

	if m.logger != nil {
		m.logger.LogMerge(context.Background(), len(entries), len(m.entries)-before)
	}
}

// NumKeys returns the number of distinct keys.
func (m *OTM[K, V]) NumKeys() int {
	return len(m.entries)
}

// Len returns the total number of values across all keys.
func (m *OTM[K, V]) Len() int {
	n := 0
	for i := range m.entries {
		n += len(m.entries[i].Values)
	}
	return n
}

// Keys returns an iterator over the keys in insertion order.
func (m *OTM[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := range m.entries {
			if !yield(m.entries[i].Key) {
				return
			}
		}
	}
}

// All returns an iterator over keys and read-only views of their values,
// in insertion order.
func (m *OTM[K, V]) All() iter.Seq2[K, []V] {
	return func(yield func(K, []V) bool) {
		for i := range m.entries {
			if !yield(m.entries[i].Key, slices.Clip(m.entries[i].Values)) {
				return
			}
		}
	}
}

// AllMut returns an iterator over keys and mutable views of their values,
// in insertion order. The collection must not be modified structurally
// (Insert, InsertMany, Merge) while iterating.
func (m *OTM[K, V]) AllMut() iter.Seq2[K, []V] {
	return func(yield func(K, []V) bool) {
		for i := range m.entries {
			if !yield(m.entries[i].Key, slices.Clip(m.entries[i].Values)) {
				return
			}
		}
	}
}

// Drain returns an iterator that consumes the collection, yielding its
// entries in insertion order. The collection is emptied as soon as iteration
// starts and the yielded slices are owned by the caller. Entries not reached
// because iteration stopped early are discarded.
func (m *OTM[K, V]) Drain() iter.Seq2[K, []V] {
	return func(yield func(K, []V) bool) {
		entries := m.entries
		m.entries = nil

		if m.logger != nil {
			m.logger.LogDrain(context.Background(), len(entries))
		}

		for _, e := range entries {
			if !yield(e.Key, e.Values) {
				return
			}
		}
	}
}
