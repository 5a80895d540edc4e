package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// OpKind identifies a workload operation.
type OpKind int

const (
	// OpInsert inserts a single value.
	OpInsert OpKind = iota
	// OpInsertMany inserts a batch of values (possibly empty).
	OpInsertMany
	// OpMerge merges a freshly built collection holding Batch entries.
	OpMerge
)

func (k OpKind) String() string {
	switch k {
	case OpInsert:
		return "insert"
	case OpInsertMany:
		return "insert_many"
	case OpMerge:
		return "merge"
	default:
		return "unknown"
	}
}

// Op is a single workload operation.
//
// For OpInsert, Values holds exactly one value. For OpMerge, Keys and Values
// are parallel: the merged collection receives Values[i] under Keys[i], in
// order.
type Op struct {
	Kind   OpKind
	Key    int
	Keys   []int
	Values []int
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
	next int
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
	r.next = 0
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Zipf returns a Zipfian-distributed value in [0, n).
// s=1.0 gives standard Zipf, larger s skews harder towards 0.
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1 // 0-indexed
		}
	}

	return n - 1
}

// Ops generates n operations over keys in [0, keySpace) with a Zipfian key
// skew, so a few keys collect most values. Values are unique and increasing,
// which makes ordering mistakes visible.
func (r *RNG) Ops(n, keySpace int) []Op {
	r.mu.Lock()
	defer r.mu.Unlock()

	ops := make([]Op, n)
	for i := range ops {
		switch p := r.rand.Intn(10); {
		case p < 6:
			ops[i] = Op{Kind: OpInsert, Key: r.zipfLocked(keySpace, 1.2), Values: r.valuesLocked(1)}
		case p < 9:
			ops[i] = Op{Kind: OpInsertMany, Key: r.zipfLocked(keySpace, 1.2), Values: r.valuesLocked(r.rand.Intn(4))}
		default:
			batch := r.rand.Intn(5)
			keys := make([]int, batch)
			for j := range keys {
				keys[j] = r.zipfLocked(keySpace, 1.2)
			}
			ops[i] = Op{Kind: OpMerge, Keys: keys, Values: r.valuesLocked(batch)}
		}
	}

	return ops
}

func (r *RNG) valuesLocked(n int) []int {
	vals := make([]int, n)
	for i := range vals {
		vals[i] = r.next
		r.next++
	}
	return vals
}

// Model is a map-backed reference for a one-to-many collection with int keys
// and values.
type Model struct {
	order  []int
	values map[int][]int
}

// NewModel creates an empty model.
func NewModel() *Model {
	return &Model{values: make(map[int][]int)}
}

func (m *Model) add(key int, vals ...int) {
	if _, ok := m.values[key]; !ok {
		m.order = append(m.order, key)
	}
	m.values[key] = append(m.values[key], vals...)
}

// Apply applies op to the model.
func (m *Model) Apply(op Op) {
	switch op.Kind {
	case OpInsert, OpInsertMany:
		m.add(op.Key, op.Values...)
	case OpMerge:
		// Group by key first, the way a built collection would hold them.
		other := NewModel()
		for i, k := range op.Keys {
			other.add(k, op.Values[i])
		}
		for _, k := range other.order {
			m.add(k, other.values[k]...)
		}
	}
}

// Get returns the expected values for key.
func (m *Model) Get(key int) []int {
	return m.values[key]
}

// Keys returns the expected keys in insertion order.
func (m *Model) Keys() []int {
	return m.order
}

// NumKeys returns the expected number of distinct keys.
func (m *Model) NumKeys() int {
	return len(m.order)
}
