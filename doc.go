// Package lkv provides small generic key-value containers with linear lookup.
//
// Keys and values are stored in plain slices and every keyed operation scans
// them in order. For applications expecting lots of data the built-in map
// should be preferred; for a handful of keys a scan is cheaper than hashing
// and keeps iteration in insertion order.
//
// # One-To-Many
//
// OTM maps each key to an ordered list of values. Values may repeat:
//
//	otm := lkv.New[string, string]()
//	otm.Insert("example", "hello")
//	otm.Insert("example", "world")
//	otm.Get("example") // [hello world]
//
// Keys only need to support ==. A custom equality can be configured:
//
//	otm := lkv.New[string, int](func(o *lkv.Options[string]) {
//	    o.Equal = strings.EqualFold
//	})
//
// Missing keys are never an error; lookups return an empty slice.
//
// # Iteration
//
// All, AllMut and Drain iterate entries in first-insert order:
//
//	for key, vals := range otm.All() { ... }    // read-only views
//	for _, vals := range otm.AllMut() { ... }   // writes visible via Get
//	for key, vals := range otm.Drain() { ... }  // consumes otm
//
// # Concurrency
//
// An OTM is exclusively owned. It may be passed between goroutines but must
// not be used by more than one at a time. Sync wraps an OTM in a
// sync.RWMutex for shared use.
package lkv
