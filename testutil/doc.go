// Package testutil provides testing utilities for lkv.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating seeded random workloads and a naive
// reference model to check the linear containers against.
//
// # Random Workloads
//
//	rng := testutil.NewRNG(seed)
//	ops := rng.Ops(1000, 16)  // 1000 operations over 16 keys
//
// # Reference Model
//
//	model := testutil.NewModel()
//	for _, op := range ops {
//	    model.Apply(op)
//	}
//	model.Get(key) // expected values for key
package testutil
