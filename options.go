package lkv

// Options configures a collection at construction time.
type Options[K any] struct {
	// Capacity preallocates room for this many distinct keys.
	// Negative values are treated as 0.
	Capacity int

	// Equal reports whether two keys are the same key. If nil, keys are
	// compared with ==.
	//
	// Equal must be reflexive and symmetric. The key stored for an entry is
	// always the first one inserted.
	Equal func(a, b K) bool

	// Logger receives debug records for bulk operations (Merge, Drain).
	// If nil, nothing is logged.
	Logger *Logger
}

// DefaultOptions returns the options used by New when no option functions
// are given.
func DefaultOptions[K any]() Options[K] {
	return Options[K]{
		Capacity: 0,
		Equal:    nil,
		Logger:   nil,
	}
}
