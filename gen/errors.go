package gen

import "errors"

// ErrTooFewNodes indicates a size parameter (n, rows, cols, degree) is
// smaller than the topology's minimum.
var ErrTooFewNodes = errors.New("gen: parameter too small")

// ErrInvalidProbability indicates a probability argument is outside [0,1].
var ErrInvalidProbability = errors.New("gen: probability out of range")

// ErrNeedRandSource indicates a stochastic generator was invoked
// without an RNG (WithSeed/WithRand) while true randomness is required.
var ErrNeedRandSource = errors.New("gen: rng is required")

// ErrUnsupportedGraphMode indicates the requested topology is
// incompatible with the target graph's mode (e.g. RandomRegular
// against a directed graph).
var ErrUnsupportedGraphMode = errors.New("gen: unsupported graph mode")

// ErrConstructFailed indicates a generator exhausted its retries (or
// the target storage rejected an edge under its own loop/multi-edge
// policy) without producing a valid topology.
var ErrConstructFailed = errors.New("gen: construction failed")
