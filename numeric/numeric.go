// Package numeric provides utility functions for numerical computations,
// particularly focused on handling floating-point precision issues.
//
// # Overview
//
// The numeric package contains a small set of helper functions for the
// numerical operations that arise in computational geometry: absolute value
// computation and floating-point comparisons with epsilon tolerance.
//
// An epsilon of zero makes every comparison exact, so callers that do not
// opt into a tolerance get bit-for-bit float semantics.
package numeric
