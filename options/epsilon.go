package options

// WithEpsilon returns a [GeometryOptionsFunc] that sets the Epsilon value for functions
// that support it. Epsilon is a small positive value used to adjust for floating-point
// precision errors, ensuring numerical stability in geometric calculations.
//
// If a negative epsilon is provided, it will default to 0 (no adjustment).
// If not set (default), Epsilon remains 0, and no adjustment is applied.
func WithEpsilon(epsilon float64) GeometryOptionsFunc {
	return func(opts *GeometryOptions) {
		if epsilon < 0 {
			epsilon = 0 // Default to no adjustment
		}
		opts.Epsilon = epsilon
	}
}
