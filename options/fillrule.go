package options

import "fmt"

// FillRule selects the winding rule used to decide which regions enclosed by a
// path are considered inside.
type FillRule uint8

const (
	// FillRuleEvenOdd fills a point when its winding number is odd.
	FillRuleEvenOdd FillRule = iota

	// FillRuleNonZero fills a point when its winding number is not zero.
	FillRuleNonZero
)

// String returns a human-readable name for the fill rule.
func (r FillRule) String() string {
	switch r {
	case FillRuleEvenOdd:
		return "EvenOdd"
	case FillRuleNonZero:
		return "NonZero"
	default:
		return fmt.Sprintf("FillRule(%d)", uint8(r))
	}
}

// WithFillRule returns a [GeometryOptionsFunc] that sets the fill rule for
// operations that fill paths.
func WithFillRule(rule FillRule) GeometryOptionsFunc {
	return func(opts *GeometryOptions) {
		opts.FillRule = rule
	}
}
