package numeric

import "math"

// Abs computes the absolute value of a float64.
func Abs(n float64) float64 {
	if n < 0 {
		return -n
	}
	return n
}

// FloatEquals returns true if a and b are equal within a small epsilon threshold.
// An epsilon of zero requires exact equality.
func FloatEquals(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

// FloatGreaterThan checks if 'a' is significantly greater than 'b'.
func FloatGreaterThan(a, b, epsilon float64) bool {
	return a > b && !FloatEquals(a, b, epsilon)
}

// FloatGreaterThanOrEqualTo checks if 'a' is greater than or equal to 'b'.
func FloatGreaterThanOrEqualTo(a, b, epsilon float64) bool {
	return a > b || FloatEquals(a, b, epsilon)
}

// FloatLessThan checks if 'a' is significantly less than 'b'.
func FloatLessThan(a, b, epsilon float64) bool {
	return a < b && !FloatEquals(a, b, epsilon)
}

// FloatLessThanOrEqualTo checks if 'a' is less than or equal to 'b'.
func FloatLessThanOrEqualTo(a, b, epsilon float64) bool {
	return a < b || FloatEquals(a, b, epsilon)
}
