package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyGeometryOptions(t *testing.T) {
	opts := ApplyGeometryOptions(GeometryOptions{})
	assert.Equal(t, 0.0, opts.Epsilon)
	assert.Equal(t, FillRuleEvenOdd, opts.FillRule)

	opts = ApplyGeometryOptions(GeometryOptions{}, WithEpsilon(1e-6), WithFillRule(FillRuleNonZero))
	assert.Equal(t, 1e-6, opts.Epsilon)
	assert.Equal(t, FillRuleNonZero, opts.FillRule)
}

func TestWithEpsilonNegativeClampsToZero(t *testing.T) {
	opts := ApplyGeometryOptions(GeometryOptions{}, WithEpsilon(-1))
	assert.Equal(t, 0.0, opts.Epsilon)
}

func TestFillRuleString(t *testing.T) {
	assert.Equal(t, "EvenOdd", FillRuleEvenOdd.String())
	assert.Equal(t, "NonZero", FillRuleNonZero.String())
	assert.Equal(t, "FillRule(7)", FillRule(7).String())
}
