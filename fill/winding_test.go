package fill

import (
	"testing"

	"github.com/jianantian/lyon/options"
	"github.com/stretchr/testify/assert"
)

func TestRuleIsIn(t *testing.T) {
	tests := []struct {
		rule   options.FillRule
		number int
		want   bool
	}{
		{options.FillRuleEvenOdd, 0, false},
		{options.FillRuleEvenOdd, 1, true},
		{options.FillRuleEvenOdd, 2, false},
		{options.FillRuleEvenOdd, -1, true},
		{options.FillRuleEvenOdd, -2, false},
		{options.FillRuleNonZero, 0, false},
		{options.FillRuleNonZero, 1, true},
		{options.FillRuleNonZero, 2, true},
		{options.FillRuleNonZero, -1, true},
		{options.FillRuleNonZero, -2, true},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ruleIsIn(tc.rule, tc.number),
			"%s is_in(%d)", tc.rule, tc.number)
	}
}

func TestRuleTransition(t *testing.T) {
	assert.Equal(t, transitionIn, ruleTransition(options.FillRuleEvenOdd, 0, 1))
	assert.Equal(t, transitionOut, ruleTransition(options.FillRuleEvenOdd, 1, 2))
	assert.Equal(t, transitionNone, ruleTransition(options.FillRuleEvenOdd, 1, 3))
	assert.Equal(t, transitionNone, ruleTransition(options.FillRuleEvenOdd, 0, 2))

	assert.Equal(t, transitionIn, ruleTransition(options.FillRuleNonZero, 0, -1))
	assert.Equal(t, transitionNone, ruleTransition(options.FillRuleNonZero, 1, 2))
	assert.Equal(t, transitionOut, ruleTransition(options.FillRuleNonZero, -1, 0))
}

func TestUpdateWindingBumpsSpanIndexOnIn(t *testing.T) {
	w := windingState{spanIndex: -1}

	updateWinding(options.FillRuleEvenOdd, &w, 1)
	assert.Equal(t, transitionIn, w.transition)
	assert.Equal(t, 0, w.spanIndex)
	assert.Equal(t, 1, w.number)

	updateWinding(options.FillRuleEvenOdd, &w, 1)
	assert.Equal(t, transitionOut, w.transition)
	assert.Equal(t, 0, w.spanIndex)
	assert.Equal(t, 2, w.number)

	updateWinding(options.FillRuleEvenOdd, &w, -1)
	assert.Equal(t, transitionIn, w.transition)
	assert.Equal(t, 1, w.spanIndex)
	assert.Equal(t, 1, w.number)
}

func TestTransitionString(t *testing.T) {
	assert.Equal(t, "In", transitionIn.String())
	assert.Equal(t, "Out", transitionOut.String())
	assert.Equal(t, "None", transitionNone.String())
}

func TestSideOpposite(t *testing.T) {
	assert.Equal(t, sideRight, sideLeft.opposite())
	assert.Equal(t, sideLeft, sideRight.opposite())
	assert.Equal(t, "Left", sideLeft.String())
	assert.Equal(t, "Right", sideRight.String())
}
