package fill

import "github.com/jianantian/lyon/options"

// transition records a change of fill-rule membership as the sweep walks
// left to right across the edges at one event position.
type transition uint8

const (
	transitionNone transition = iota
	transitionIn
	transitionOut
)

func (t transition) String() string {
	switch t {
	case transitionIn:
		return "In"
	case transitionOut:
		return "Out"
	default:
		return "None"
	}
}

// windingState accumulates the running winding number during one event. The
// span index starts at -1 so that entering the first span (of index 0)
// increments it to zero; after walking all edges left of a point it equals
// the index of the span the point lies in, or -1 outside all spans.
type windingState struct {
	spanIndex  int
	number     int
	transition transition
}

// ruleIsIn reports whether a winding number is inside the fill.
func ruleIsIn(rule options.FillRule, windingNumber int) bool {
	switch rule {
	case options.FillRuleNonZero:
		return windingNumber != 0
	default:
		return windingNumber%2 != 0
	}
}

// ruleTransition classifies the membership change between two winding
// numbers.
func ruleTransition(rule options.FillRule, prevWinding, newWinding int) transition {
	prevIn := ruleIsIn(rule, prevWinding)
	newIn := ruleIsIn(rule, newWinding)
	switch {
	case !prevIn && newIn:
		return transitionIn
	case prevIn && !newIn:
		return transitionOut
	default:
		return transitionNone
	}
}

// updateWinding adds an edge's winding to the running state, records the
// resulting transition, and bumps the span index on In.
func updateWinding(rule options.FillRule, winding *windingState, edgeWinding int) {
	prev := winding.number
	winding.number += edgeWinding
	winding.transition = ruleTransition(rule, prev, winding.number)
	if winding.transition == transitionIn {
		winding.spanIndex++
	}
}
