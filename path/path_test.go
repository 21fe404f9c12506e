package path

import (
	"testing"

	"github.com/jianantian/lyon/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderEvents(t *testing.T) {
	p := NewBuilder().
		MoveTo(point.New(0, 0)).
		LineTo(point.New(5, 1)).
		QuadraticTo(point.New(4, 3), point.New(3, 5)).
		Close().
		Build()

	require.Equal(t, 4, p.Len())

	events := p.Events()
	require.Len(t, events, 4)

	assert.Equal(t, VerbMoveTo, events[0].Verb)
	assert.Equal(t, point.New(0, 0), events[0].To)
	assert.Equal(t, 0, events[0].ToIdx)
	assert.Equal(t, -1, events[0].CtrlIdx)

	assert.Equal(t, VerbLineTo, events[1].Verb)
	assert.Equal(t, point.New(5, 1), events[1].To)
	assert.Equal(t, 1, events[1].ToIdx)

	assert.Equal(t, VerbQuadraticTo, events[2].Verb)
	assert.Equal(t, point.New(4, 3), events[2].Ctrl)
	assert.Equal(t, 2, events[2].CtrlIdx)
	assert.Equal(t, point.New(3, 5), events[2].To)
	assert.Equal(t, 3, events[2].ToIdx)

	assert.Equal(t, VerbClose, events[3].Verb)
	assert.Equal(t, -1, events[3].ToIdx)

	// Vertex indices resolve through Pos.
	assert.Equal(t, point.New(4, 3), p.Pos(events[2].CtrlIdx))
	assert.Equal(t, point.New(3, 5), p.Pos(events[2].ToIdx))
}

func TestBuilderIsReusable(t *testing.T) {
	b := NewBuilder()
	first := b.MoveTo(point.New(0, 0)).LineTo(point.New(1, 0)).Close().Build()
	second := b.MoveTo(point.New(2, 2)).Build()

	assert.Equal(t, 2, first.Len())
	assert.Equal(t, 1, second.Len())
	assert.Equal(t, point.New(2, 2), second.Pos(0))
}

func TestParse(t *testing.T) {
	tests := map[string]struct {
		data      string
		wantVerbs []Verb
		wantPts   []point.Point
	}{
		"triangle": {
			data:      "M 0 0 L 5 1 L 3 5 Z",
			wantVerbs: []Verb{VerbMoveTo, VerbLineTo, VerbLineTo, VerbClose},
			wantPts:   []point.Point{point.New(0, 0), point.New(5, 1), point.New(3, 5)},
		},
		"implicit line-to after move-to": {
			data:      "M 0 0 1 1 0 2 Z",
			wantVerbs: []Verb{VerbMoveTo, VerbLineTo, VerbLineTo, VerbClose},
			wantPts:   []point.Point{point.New(0, 0), point.New(1, 1), point.New(0, 2)},
		},
		"commas and negatives": {
			data:      "M20,-1 L25,1 L25,9 z",
			wantVerbs: []Verb{VerbMoveTo, VerbLineTo, VerbLineTo, VerbClose},
			wantPts:   []point.Point{point.New(20, -1), point.New(25, 1), point.New(25, 9)},
		},
		"relative commands": {
			data:      "m 1 1 l 2 0 l 0 2 z",
			wantVerbs: []Verb{VerbMoveTo, VerbLineTo, VerbLineTo, VerbClose},
			wantPts:   []point.Point{point.New(1, 1), point.New(3, 1), point.New(3, 3)},
		},
		"quadratic": {
			data:      "M 0 0 Q 1 2 2 0 Z",
			wantVerbs: []Verb{VerbMoveTo, VerbQuadraticTo, VerbClose},
			wantPts:   []point.Point{point.New(0, 0), point.New(1, 2), point.New(2, 0)},
		},
		"two contours": {
			data:      "M 0 0 L 1 1 L 0 2 Z M 2 0 L 3 1 L 2 2 Z",
			wantVerbs: []Verb{VerbMoveTo, VerbLineTo, VerbLineTo, VerbClose, VerbMoveTo, VerbLineTo, VerbLineTo, VerbClose},
			wantPts: []point.Point{
				point.New(0, 0), point.New(1, 1), point.New(0, 2),
				point.New(2, 0), point.New(3, 1), point.New(2, 2),
			},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			p, err := Parse(tc.data)
			require.NoError(t, err)
			assert.Equal(t, tc.wantVerbs, p.verbs)
			assert.Equal(t, tc.wantPts, p.points)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"no leading command": "0 0 L 1 1",
		"unsupported cubic":  "M 0 0 C 1 1 2 2 3 3 Z",
		"truncated point":    "M 0",
		"garbage number":     "M 0 0 L x y",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(data)
			assert.Error(t, err)
		})
	}
}

func TestVerbString(t *testing.T) {
	assert.Equal(t, "MoveTo", VerbMoveTo.String())
	assert.Equal(t, "LineTo", VerbLineTo.String())
	assert.Equal(t, "QuadraticTo", VerbQuadraticTo.String())
	assert.Equal(t, "Close", VerbClose.String())
}
