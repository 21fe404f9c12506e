package point

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/jianantian/lyon/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorOps(t *testing.T) {
	a := New(1, 2)
	b := New(3, -4)

	assert.Equal(t, New(4, -2), a.Add(b))
	assert.Equal(t, New(-2, 6), a.Sub(b))
	assert.Equal(t, New(-1, -2), a.Negate())
	assert.Equal(t, New(4, -2), a.Translate(b))
	assert.Equal(t, -10.0, a.CrossProduct(b))
	assert.Equal(t, -5.0, a.DotProduct(b))
}

func TestDistance(t *testing.T) {
	a := New(0, 0)
	b := New(3, 4)
	assert.Equal(t, 25.0, a.DistanceSquaredToPoint(b))
	assert.Equal(t, 5.0, a.DistanceToPoint(b))
}

func TestAngleFromXAxis(t *testing.T) {
	tests := map[string]struct {
		p    Point
		want float64
	}{
		"positive x axis": {New(1, 0), 0},
		"positive y axis": {New(0, 1), math.Pi / 2},
		"negative x axis": {New(-1, 0), math.Pi},
		"diagonal":        {New(1, 1), math.Pi / 4},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.p.AngleFromXAxis(), 1e-12)
		})
	}
}

func TestEq(t *testing.T) {
	a := New(1, 1)
	assert.True(t, a.Eq(New(1, 1)))
	assert.False(t, a.Eq(New(1, 1.0000001)))
	assert.True(t, a.Eq(New(1, 1.0000001), options.WithEpsilon(1e-6)))
	assert.False(t, a.Eq(New(1, 1.1), options.WithEpsilon(1e-6)))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, New(1, 2).IsFinite())
	assert.False(t, New(math.NaN(), 0).IsFinite())
	assert.False(t, New(0, math.Inf(1)).IsFinite())
	assert.False(t, New(math.Inf(-1), 0).IsFinite())
}

func TestJSONRoundTrip(t *testing.T) {
	a := New(1.5, -2.25)
	data, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":1.5,"y":-2.25}`, string(data))

	var b Point
	require.NoError(t, json.Unmarshal(data, &b))
	assert.Equal(t, a, b)
}

func TestCoordinatesAndAccessors(t *testing.T) {
	p := New(3, 7)
	x, y := p.Coordinates()
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 7.0, y)
	assert.Equal(t, 3.0, p.X())
	assert.Equal(t, 7.0, p.Y())
	assert.Equal(t, "(3.000000,7.000000)", p.String())
}
