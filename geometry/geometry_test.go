package geometry

import (
	"testing"

	"github.com/jianantian/lyon/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleBuilderAppends(t *testing.T) {
	var buffers VertexBuffers
	b := NewSimpleBuilder(&buffers)

	b.BeginGeometry()
	a := b.AddVertex(point.New(0, 0))
	bb := b.AddVertex(point.New(1, 0))
	c := b.AddVertex(point.New(0, 0)) // duplicate position, stored twice
	b.AddTriangle(a, bb, c)
	b.EndGeometry()

	assert.Equal(t, VertexID(0), a)
	assert.Equal(t, VertexID(1), bb)
	assert.Equal(t, VertexID(2), c)
	assert.Len(t, buffers.Vertices, 3)
	assert.Equal(t, []VertexID{0, 1, 2}, buffers.Indices)
	assert.Equal(t, 1, buffers.TriangleCount())
}

func TestDedupBuilderCoalescesCoincidentVertices(t *testing.T) {
	var buffers VertexBuffers
	b := NewDedupBuilder(&buffers)

	b.BeginGeometry()
	a := b.AddVertex(point.New(0, 0))
	bb := b.AddVertex(point.New(1, 0))
	c := b.AddVertex(point.New(0, 0))
	d := b.AddVertex(point.New(0, 1))
	b.AddTriangle(a, bb, d)
	b.EndGeometry()

	assert.Equal(t, a, c, "coincident positions share an id")
	require.Len(t, buffers.Vertices, 3)
	assert.Equal(t, point.New(0, 0), buffers.Vertices[0])
	assert.Equal(t, point.New(1, 0), buffers.Vertices[1])
	assert.Equal(t, point.New(0, 1), buffers.Vertices[2])
	assert.Equal(t, 1, buffers.TriangleCount())
}

func TestVertexBuffersClear(t *testing.T) {
	var buffers VertexBuffers
	b := NewSimpleBuilder(&buffers)
	b.AddVertex(point.New(1, 2))
	b.AddTriangle(0, 0, 0)

	buffers.Clear()
	assert.Empty(t, buffers.Vertices)
	assert.Empty(t, buffers.Indices)
	assert.Equal(t, 0, buffers.TriangleCount())
}
