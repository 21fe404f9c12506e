// Package geometry defines the output capability of the tessellators: a
// builder that accumulates vertices and triangles, and the vertex-buffer
// containers the built-in builders write into.
package geometry

import (
	"math"

	"github.com/jianantian/lyon/point"
)

// VertexID is an opaque handle to a vertex added to a [Builder].
type VertexID uint32

// Invalid is the reserved sentinel VertexID. Builders never return it.
const Invalid VertexID = math.MaxUint32

// Builder is the capability the tessellators write their output through.
//
// BeginGeometry is called once before any vertex or triangle, EndGeometry
// once after the last. AddVertex returns the id later used to reference the
// vertex in triangles.
type Builder interface {
	BeginGeometry()
	AddVertex(p point.Point) VertexID
	AddTriangle(a, b, c VertexID)
	EndGeometry()
}

// VertexBuffers holds tessellation output as a vertex array plus a triangle
// index list. Every three consecutive indices describe one triangle.
type VertexBuffers struct {
	Vertices []point.Point
	Indices  []VertexID
}

// TriangleCount returns the number of triangles described by the index list.
func (vb *VertexBuffers) TriangleCount() int {
	return len(vb.Indices) / 3
}

// Clear empties the buffers, retaining their capacity.
func (vb *VertexBuffers) Clear() {
	vb.Vertices = vb.Vertices[:0]
	vb.Indices = vb.Indices[:0]
}

// simpleBuilder appends every vertex unconditionally.
type simpleBuilder struct {
	buffers *VertexBuffers
}

// NewSimpleBuilder returns a [Builder] that appends each vertex and triangle
// to the given buffers as-is.
func NewSimpleBuilder(buffers *VertexBuffers) Builder {
	return &simpleBuilder{buffers: buffers}
}

func (b *simpleBuilder) BeginGeometry() {}

func (b *simpleBuilder) AddVertex(p point.Point) VertexID {
	id := VertexID(len(b.buffers.Vertices))
	b.buffers.Vertices = append(b.buffers.Vertices, p)
	return id
}

func (b *simpleBuilder) AddTriangle(a, bb, c VertexID) {
	b.buffers.Indices = append(b.buffers.Indices, a, bb, c)
}

func (b *simpleBuilder) EndGeometry() {}
