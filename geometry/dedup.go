package geometry

import (
	"github.com/google/btree"
	"github.com/jianantian/lyon/point"
)

// vertexEntry associates a vertex position with the id it was first added
// under.
type vertexEntry struct {
	pos point.Point
	id  VertexID
}

// vertexEntryLess orders entries lexicographically by (y, x) so that entries
// at the exact same position compare equal and coalesce in the B-tree.
func vertexEntryLess(a, b vertexEntry) bool {
	if a.pos.Y() != b.pos.Y() {
		return a.pos.Y() < b.pos.Y()
	}
	return a.pos.X() < b.pos.X()
}

// dedupBuilder coalesces vertices at coincident positions, so a position
// emitted several times (for example once per tessellation event that lands
// on it) is stored once and shared by every referencing triangle.
type dedupBuilder struct {
	buffers *VertexBuffers
	index   *btree.BTreeG[vertexEntry]
}

// NewDedupBuilder returns a [Builder] that deduplicates vertices by exact
// position. Triangles are appended unchanged.
func NewDedupBuilder(buffers *VertexBuffers) Builder {
	return &dedupBuilder{
		buffers: buffers,
		index:   btree.NewG[vertexEntry](2, vertexEntryLess),
	}
}

func (b *dedupBuilder) BeginGeometry() {}

func (b *dedupBuilder) AddVertex(p point.Point) VertexID {
	if existing, ok := b.index.Get(vertexEntry{pos: p}); ok {
		return existing.id
	}
	id := VertexID(len(b.buffers.Vertices))
	b.buffers.Vertices = append(b.buffers.Vertices, p)
	b.index.ReplaceOrInsert(vertexEntry{pos: p, id: id})
	return id
}

func (b *dedupBuilder) AddTriangle(a, bb, c VertexID) {
	b.buffers.Indices = append(b.buffers.Indices, a, bb, c)
}

func (b *dedupBuilder) EndGeometry() {}
