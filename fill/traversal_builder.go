package fill

import (
	"math"

	"github.com/jianantian/lyon/geometry"
	"github.com/jianantian/lyon/path"
	"github.com/jianantian/lyon/point"
)

// edgeData is the edge record attached to each traversal event: the vertex
// ids of the edge's upper, control and lower points, and the winding sign
// (+1 when the path ran upper to lower, -1 otherwise). A record with all ids
// invalid and winding 0 marks a synthetic vertex-only event.
type edgeData struct {
	from    geometry.VertexID
	ctrl    geometry.VertexID
	to      geometry.VertexID
	winding int
}

// traversalBuilder translates a path into a traversal event set plus one
// edge record per event, in a single pass over the path's segments.
//
// Each segment yields one event at its upper endpoint. Additionally, a
// vertex-only event is emitted at every local maximum (a vertex after both
// of its neighbours) so the sweep visits positions where spans close even
// though no edge starts there.
type traversalBuilder struct {
	current   point.Point
	currentID geometry.VertexID
	first     point.Point
	firstID   geometry.VertexID
	prev      point.Point
	second    point.Point
	nth       int
	tx        *Traversal
	edgeData  []edgeData
}

func newTraversalBuilder(capacity int) *traversalBuilder {
	nan := point.New(math.NaN(), math.NaN())
	return &traversalBuilder{
		current:   nan,
		first:     nan,
		prev:      nan,
		second:    nan,
		currentID: geometry.Invalid,
		firstID:   geometry.Invalid,
		tx:        NewTraversalWithCapacity(capacity),
		edgeData:  make([]edgeData, 0, capacity),
	}
}

func (b *traversalBuilder) setPath(p *path.Path) {
	for _, ev := range p.Events() {
		switch ev.Verb {
		case path.VerbMoveTo:
			b.moveTo(ev.To, geometry.VertexID(ev.ToIdx))
		case path.VerbLineTo:
			b.lineTo(ev.To, geometry.VertexID(ev.ToIdx))
		case path.VerbQuadraticTo:
			b.quadTo(ev.To, geometry.VertexID(ev.CtrlIdx), geometry.VertexID(ev.ToIdx))
		case path.VerbClose:
			b.close()
		}
	}
	b.close()
}

func (b *traversalBuilder) vertexEvent(at point.Point) {
	b.tx.Push(at)
	b.edgeData = append(b.edgeData, edgeData{
		from: geometry.Invalid,
		ctrl: geometry.Invalid,
		to:   geometry.Invalid,
	})
}

func (b *traversalBuilder) close() {
	if b.nth == 0 {
		return
	}

	// Unless we are already back at the first point we need to insert the
	// closing edge.
	first := b.first
	if !b.current.Eq(first) {
		b.lineTo(first, b.firstID)
	}

	// The vertex-event check needs a previous edge, so it was skipped for
	// the first edge; do it now that the contour has wrapped around.
	if isAfter(b.first, b.prev) && isAfter(b.first, b.second) {
		b.vertexEvent(first)
	}

	b.nth = 0
}

func (b *traversalBuilder) moveTo(to point.Point, toID geometry.VertexID) {
	if b.nth > 0 {
		b.close()
	}

	b.nth = 0
	b.first = to
	b.current = to
	b.firstID = toID
	b.currentID = toID
}

func (b *traversalBuilder) lineTo(to point.Point, toID geometry.VertexID) {
	b.quadTo(to, geometry.Invalid, toID)
}

func (b *traversalBuilder) quadTo(to point.Point, ctrlID, toID geometry.VertexID) {
	if b.current.Eq(to) {
		return
	}

	nextID := toID
	from := b.current
	fromID := b.currentID
	winding := 1
	if isAfter(from, to) {
		if b.nth > 0 && isAfter(from, b.prev) {
			b.vertexEvent(from)
		}

		from = to
		fromID, toID = toID, fromID
		winding = -1
	}

	b.tx.Push(from)
	b.edgeData = append(b.edgeData, edgeData{
		from:    fromID,
		ctrl:    ctrlID,
		to:      toID,
		winding: winding,
	})

	if b.nth == 0 {
		b.second = to
	}

	b.nth++
	b.prev = b.current
	b.current = to
	b.currentID = nextID
}

func (b *traversalBuilder) build() (*Traversal, []edgeData) {
	b.close()
	b.tx.Sort()
	return b.tx, b.edgeData
}
