package fill

import (
	"slices"

	"github.com/jianantian/lyon/geometry"
	"github.com/jianantian/lyon/point"
)

// side tags a span boundary vertex as belonging to the left or right chain
// of the monotone polygon being accumulated.
type side uint8

const (
	sideLeft side = iota
	sideRight
)

func (s side) opposite() side {
	if s == sideLeft {
		return sideRight
	}
	return sideLeft
}

func (s side) String() string {
	if s == sideLeft {
		return "Left"
	}
	return "Right"
}

// span is one currently open monotone region between two adjacent "inside"
// active edges. remove marks it for deletion in the cleanup pass at the end
// of event processing.
type span struct {
	tess   *monotoneTessellator
	remove bool
}

// spanList is the ordered list of open spans, left to right.
type spanList struct {
	spans []span
}

// beginSpan opens a new span at the given index, anchored at position.
func (s *spanList) beginSpan(spanIdx int, position point.Point, vertex geometry.VertexID) {
	if spanIdx < 0 || spanIdx > len(s.spans) {
		return
	}
	s.spans = slices.Insert(s.spans, spanIdx, span{
		tess: newMonotoneTessellator().begin(position, vertex),
	})
}

// endSpan closes the span at the given index: both its boundary chains meet
// at position, and the accumulated triangles are flushed to the output.
func (s *spanList) endSpan(spanIdx int, position point.Point, id geometry.VertexID, output geometry.Builder) {
	if spanIdx < 0 || spanIdx >= len(s.spans) {
		return
	}
	sp := &s.spans[spanIdx]
	sp.remove = true
	sp.tess.end(position, id)
	sp.tess.flush(output)
}

// splitSpan splits the span at spanIdx in two at the split vertex.
//
//	       /....
//	a --> x.....
//	     /.\....
//	    /...x... <-- current split vertex
//	   /.../ \..
//
// A new span is inserted to the left of the existing one, initialised at the
// upper vertex a; the split vertex becomes the new span's right boundary and
// the old span's left boundary.
func (s *spanList) splitSpan(spanIdx int, splitPosition point.Point, splitID geometry.VertexID, aPosition point.Point, aID geometry.VertexID) {
	if spanIdx < 0 || spanIdx >= len(s.spans) {
		return
	}
	s.spans = slices.Insert(s.spans, spanIdx, span{
		tess: newMonotoneTessellator().begin(aPosition, aID),
	})
	s.spans[spanIdx].tess.vertex(splitPosition, splitID, sideRight)
	s.spans[spanIdx+1].tess.vertex(splitPosition, splitID, sideLeft)
}

// mergeSpans resolves a merge vertex: the merge position is fed to the spans
// on both sides of the placeholder, and the left span is closed at the
// current position.
//
//	\...\ /.
//	 \...x..  <-- merge vertex
//	  \./...  <-- active edge
//	   x....  <-- current vertex
func (s *spanList) mergeSpans(spanIdx int, currentPosition point.Point, currentVertex geometry.VertexID, mergePosition point.Point, mergeVertex geometry.VertexID, output geometry.Builder) {
	if spanIdx < 0 || len(s.spans) <= spanIdx+1 {
		// The sweep line order went invalid under numerical error; skip the
		// merge. Recovering fully would take a resort of the affected range.
		return
	}

	s.spans[spanIdx].tess.vertex(mergePosition, mergeVertex, sideRight)
	s.spans[spanIdx+1].tess.vertex(mergePosition, mergeVertex, sideLeft)

	s.endSpan(spanIdx, currentPosition, currentVertex, output)
}

// cleanupSpans removes the spans that were marked for removal.
func (s *spanList) cleanupSpans() {
	s.spans = slices.DeleteFunc(s.spans, func(sp span) bool { return sp.remove })
}
