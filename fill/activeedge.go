package fill

import (
	"github.com/jianantian/lyon/geometry"
	"github.com/jianantian/lyon/point"
)

// activeEdge is an edge currently crossed by the sweep line. It is inserted
// when the sweep reaches its upper endpoint and removed when it reaches the
// lower one.
//
// With isMerge set, the entry is a merge placeholder instead: from holds the
// merge vertex's position and id, the remaining fields are meaningless, and
// the entry keeps the slot between the two spans that met at the merge until
// a later event below absorbs it.
type activeEdge struct {
	from point.Point
	to   point.Point
	ctrl point.Point

	winding int
	isMerge bool

	fromID geometry.VertexID
	ctrlID geometry.VertexID
	toID   geometry.VertexID
}

// solveXForY returns the x coordinate at which the edge crosses the
// horizontal line at y, approximating the edge as the straight segment from
// its endpoints.
// TODO: solve on the monotonic quadratic when a control point is present.
func (e *activeEdge) solveXForY(y float64) float64 {
	dy := e.to.Y() - e.from.Y()
	if dy == 0 {
		return e.from.X()
	}
	tt := (y - e.from.Y()) / dy
	return e.from.X() + (e.to.X()-e.from.X())*tt
}

// pendingEdge is an edge starting at the current sweep position and
// descending to an endpoint below it. Pending edges exist only while one
// event position is being processed; they become active edges afterwards.
type pendingEdge struct {
	to   point.Point
	ctrl point.Point

	// angle of the edge direction from the positive x axis, in radians.
	angle float64

	fromID geometry.VertexID
	ctrlID geometry.VertexID
	toID   geometry.VertexID

	winding int
}
