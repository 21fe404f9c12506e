// Package path provides the path data structure consumed by the fill
// tessellator: a flat sequence of move/line/quadratic/close commands over an
// indexed vertex array.
//
// Paths are immutable once built. Use [Builder] to construct one, or [Parse]
// to read a subset of SVG path data. Cubic Béziers are not stored; callers
// are expected to approximate them with monotonic quadratics before building
// the path.
package path

import (
	"github.com/jianantian/lyon/point"
)

// Verb identifies a path command.
type Verb uint8

const (
	// VerbMoveTo starts a new contour at a point.
	VerbMoveTo Verb = iota
	// VerbLineTo draws a straight line to a point.
	VerbLineTo
	// VerbQuadraticTo draws a quadratic Bézier curve to a point through a
	// control point.
	VerbQuadraticTo
	// VerbClose closes the current contour back to its first point.
	VerbClose
)

// String returns a human-readable name for the verb.
func (v Verb) String() string {
	switch v {
	case VerbMoveTo:
		return "MoveTo"
	case VerbLineTo:
		return "LineTo"
	case VerbQuadraticTo:
		return "QuadraticTo"
	case VerbClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// Event is one decoded path command. To is the command endpoint and ToIdx its
// index in the path's vertex array. For quadratic segments Ctrl/CtrlIdx
// describe the control point; for other verbs CtrlIdx is -1. Close events
// carry no points (ToIdx is -1).
type Event struct {
	Verb    Verb
	To      point.Point
	Ctrl    point.Point
	ToIdx   int
	CtrlIdx int
}

// Path is an immutable sequence of path commands over an indexed vertex
// array. Multiple contours are expressed with repeated MoveTo commands.
type Path struct {
	verbs  []Verb
	points []point.Point
}

// Len returns the number of stored vertices (endpoints and control points).
func (p *Path) Len() int {
	return len(p.points)
}

// Pos returns the vertex at index i.
func (p *Path) Pos(i int) point.Point {
	return p.points[i]
}

// Events decodes the command stream into a slice of events, pairing each
// endpoint and control point with its vertex index.
func (p *Path) Events() []Event {
	events := make([]Event, 0, len(p.verbs))
	cursor := 0
	for _, verb := range p.verbs {
		switch verb {
		case VerbMoveTo, VerbLineTo:
			events = append(events, Event{
				Verb:    verb,
				To:      p.points[cursor],
				ToIdx:   cursor,
				CtrlIdx: -1,
			})
			cursor++
		case VerbQuadraticTo:
			events = append(events, Event{
				Verb:    verb,
				Ctrl:    p.points[cursor],
				CtrlIdx: cursor,
				To:      p.points[cursor+1],
				ToIdx:   cursor + 1,
			})
			cursor += 2
		case VerbClose:
			events = append(events, Event{
				Verb:    verb,
				ToIdx:   -1,
				CtrlIdx: -1,
			})
		}
	}
	return events
}

// Builder incrementally constructs a [Path].
//
// The zero value is ready to use. Calling MoveTo starts a new contour;
// LineTo and QuadraticTo extend the current one; Close closes it. Build
// returns the accumulated path and leaves the builder reusable.
type Builder struct {
	verbs  []Verb
	points []point.Point
}

// NewBuilder returns an empty path builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// MoveTo starts a new contour at p.
func (b *Builder) MoveTo(p point.Point) *Builder {
	b.verbs = append(b.verbs, VerbMoveTo)
	b.points = append(b.points, p)
	return b
}

// LineTo extends the current contour with a straight line to p.
func (b *Builder) LineTo(p point.Point) *Builder {
	b.verbs = append(b.verbs, VerbLineTo)
	b.points = append(b.points, p)
	return b
}

// QuadraticTo extends the current contour with a quadratic Bézier curve to
// `to` through the control point `ctrl`.
func (b *Builder) QuadraticTo(ctrl, to point.Point) *Builder {
	b.verbs = append(b.verbs, VerbQuadraticTo)
	b.points = append(b.points, ctrl, to)
	return b
}

// Close closes the current contour.
func (b *Builder) Close() *Builder {
	b.verbs = append(b.verbs, VerbClose)
	return b
}

// Build returns the accumulated path. The builder is reset and may be reused.
func (b *Builder) Build() *Path {
	p := &Path{
		verbs:  b.verbs,
		points: b.points,
	}
	b.verbs = nil
	b.points = nil
	return p
}
