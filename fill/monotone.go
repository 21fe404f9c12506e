package fill

import (
	"github.com/jianantian/lyon/geometry"
	"github.com/jianantian/lyon/point"
)

// monotoneVertex is one boundary vertex of a y-monotone polygon, tagged with
// the chain it belongs to.
type monotoneVertex struct {
	pos  point.Point
	id   geometry.VertexID
	side side
}

// monotoneTessellator triangulates a y-monotone polygon fed as a stream of
// boundary vertices in sweep order, each tagged Left or Right.
//
// The vertices that cannot be triangulated yet form a reflex chain kept on a
// stack. When a new vertex arrives on the opposite chain, the whole stack is
// fanned into triangles; on the same chain, vertices are popped while the
// diagonal to the new vertex stays inside the polygon.
type monotoneTessellator struct {
	stack     []monotoneVertex
	previous  monotoneVertex
	triangles [][3]geometry.VertexID
}

func newMonotoneTessellator() *monotoneTessellator {
	return &monotoneTessellator{}
}

// begin starts a new polygon at its top vertex and returns the tessellator
// for chaining.
func (m *monotoneTessellator) begin(pos point.Point, id geometry.VertexID) *monotoneTessellator {
	first := monotoneVertex{pos: pos, id: id, side: sideLeft}
	m.previous = first
	m.stack = m.stack[:0]
	m.triangles = m.triangles[:0]
	m.stack = append(m.stack, first)
	return m
}

// vertex feeds the next boundary vertex. Vertices must arrive in sweep order
// (each after the previous one in lexicographic (y, x) order).
func (m *monotoneTessellator) vertex(pos point.Point, id geometry.VertexID, s side) {
	current := monotoneVertex{pos: pos, id: id, side: s}
	rightSide := s == sideRight

	if len(m.stack) == 0 {
		// Spurious feed after the polygon ended.
		m.stack = append(m.stack, current)
		m.previous = current
		return
	}

	if s != m.previous.side {
		// Opposite chain: every stacked vertex is now visible from the
		// current one, fan them all out.
		for i := 0; i+1 < len(m.stack); i++ {
			a := m.stack[i]
			b := m.stack[i+1]
			if rightSide {
				a, b = b, a
			}
			m.pushTriangle(a, b, current)
		}
		m.stack = m.stack[:0]
		m.stack = append(m.stack, m.previous)
	} else {
		// Same chain: pop while the new diagonal stays inside the polygon.
		lastPopped := m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]
		for len(m.stack) > 0 {
			a := m.stack[len(m.stack)-1]
			b := lastPopped
			if rightSide {
				a, b = b, a
			}
			if a.pos.Sub(b.pos).CrossProduct(current.pos.Sub(b.pos)) >= 0 {
				m.pushTriangle(a, b, current)
				lastPopped = m.stack[len(m.stack)-1]
				m.stack = m.stack[:len(m.stack)-1]
			} else {
				break
			}
		}
		m.stack = append(m.stack, lastPopped)
	}

	m.stack = append(m.stack, current)
	m.previous = current
}

// end feeds the polygon's bottom vertex, where the two chains meet.
func (m *monotoneTessellator) end(pos point.Point, id geometry.VertexID) {
	m.vertex(pos, id, m.previous.side.opposite())
	m.stack = m.stack[:0]
}

// flush writes the accumulated triangles to the output builder.
func (m *monotoneTessellator) flush(output geometry.Builder) {
	for _, tri := range m.triangles {
		output.AddTriangle(tri[0], tri[1], tri[2])
	}
	m.triangles = m.triangles[:0]
}

// pushTriangle records a triangle, orienting it consistently regardless of
// the order the chain handed the corners over in.
func (m *monotoneTessellator) pushTriangle(a, b, c monotoneVertex) {
	if c.pos.Sub(b.pos).CrossProduct(a.pos.Sub(b.pos)) >= 0 {
		m.triangles = append(m.triangles, [3]geometry.VertexID{a.id, b.id, c.id})
	} else {
		m.triangles = append(m.triangles, [3]geometry.VertexID{b.id, a.id, c.id})
	}
}
