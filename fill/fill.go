// Package fill implements a plane-sweep fill tessellator: it converts closed
// planar paths, possibly self-intersecting and containing multiple contours,
// into non-overlapping triangles.
//
// The tessellator walks the path's vertices in lexicographic (y, x) order
// while maintaining a left-to-right ordered list of the edges crossing the
// sweep line and a list of open monotone spans. Six topological event kinds
// (start, end, left, right, merge, split) mutate the span list as the sweep
// advances; each span accumulates its boundary in a monotone tessellator
// that emits triangles when the span closes.
//
// Setting the LYON_FORCE_LOGGING environment variable makes every
// tessellator trace its sweep on the standard logger.
package fill

import (
	"fmt"
	"log"
	"math"
	"os"
	"slices"

	"github.com/jianantian/lyon/geometry"
	"github.com/jianantian/lyon/numeric"
	"github.com/jianantian/lyon/options"
	"github.com/jianantian/lyon/path"
	"github.com/jianantian/lyon/point"
)

func init() {
	logDebugf("debug logging enabled")
}

// Tessellator computes the triangulation of the fill of a path.
//
// A Tessellator is single-threaded and synchronous; one instance may be
// reused across tessellations, which amortises the internal allocations. It
// must not be shared between goroutines without external synchronisation.
type Tessellator struct {
	currentPosition point.Point
	active          []activeEdge
	edgesBelow      []pendingEdge
	fillRule        options.FillRule
	fill            spanList
	epsilon         float64
	log             bool
}

// New returns a tessellator ready for use. Verbose sweep logging is enabled
// when the LYON_FORCE_LOGGING environment variable is set.
func New() *Tessellator {
	_, forceLogging := os.LookupEnv("LYON_FORCE_LOGGING")
	return &Tessellator{
		currentPosition: point.New(-math.MaxFloat64, -math.MaxFloat64),
		log:             forceLogging,
	}
}

// EnableLogging turns on verbose sweep logging for this tessellator.
func (t *Tessellator) EnableLogging() {
	t.log = true
}

// TessellatePath tessellates the fill of p into output.
//
// The fill rule defaults to even-odd; select non-zero with
// [options.WithFillRule]. [options.WithEpsilon] sets the coincidence
// tolerance used when testing whether an active edge passes through an event
// point; the default of zero compares exactly.
//
// Paths with non-finite coordinates are rejected. Degenerate paths (empty,
// single point, zero area) complete successfully and produce no triangles.
func (t *Tessellator) TessellatePath(p *path.Path, output geometry.Builder, opts ...options.GeometryOptionsFunc) error {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	t.fillRule = geoOpts.FillRule
	t.epsilon = geoOpts.Epsilon

	for i := 0; i < p.Len(); i++ {
		if !p.Pos(i).IsFinite() {
			return fmt.Errorf("non-finite coordinate at vertex %d: %s", i, p.Pos(i))
		}
	}

	t.active = t.active[:0]
	t.edgesBelow = t.edgesBelow[:0]
	t.fill.spans = t.fill.spans[:0]

	builder := newTraversalBuilder(p.Len() + 8)
	builder.setPath(p)
	events, edges := builder.build()

	output.BeginGeometry()
	t.tessellatorLoop(p, events, edges, output)
	output.EndGeometry()

	t.logf("\n ***************** \n")
	return nil
}

// tessellatorLoop drives the sweep: one iteration per distinct event
// position, in lexicographic order.
func (t *Tessellator) tessellatorLoop(p *path.Path, events *Traversal, edges []edgeData, output geometry.Builder) {
	currentEvent := events.FirstID()
	for events.ValidID(currentEvent) {
		t.currentPosition = events.Position(currentEvent)
		vertexID := output.AddVertex(t.currentPosition)

		currentSibling := currentEvent
		for events.ValidID(currentSibling) {
			edge := edges[currentSibling]
			// Vertex-only events carry no edge below; they only force the
			// sweep to visit this position.
			if edge.to == geometry.Invalid {
				currentSibling = events.NextSiblingID(currentSibling)
				continue
			}
			to := p.Pos(int(edge.to))
			ctrl := point.New(math.NaN(), math.NaN())
			if edge.ctrl != geometry.Invalid {
				ctrl = p.Pos(int(edge.ctrl))
			}
			t.edgesBelow = append(t.edgesBelow, pendingEdge{
				ctrl:    ctrl,
				to:      to,
				angle:   to.Sub(t.currentPosition).AngleFromXAxis(),
				fromID:  vertexID,
				ctrlID:  geometry.Invalid,
				toID:    geometry.Invalid,
				winding: edge.winding,
			})

			currentSibling = events.NextSiblingID(currentSibling)
		}

		t.processEvents(vertexID, output)

		currentEvent = events.NextID(currentEvent)
	}
}

// processEvents classifies the interaction of the current position with each
// active edge, mutates the active list and the span list accordingly, and
// feeds the span tessellators.
func (t *Tessellator) processEvents(currentVertex geometry.VertexID, output geometry.Builder) {
	t.logf("\n --- events at [%g, %g] %d         %d edges below",
		t.currentPosition.X(), t.currentPosition.Y(),
		currentVertex,
		len(t.edgesBelow),
	)

	// The span index starts at -1 so that entering the first span (of index
	// 0) increments it to zero.
	winding := windingState{
		spanIndex:  -1,
		number:     0,
		transition: transitionNone,
	}
	var windingBeforePoint windingState
	haveWindingBeforePoint := false
	aboveStart := len(t.active)
	aboveEnd := len(t.active)
	connectingEdges := false
	firstTransitionAbove := true
	pendingMerge := -1
	pendingRight := -1
	prevTransitionIn := -1

	var mergesToResolve [][2]int // (span index, active edge index)
	var spansToEnd []int
	var edgesToSplit []int

	// First go through the sweep line and visit all edges that end at the
	// current position.
	for i := range t.active {
		edge := &t.active[i]

		// First deal with the merge case.
		if edge.isMerge {
			if connectingEdges {
				mergesToResolve = append(mergesToResolve, [2]int{winding.spanIndex, i})
				edge.to = t.currentPosition
				edge.toID = currentVertex
				winding.spanIndex++
			} else {
				// \.....\ /...../
				//  \.....x...../   <--- merge vertex
				//   \....:..../
				// ---\---:---/----  <-- sweep line
				//     \..:../

				// An unresolved merge vertex implies the left and right spans
				// are adjacent with no transition between the two, so the span
				// index is bumped manually.
				winding.spanIndex++
			}

			continue
		}

		// From here on the active edge is not a merge.

		wasConnectingEdges := connectingEdges

		if t.pointsEqual(t.currentPosition, edge.to) {
			connectingEdges = true
		} else {
			ex := edge.solveXForY(t.currentPosition.Y())
			t.logf("ex: %g", ex)

			if numeric.FloatEquals(ex, t.currentPosition.X(), t.epsilon) {
				t.logf(" -- vertex on an edge!")
				edgesToSplit = append(edgesToSplit, i)

				connectingEdges = true
			}

			if numeric.FloatGreaterThan(ex, t.currentPosition.X(), t.epsilon) {
				aboveEnd = i
				break
			}
		}

		if !wasConnectingEdges && connectingEdges {
			// We just started connecting edges above the current point.
			// Remember the winding state here; it is what the pending edges
			// below the current point start from.
			windingBeforePoint = winding
			haveWindingBeforePoint = true
			aboveStart = i
		}

		updateWinding(t.fillRule, &winding, edge.winding)

		t.logf("edge %d span %d transition %s", i, winding.spanIndex, winding.transition)

		if !connectingEdges {
			continue
		}

		switch winding.transition {
		case transitionIn:
			prevTransitionIn = i
		case transitionOut:
			if firstTransitionAbove {
				if len(t.edgesBelow) == 0 {
					// Merge event.
					pendingMerge = i
				} else {
					// Right event.
					pendingRight = i
				}
			} else {
				t.logf(" ** end ** edges: [%d, %d] span: %d", prevTransitionIn, i, winding.spanIndex)

				if winding.spanIndex < len(t.fill.spans) {
					spansToEnd = append(spansToEnd, winding.spanIndex)
					winding.spanIndex++
				} else {
					t.logf("error: end event span %d out of range (%d spans)", winding.spanIndex, len(t.fill.spans))
				}
			}
		}

		if winding.transition != transitionNone {
			firstTransitionAbove = false
		}
	}

	for _, m := range mergesToResolve {
		spanIndex, edgeIdx := m[0], m[1]
		//  \...\ /.
		//   \...x..  <-- merge vertex
		//    \./...  <-- active edge
		//     x....  <-- current vertex
		mergeEdge := &t.active[edgeIdx]
		mergeVertex := mergeEdge.fromID
		mergePosition := mergeEdge.from
		t.fill.mergeSpans(
			spanIndex,
			t.currentPosition,
			currentVertex,
			mergePosition,
			mergeVertex,
			output,
		)

		mergeEdge.isMerge = false

		t.logf(" Resolve merge event %d at %s ending span %d", edgeIdx, mergeEdge.to, spanIndex)
	}

	for _, spanIndex := range spansToEnd {
		t.fill.endSpan(spanIndex, t.currentPosition, currentVertex, output)
	}

	t.fill.cleanupSpans()

	for _, edgeIdx := range edgesToSplit {
		to := t.active[edgeIdx].to
		t.edgesBelow = append(t.edgesBelow, pendingEdge{
			ctrl: point.New(math.NaN(), math.NaN()),
			to:   to,

			angle: to.Sub(t.currentPosition).AngleFromXAxis(),

			fromID: currentVertex,
			ctrlID: geometry.Invalid,
			toID:   t.active[edgeIdx].toID,

			winding: t.active[edgeIdx].winding,
		})

		t.active[edgeIdx].to = t.currentPosition
		t.active[edgeIdx].toID = currentVertex
	}

	// Fix up the above range in case there were no connecting edges.
	aboveStart = min(aboveStart, aboveEnd)

	if haveWindingBeforePoint {
		winding = windingBeforePoint
	}

	t.logf("connecting edges: %d..%d %s", aboveStart, aboveEnd, winding.transition)

	t.sortEdgesBelow()

	if pendingMerge >= 0 {
		// Merge event.
		//
		//  ...\   /...
		//  ....\ /....
		//  .....x.....
		//
		t.logf(" ** merge ** edges: [%d, %d] span: %d", pendingMerge, aboveEnd-1, winding.spanIndex)

		e := &t.active[pendingMerge]
		e.isMerge = true
		e.from = e.to
		e.ctrl = e.to
		e.winding = 0
		e.fromID = currentVertex
		e.ctrlID = geometry.Invalid
		e.toID = geometry.Invalid
	}

	// The range of pending edges to visit in the last loop (not the full
	// range when a split is processed: the outermost pending edges become the
	// split's new boundaries).
	belowStart := 0
	belowEnd := len(t.edgesBelow)

	if ruleIsIn(t.fillRule, winding.number) &&
		aboveStart == aboveEnd &&
		len(t.edgesBelow) >= 2 {

		// Split event.
		//
		//  ...........
		//  .....x.....
		//  ..../ \....
		//  .../   \...
		//
		edgeAbove := aboveStart - 1
		if edgeAbove < 0 || edgeAbove >= len(t.active) {
			t.logf("error: split event with no active edge above")
		} else {
			upperPos := t.active[edgeAbove].from
			upperID := t.active[edgeAbove].fromID
			t.logf(" ** split ** edge %d span: %d upper %s", edgeAbove, winding.spanIndex, upperPos)

			if t.active[edgeAbove].isMerge {
				// Split vertex under a merge vertex.
				//
				//  ...\ /...
				//  ....x....   <-- merge vertex (upper)
				//  ....:....
				//  ----x----   <-- current split vertex
				//  .../ \...
				//
				t.logf("   -> merge+split")
				spanIndex := winding.spanIndex

				if spanIndex-1 >= 0 && spanIndex < len(t.fill.spans) {
					t.fill.spans[spanIndex-1].tess.vertex(upperPos, upperID, sideRight)
					t.fill.spans[spanIndex-1].tess.vertex(t.currentPosition, currentVertex, sideRight)

					t.fill.spans[spanIndex].tess.vertex(upperPos, upperID, sideLeft)
					t.fill.spans[spanIndex].tess.vertex(t.currentPosition, currentVertex, sideLeft)
				} else {
					t.logf("error: merge+split span %d out of range (%d spans)", spanIndex, len(t.fill.spans))
				}

				t.active = slices.Delete(t.active, edgeAbove, edgeAbove+1)
				aboveStart--
				aboveEnd--
			} else {
				t.fill.splitSpan(
					winding.spanIndex,
					t.currentPosition,
					currentVertex,
					upperPos,
					upperID,
				)
			}

			winding.spanIndex++

			belowStart++
			belowEnd--
		}
	}

	// Go through the edges starting at the current point and emit start
	// events.
	prevTransitionIn = -1

	for i := belowStart; i < belowEnd; i++ {
		edge := &t.edgesBelow[i]

		updateWinding(t.fillRule, &winding, edge.winding)

		if pendingRight >= 0 {
			// Right event.
			//
			//  ..\
			//  ...x
			//  ../
			//
			t.logf(" ** right ** edge: %d span: %d", pendingRight, winding.spanIndex)

			if winding.spanIndex >= 0 && winding.spanIndex < len(t.fill.spans) {
				t.fill.spans[winding.spanIndex].tess.vertex(t.currentPosition, currentVertex, sideRight)
			} else {
				t.logf("error: right event span %d out of range (%d spans)", winding.spanIndex, len(t.fill.spans))
			}

			pendingRight = -1

			continue
		}

		switch winding.transition {
		case transitionIn:
			if i == len(t.edgesBelow)-1 {
				// Left event.
				//
				//     /...
				//    x....
				//     \...
				//
				t.logf(" ** left ** edge %d span: %d", aboveStart, winding.spanIndex)

				if winding.spanIndex >= 0 && winding.spanIndex < len(t.fill.spans) {
					t.fill.spans[winding.spanIndex].tess.vertex(t.currentPosition, currentVertex, sideLeft)
				} else {
					t.logf("error: left event span %d out of range (%d spans)", winding.spanIndex, len(t.fill.spans))
				}
			} else {
				prevTransitionIn = i
			}
		case transitionOut:
			if prevTransitionIn >= 0 {
				t.logf(" ** start ** edges: [%d, %d] span: %d", prevTransitionIn, i, winding.spanIndex)

				// Start event.
				//
				//      x
				//     /.\
				//    /...\
				//
				t.logf(" begin span %d (%d)", winding.spanIndex, len(t.fill.spans))
				t.fill.beginSpan(winding.spanIndex, t.currentPosition, currentVertex)
			}
		}
	}

	t.updateActiveEdges(aboveStart, aboveEnd)

	t.logf("sweep line: %d", len(t.active))
	for i := range t.active {
		if t.active[i].isMerge {
			t.logf("| (merge) %s", t.active[i].from)
		} else {
			t.logf("| %s -> %s", t.active[i].from, t.active[i].to)
		}
	}
	t.logf("spans: %d", len(t.fill.spans))
}

// updateActiveEdges removes the above range of edges that ended at the
// current position (keeping merge placeholders) and inserts the pending
// edges in their place.
func (t *Tessellator) updateActiveEdges(aboveStart, aboveEnd int) {
	t.logf(" remove %d edges (%d..%d)", aboveEnd-aboveStart, aboveStart, aboveEnd)
	rmIndex := aboveStart
	for n := 0; n < aboveEnd-aboveStart; n++ {
		if t.active[rmIndex].isMerge {
			rmIndex++
		} else {
			t.active = slices.Delete(t.active, rmIndex, rmIndex+1)
		}
	}

	// Insert the pending edges.
	from := t.currentPosition
	firstEdgeBelow := aboveStart
	for i := range t.edgesBelow {
		edge := &t.edgesBelow[i]
		idx := firstEdgeBelow + i
		t.active = slices.Insert(t.active, idx, activeEdge{
			from:    from,
			to:      edge.to,
			ctrl:    edge.ctrl,
			winding: edge.winding,
			fromID:  edge.fromID,
			toID:    edge.toID,
			ctrlID:  edge.ctrlID,
		})
	}
	t.edgesBelow = t.edgesBelow[:0]
}

// sortEdgesBelow orders the pending edges by descending angle from the
// positive x axis, which is the left-to-right order they take on the sweep
// line. A comparison involving NaN leaves the pair where it is.
func (t *Tessellator) sortEdgesBelow() {
	slices.SortStableFunc(t.edgesBelow, func(a, b pendingEdge) int {
		switch {
		case b.angle < a.angle:
			return -1
		case b.angle > a.angle:
			return 1
		default:
			return 0
		}
	})
}

// pointsEqual compares two positions using the configured tolerance.
func (t *Tessellator) pointsEqual(a, b point.Point) bool {
	return numeric.FloatEquals(a.X(), b.X(), t.epsilon) &&
		numeric.FloatEquals(a.Y(), b.Y(), t.epsilon)
}

func (t *Tessellator) logf(format string, v ...any) {
	if t.log {
		log.Printf(format, v...)
	}
}
