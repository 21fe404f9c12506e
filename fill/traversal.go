package fill

import (
	"math"
	"slices"

	"github.com/jianantian/lyon/point"
)

// invalidEventID is the out-of-range sentinel terminating next-event and
// next-sibling chains.
const invalidEventID = math.MaxInt

// comparePositions orders two points lexicographically by (y, x), returning
// -1, 0 or 1.
func comparePositions(a, b point.Point) int {
	if a.Y() > b.Y() {
		return 1
	}
	if a.Y() < b.Y() {
		return -1
	}
	if a.X() > b.X() {
		return 1
	}
	if a.X() < b.X() {
		return -1
	}
	return 0
}

// isAfter reports whether a comes after b in the sweep order.
func isAfter(a, b point.Point) bool {
	return a.Y() > b.Y() || (a.Y() == b.Y() && a.X() > b.X())
}

type traversalEvent struct {
	position    point.Point
	nextSibling int
	nextEvent   int
}

// Traversal is an append-only buffer of positioned events. After Sort, the
// events form two interleaved singly-linked lists: following next-event from
// FirstID visits each distinct position exactly once in lexicographic (y, x)
// order, and from any such head the next-sibling chain (including the head)
// enumerates every event sharing that position. Terminal links use an
// out-of-range sentinel, so iteration stops when ValidID reports false.
type Traversal struct {
	events []traversalEvent
	first  int
	sorted bool
}

// NewTraversal returns an empty event set.
func NewTraversal() *Traversal {
	return &Traversal{}
}

// NewTraversalWithCapacity returns an empty event set with room for n events.
func NewTraversalWithCapacity(n int) *Traversal {
	return &Traversal{
		events: make([]traversalEvent, 0, n),
	}
}

// Reserve grows the buffer to hold n additional events without reallocating.
func (t *Traversal) Reserve(n int) {
	t.events = slices.Grow(t.events, n)
}

// Push appends an event at the given position. Events may be pushed in any
// order; Sort establishes the traversal order.
func (t *Traversal) Push(position point.Point) {
	t.events = append(t.events, traversalEvent{
		position:    position,
		nextSibling: invalidEventID,
		nextEvent:   len(t.events) + 1,
	})
	t.sorted = false
}

// Clear empties the event set for reuse, retaining capacity.
func (t *Traversal) Clear() {
	t.events = t.events[:0]
	t.first = 0
	t.sorted = false
}

// Len returns the number of pushed events.
func (t *Traversal) Len() int {
	return len(t.events)
}

// FirstID returns the id of the first event in traversal order.
func (t *Traversal) FirstID() int {
	return t.first
}

// NextID returns the id of the event at the next distinct position.
func (t *Traversal) NextID(id int) int {
	return t.events[id].nextEvent
}

// NextSiblingID returns the id of the next event sharing this event's
// position.
func (t *Traversal) NextSiblingID(id int) int {
	return t.events[id].nextSibling
}

// ValidID reports whether id refers to an event; iteration stops on the
// first invalid id.
func (t *Traversal) ValidID(id int) bool {
	return id < len(t.events)
}

// Position returns the position of the event with the given id.
func (t *Traversal) Position(id int) point.Point {
	return t.events[id].position
}

// Sort orders the events lexicographically by position, grouping events at
// coincident positions into sibling chains. Sorting is idempotent.
//
// Small event sets use a swap-based pass over the linked list; larger ones
// are relinked through a red-black tree, which keeps the worst case in
// O(n log n) while preserving the sibling grouping.
func (t *Traversal) Sort() {
	if t.sorted {
		return
	}
	t.sorted = true

	if len(t.events) <= 1 {
		return
	}

	if len(t.events) >= treeSortThreshold {
		t.sortTree()
		return
	}
	t.sortLinks()
}

// sortLinks is more or less a bubble sort, the main difference being that
// elements with the same position are grouped in a sibling linked list.
func (t *Traversal) sortLinks() {
	current := t.first
	prev := t.first
	last := len(t.events) - 1
	swapped := false

	for {
		rewind := current == last ||
			!t.ValidID(current) ||
			!t.ValidID(t.NextID(current))

		if rewind {
			last = prev
			prev = t.first
			current = t.first
			if !swapped || last == t.first {
				return
			}
			swapped = false
		}

		next := t.NextID(current)
		a := t.events[current].position
		b := t.events[next].position
		switch comparePositions(a, b) {
		case -1:
			// Already ordered.
			prev = current
			current = next
		case 1:
			// Need to swap current and next.
			if prev != current && prev != next {
				t.events[prev].nextEvent = next
			}
			if current == t.first {
				t.first = next
			}
			if next == last {
				last = current
			}
			nextNext := t.NextID(next)
			t.events[current].nextEvent = nextNext
			t.events[next].nextEvent = current
			swapped = true
			prev = next
		default:
			// Append next to current's sibling list.
			nextNext := t.NextID(next)
			t.events[current].nextEvent = nextNext
			currentSibling := current
			nextSibling := t.NextSiblingID(current)
			for t.ValidID(nextSibling) {
				currentSibling = nextSibling
				nextSibling = t.NextSiblingID(currentSibling)
			}
			t.events[currentSibling].nextSibling = next
		}
	}
}
