package fill

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/jianantian/lyon/point"
)

// treeSortThreshold is the event count from which on (inclusive) Sort relinks
// the list through a red-black tree instead of running the swap-based pass.
const treeSortThreshold = 64

// sortTree rebuilds the next-event / next-sibling links from an in-order
// walk of a red-black tree keyed by position. Events at coincident positions
// are bucketed under one key in push order.
func (t *Traversal) sortTree() {
	tree := rbt.NewWith(func(a, b interface{}) int {
		return comparePositions(a.(point.Point), b.(point.Point))
	})

	for i := range t.events {
		if ids, found := tree.Get(t.events[i].position); found {
			tree.Put(t.events[i].position, append(ids.([]int), i))
		} else {
			tree.Put(t.events[i].position, []int{i})
		}
	}

	prevHead := invalidEventID
	it := tree.Iterator()
	for it.Next() {
		ids := it.Value().([]int)
		head := ids[0]
		if prevHead == invalidEventID {
			t.first = head
		} else {
			t.events[prevHead].nextEvent = head
		}
		for j, id := range ids {
			t.events[id].nextEvent = invalidEventID
			if j+1 < len(ids) {
				t.events[id].nextSibling = ids[j+1]
			} else {
				t.events[id].nextSibling = invalidEventID
			}
		}
		prevHead = head
	}
}
