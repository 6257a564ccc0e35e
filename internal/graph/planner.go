// Package graph implements the route planner: a direction-asymmetric
// breadth-first search over the station chain that finds the minimum-hop,
// lexicographically smallest route between two stations.
package graph

import (
	"autostrada/internal/queue"
	"autostrada/internal/station"
)

const (
	white = iota
	grey
)

// slot is one entry of the planner's working array, materialized fresh for
// each Plan call and discarded on return.
type slot struct {
	distance   uint32
	leftmost   uint32
	rightmost  uint32
	color      int
	prevOnPath int
}

// Plan searches for the shortest, lexicographically smallest sequence of
// stations connecting start to end, one hop at a time. It returns the
// sequence of distances in request order (start first, end last) and true,
// or (nil, false) if no such sequence exists.
func Plan(start, end *station.Station) ([]uint32, bool) {
	if start.Distance == end.Distance {
		return []uint32{start.Distance}, true
	}

	forward := start.Distance < end.Distance
	lo, hi := start, end
	if !forward {
		lo, hi = end, start
	}
	slots := materialize(lo, hi)

	if forward {
		return planForward(slots)
	}
	return planBackward(slots)
}

// materialize walks the station chain from lo to hi inclusive, producing a
// contiguous ascending-distance array. lo and hi are assumed to belong to
// the same live chain with lo.Distance <= hi.Distance.
func materialize(lo, hi *station.Station) []slot {
	var out []slot
	for s := lo; s != nil; s = s.Next() {
		out = append(out, slot{
			distance:   s.Distance,
			leftmost:   s.Leftmost,
			rightmost:  s.Rightmost,
			prevOnPath: -1,
		})
		if s.Distance == hi.Distance {
			break
		}
	}
	return out
}

// planForward handles S.distance < E.distance. A single monotonically
// advancing cursor tmp sweeps the array once over the whole search, extending
// as far as each dequeued station's rightmost reach allows; because the array
// is ascending and tmp is never reset, the first predecessor to claim a
// station is always the lexicographically smallest one.
func planForward(slots []slot) ([]uint32, bool) {
	n := len(slots)
	q := queue.New()
	q.Push(0)
	tmp := 1
	for q.Len() > 0 {
		curr := q.Pop()
		for tmp < n && slots[tmp].distance <= slots[curr].rightmost {
			slots[tmp].prevOnPath = curr
			if tmp == n-1 {
				return reconstructForward(slots), true
			}
			q.Push(tmp)
			tmp++
		}
	}
	return nil, false
}

func reconstructForward(slots []slot) []uint32 {
	n := len(slots)
	path := make([]uint32, 0, n)
	for i := n - 1; i != -1; i = slots[i].prevOnPath {
		path = append(path, slots[i].distance)
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}

// planBackward handles S.distance > E.distance. The array is still built
// ascending (index 0 is the low-distance endpoint E, index N-1 is S), and
// the BFS is rooted at index 0 rather than at S: this walks the
// reachability predicate in reverse, which is what keeps the lexical
// tie-break correct without re-deriving it from an S-rooted scan. A
// GREY-colored node may still satisfy the termination check but is not
// re-enqueued.
func planBackward(slots []slot) ([]uint32, bool) {
	n := len(slots)
	q := queue.New()
	q.Push(0)
	slots[0].color = grey
	for q.Len() > 0 {
		curr := q.Pop()
		for tmp := curr + 1; tmp < n; tmp++ {
			if slots[curr].distance < slots[tmp].leftmost {
				continue
			}
			if tmp == n-1 {
				slots[tmp].prevOnPath = curr
				return reconstructBackward(slots), true
			}
			if slots[tmp].color == white {
				slots[tmp].color = grey
				slots[tmp].prevOnPath = curr
				q.Push(tmp)
			}
		}
	}
	return nil, false
}

func reconstructBackward(slots []slot) []uint32 {
	n := len(slots)
	path := make([]uint32, 0, n)
	for i := n - 1; i != -1; i = slots[i].prevOnPath {
		path = append(path, slots[i].distance)
	}
	return path
}
