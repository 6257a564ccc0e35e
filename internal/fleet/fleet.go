// Package fleet implements FleetIndex, the ordered multiset of vehicle
// autonomies owned by one station.
package fleet

import "autostrada/internal/skiplist"

// RemoveResult reports the outcome of removing one vehicle of a given
// autonomy.
type RemoveResult int

const (
	// NotPresent means no vehicle of that autonomy was in the fleet.
	NotPresent RemoveResult = iota
	// Decremented means the entry's count dropped but the entry survives.
	Decremented
	// RemovedLast means the last vehicle of that autonomy was removed and
	// the entry was deleted.
	RemovedLast
)

// Index is an ordered multiset of autonomies, keyed by autonomy with a
// count payload, backed by a skip list for O(log n) insert/remove/max.
type Index struct {
	list *skiplist.List[uint32, uint16]
}

// New returns an empty fleet.
func New() *Index {
	return &Index{list: skiplist.New[uint32, uint16]()}
}

// Insert adds one vehicle of the given autonomy. Always succeeds.
func (f *Index) Insert(autonomy uint32) {
	if n := f.list.Find(autonomy); n != nil {
		n.Value++
		return
	}
	f.list.Upsert(autonomy, 1)
}

// Remove removes one vehicle of the given autonomy.
func (f *Index) Remove(autonomy uint32) RemoveResult {
	n := f.list.Find(autonomy)
	if n == nil {
		return NotPresent
	}
	if n.Value > 1 {
		n.Value--
		return Decremented
	}
	f.list.Delete(autonomy)
	return RemovedLast
}

// Max returns the largest autonomy present, or 0 if the fleet is empty.
func (f *Index) Max() uint32 {
	m := f.list.Max()
	if m == nil {
		return 0
	}
	return m.Key
}

// Len returns the number of distinct autonomies in the fleet.
func (f *Index) Len() int { return f.list.Len() }
