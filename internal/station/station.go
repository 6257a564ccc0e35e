// Package station implements StationIndex, the ordered map of highway
// stations keyed by distance, and the per-station ReachabilityView refresh
// that keeps leftmost/rightmost in sync with the station's fleet.
package station

import (
	"autostrada/internal/fleet"
	"autostrada/internal/skiplist"
)

// Station is one highway station: a unique distance, its vehicle fleet, and
// the cached one-hop reachability interval derived from the fleet's
// largest autonomy.
type Station struct {
	Distance    uint32
	Fleet       *fleet.Index
	MaxAutonomy uint32
	Leftmost    uint32
	Rightmost   uint32

	node *skiplist.Node[uint32, *Station]
}

// Prev returns the station with the next-smaller distance, or nil.
func (s *Station) Prev() *Station {
	if n := s.node.Prev(); n != nil {
		return n.Value
	}
	return nil
}

// Next returns the station with the next-larger distance, or nil.
func (s *Station) Next() *Station {
	if n := s.node.Next(); n != nil {
		return n.Value
	}
	return nil
}

func (s *Station) refreshReachability() {
	if s.MaxAutonomy > s.Distance {
		s.Leftmost = 0
	} else {
		s.Leftmost = s.Distance - s.MaxAutonomy
	}
	s.Rightmost = s.Distance + s.MaxAutonomy
}

// AddVehicle adds one vehicle of the given autonomy to the station's fleet,
// refreshing reachability if this raises the maximum.
func (s *Station) AddVehicle(autonomy uint32) {
	s.Fleet.Insert(autonomy)
	if autonomy > s.MaxAutonomy {
		s.MaxAutonomy = autonomy
		s.refreshReachability()
	}
}

// RemoveVehicle removes one vehicle of the given autonomy. Reachability is
// rescanned only when the removed autonomy was the current maximum and it
// was the last of its kind.
func (s *Station) RemoveVehicle(autonomy uint32) fleet.RemoveResult {
	result := s.Fleet.Remove(autonomy)
	if result == fleet.RemovedLast && autonomy == s.MaxAutonomy {
		s.MaxAutonomy = s.Fleet.Max()
		s.refreshReachability()
	}
	return result
}

// InsertResult reports whether StationIndex.Insert created a new station.
type InsertResult int

const (
	// WasNew means a new station record was created.
	WasNew InsertResult = iota
	// AlreadyExists means a station at that distance was already present.
	AlreadyExists
)

// RemoveResult reports the outcome of StationIndex.Remove.
type RemoveResult int

const (
	// Removed means the station was found and unlinked.
	Removed RemoveResult = iota
	// NotPresent means no station existed at that distance.
	NotPresent
)

// Index is the ordered map of stations, keyed by distance. The underlying
// skip list's level-0 chain doubles as the prev/next doubly-linked order
// the spec requires, so the keyed structure and the chain can never drift
// apart.
type Index struct {
	list *skiplist.List[uint32, *Station]
}

// NewIndex returns an empty station index.
func NewIndex() *Index {
	return &Index{list: skiplist.New[uint32, *Station]()}
}

// Len returns the number of live stations.
func (idx *Index) Len() int { return idx.list.Len() }

// Insert creates a station at distance d if one does not already exist.
func (idx *Index) Insert(d uint32) (*Station, InsertResult) {
	if n := idx.list.Find(d); n != nil {
		return n.Value, AlreadyExists
	}
	st := &Station{Distance: d, Fleet: fleet.New()}
	st.refreshReachability()
	node, _ := idx.list.Upsert(d, st)
	st.node = node
	return st, WasNew
}

// Remove unlinks and discards the station at distance d, if present.
func (idx *Index) Remove(d uint32) RemoveResult {
	if _, ok := idx.list.Delete(d); ok {
		return Removed
	}
	return NotPresent
}

// Lookup returns the live station at distance d, if any.
func (idx *Index) Lookup(d uint32) (*Station, bool) {
	n := idx.list.Find(d)
	if n == nil {
		return nil, false
	}
	return n.Value, true
}

// First returns the station with the smallest distance, or nil if empty.
func (idx *Index) First() *Station {
	if n := idx.list.Min(); n != nil {
		return n.Value
	}
	return nil
}
