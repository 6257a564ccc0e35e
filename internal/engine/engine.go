// Package engine implements the CommandDispatcher: it owns the station
// index for one run and exposes the five command-stream operations as
// plain Go methods with typed errors, plus a Run loop that parses the
// textual command stream and writes the exact success/failure tokens.
package engine

import (
	"errors"
	"fmt"

	"autostrada/internal/fleet"
	"autostrada/internal/graph"
	"autostrada/internal/station"
)

// Sentinel errors returned by the engine's internal operations. Run maps
// each of these down to the two fixed output tokens a command can produce;
// callers that want the richer detail (tests, alternate front ends) can
// inspect these directly.
var (
	ErrStationExists   = errors.New("station already exists")
	ErrStationNotFound = errors.New("station not found")
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrNoRoute         = errors.New("no route")
)

// Engine holds the station index for one run. It is not safe for
// concurrent use; commands are processed one at a time.
type Engine struct {
	stations *station.Index
}

// New returns an engine with an empty station index.
func New() *Engine {
	return &Engine{stations: station.NewIndex()}
}

// StationCount returns the number of live stations, for end-of-run
// summaries.
func (e *Engine) StationCount() int { return e.stations.Len() }

// AddStation inserts a station at distance d carrying the given vehicle
// autonomies. If a station at d already exists, the autonomies are
// discarded and ErrStationExists is returned.
func (e *Engine) AddStation(d uint32, autonomies []uint32) error {
	s, result := e.stations.Insert(d)
	if result == station.AlreadyExists {
		return fmt.Errorf("add station %d: %w", d, ErrStationExists)
	}
	for _, a := range autonomies {
		s.AddVehicle(a)
	}
	return nil
}

// RemoveStation deletes the station at distance d.
func (e *Engine) RemoveStation(d uint32) error {
	if e.stations.Remove(d) == station.NotPresent {
		return fmt.Errorf("remove station %d: %w", d, ErrStationNotFound)
	}
	return nil
}

// AddVehicle adds one vehicle of the given autonomy to the station at d.
func (e *Engine) AddVehicle(d, autonomy uint32) error {
	s, ok := e.stations.Lookup(d)
	if !ok {
		return fmt.Errorf("add vehicle at %d: %w", d, ErrStationNotFound)
	}
	s.AddVehicle(autonomy)
	return nil
}

// RemoveVehicle removes one vehicle of the given autonomy from the station
// at d.
func (e *Engine) RemoveVehicle(d, autonomy uint32) error {
	s, ok := e.stations.Lookup(d)
	if !ok {
		return fmt.Errorf("remove vehicle at %d: %w", d, ErrStationNotFound)
	}
	if s.RemoveVehicle(autonomy) == fleet.NotPresent {
		return fmt.Errorf("remove vehicle %d at %d: %w", autonomy, d, ErrVehicleNotFound)
	}
	return nil
}

// PlanRoute finds the shortest, lexicographically smallest sequence of
// stations from d1 to d2.
func (e *Engine) PlanRoute(d1, d2 uint32) ([]uint32, error) {
	s1, ok1 := e.stations.Lookup(d1)
	s2, ok2 := e.stations.Lookup(d2)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("plan route %d -> %d: %w", d1, d2, ErrStationNotFound)
	}
	path, ok := graph.Plan(s1, s2)
	if !ok {
		return nil, fmt.Errorf("plan route %d -> %d: %w", d1, d2, ErrNoRoute)
	}
	return path, nil
}
