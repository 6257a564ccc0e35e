package station

import (
	"testing"

	"autostrada/internal/fleet"
)

func TestInsertNewAndExisting(t *testing.T) {
	idx := NewIndex()
	_, result := idx.Insert(10)
	if result != WasNew {
		t.Fatalf("first Insert(10) = %v, want WasNew", result)
	}
	_, result = idx.Insert(10)
	if result != AlreadyExists {
		t.Fatalf("second Insert(10) = %v, want AlreadyExists", result)
	}
	if idx.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", idx.Len())
	}
}

func TestRemoveUnknownAndKnown(t *testing.T) {
	idx := NewIndex()
	idx.Insert(5)
	if got := idx.Remove(99); got != NotPresent {
		t.Errorf("Remove(99) = %v, want NotPresent", got)
	}
	if got := idx.Remove(5); got != Removed {
		t.Errorf("Remove(5) = %v, want Removed", got)
	}
	if _, ok := idx.Lookup(5); ok {
		t.Error("Lookup(5) should fail after removal")
	}
}

func TestPrevNextChainMatchesOrder(t *testing.T) {
	idx := NewIndex()
	for _, d := range []uint32{30, 10, 20} {
		idx.Insert(d)
	}
	s10, _ := idx.Lookup(10)
	s20, _ := idx.Lookup(20)
	s30, _ := idx.Lookup(30)

	if s10.Prev() != nil {
		t.Error("Prev() of smallest station should be nil")
	}
	if s10.Next() != s20 {
		t.Error("Next() of 10 should be 20")
	}
	if s20.Next() != s30 {
		t.Error("Next() of 20 should be 30")
	}
	if s30.Next() != nil {
		t.Error("Next() of largest station should be nil")
	}
	if s20.Prev() != s10 || s30.Prev() != s20 {
		t.Error("Prev() chain inconsistent")
	}

	idx.Remove(20)
	if s10.Next() != s30 {
		t.Error("after removing 20, Next() of 10 should be 30")
	}
	if s30.Prev() != s10 {
		t.Error("after removing 20, Prev() of 30 should be 10")
	}
}

func TestReachabilityRefreshOnAddVehicle(t *testing.T) {
	idx := NewIndex()
	s, _ := idx.Insert(50)
	if s.Leftmost != 50 || s.Rightmost != 50 {
		t.Fatalf("empty fleet reachability = [%d,%d], want [50,50]", s.Leftmost, s.Rightmost)
	}
	s.AddVehicle(20)
	if s.MaxAutonomy != 20 || s.Leftmost != 30 || s.Rightmost != 70 {
		t.Errorf("after AddVehicle(20): max=%d left=%d right=%d, want 20/30/70", s.MaxAutonomy, s.Leftmost, s.Rightmost)
	}
	s.AddVehicle(10)
	if s.MaxAutonomy != 20 {
		t.Errorf("adding smaller autonomy should not change max: got %d", s.MaxAutonomy)
	}
	s.AddVehicle(80)
	if s.MaxAutonomy != 80 || s.Leftmost != 0 || s.Rightmost != 130 {
		t.Errorf("after AddVehicle(80): max=%d left=%d right=%d, want 80/0/130", s.MaxAutonomy, s.Leftmost, s.Rightmost)
	}
}

func TestReachabilityRefreshOnRemoveVehicle(t *testing.T) {
	idx := NewIndex()
	s, _ := idx.Insert(50)
	s.AddVehicle(20)
	s.AddVehicle(80)

	if result := s.RemoveVehicle(20); result != fleet.RemovedLast {
		t.Fatalf("RemoveVehicle(20) = %v, want RemovedLast", result)
	}
	if s.MaxAutonomy != 80 {
		t.Errorf("removing non-max autonomy should not change max: got %d", s.MaxAutonomy)
	}

	if result := s.RemoveVehicle(80); result != fleet.RemovedLast {
		t.Fatalf("RemoveVehicle(80) = %v, want RemovedLast", result)
	}
	if s.MaxAutonomy != 0 || s.Leftmost != 50 || s.Rightmost != 50 {
		t.Errorf("after removing last vehicle: max=%d left=%d right=%d, want 0/50/50", s.MaxAutonomy, s.Leftmost, s.Rightmost)
	}
}

func TestRemoveVehicleNotPresent(t *testing.T) {
	idx := NewIndex()
	s, _ := idx.Insert(50)
	if result := s.RemoveVehicle(99); result != fleet.NotPresent {
		t.Errorf("RemoveVehicle(99) = %v, want NotPresent", result)
	}
}
