package engine

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestDecodePlacementsAllFree(t *testing.T) {
	got := DecodePlacements(0, false)
	if len(got) != NumPlacements-1 {
		t.Fatalf("len = %d, want %d", len(got), NumPlacements-1)
	}
	for i, p := range got {
		if p != Placement(i+1) {
			t.Errorf("placement[%d] = %d, want %d", i, p, i+1)
		}
	}
}

func TestDecodePlacementsAllBlocked(t *testing.T) {
	if got := DecodePlacements(0xffffffff, false); len(got) != 0 {
		t.Errorf("DecodePlacements(all blocked) = %v, want empty", got)
	}
	if got := DecodePlacements(0xffffffff, true); len(got) != NumPlacements-1 {
		t.Errorf("DecodePlacements(all blocked, invert) len = %d, want %d", len(got), NumPlacements-1)
	}
}

func TestDecodePlacementsGroups(t *testing.T) {
	// Only own m3, own s1 and opponent os8 are free.
	mask := ^uint32(0)
	mask &^= 1 << 2
	mask &^= 1 << 8
	mask &^= 1 << 31
	got := DecodePlacements(mask, false)
	want := []Placement{PlaceM1 + 2, PlaceS1, PlaceOS8}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecodePlacements(%#x) = %v, want %v", mask, got, want)
	}
}

// TestDecodePlacementsInvertProperty: m and ^m with invert give the same list.
func TestDecodePlacementsInvertProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	masks := []uint32{0, 0xffffffff, 0x80808080, 0x7f7f7f7f, 0x12345678}
	for i := 0; i < 200; i++ {
		masks = append(masks, rng.Uint32())
	}
	for _, m := range masks {
		a := DecodePlacements(m, false)
		b := DecodePlacements(^m, true)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("mask %#x: %v != %v", m, a, b)
		}
	}
}

func TestPlacementZoneRoundTrip(t *testing.T) {
	for p := Placement(1); p < NumPlacements; p++ {
		opp, loc, seq, ok := p.Zone()
		if !ok {
			t.Fatalf("Placement(%d).Zone() not ok", p)
		}
		if got := PlacementOf(opp, loc, seq); got != p {
			t.Errorf("PlacementOf(%v,%#x,%d) = %d, want %d", opp, loc, seq, got, p)
		}
	}
	if _, _, _, ok := PlaceNone.Zone(); ok {
		t.Error("PlaceNone.Zone() ok = true, want false")
	}
	if got := PlacementOf(false, LocationMZone, 7); got != PlaceNone {
		t.Errorf("PlacementOf(m8) = %d, want PlaceNone", got)
	}
}

func TestPlacementString(t *testing.T) {
	tests := []struct {
		p    Placement
		want string
	}{
		{PlaceNone, "none"},
		{PlaceM1, "m1"},
		{PlaceM7, "m7"},
		{PlaceS8, "s8"},
		{PlaceOM1, "om1"},
		{PlaceOS8, "os8"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Placement(%d).String() = %q, want %q", tt.p, got, tt.want)
		}
	}
}
