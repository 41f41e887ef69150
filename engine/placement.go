package engine

// Placement is one physical field slot an action can target.
// Ordinals are contiguous per zone group so they can be computed from
// (group, bit) and back.
type Placement uint8

const (
	PlaceNone Placement = 0

	PlaceM1 Placement = 1 // own monster zones m1..m7
	PlaceM7 Placement = 7

	PlaceS1 Placement = 8 // own spell & trap zones s1..s8
	PlaceS8 Placement = 15

	PlaceOM1 Placement = 16 // opponent monster zones om1..om7
	PlaceOM7 Placement = 22

	PlaceOS1 Placement = 23 // opponent spell & trap zones os1..os8
	PlaceOS8 Placement = 30

	NumPlacements = 31
)

const (
	monsterSlots = 7
	spellSlots   = 8
)

// placeGroups lists each 8-bit mask group in engine order.
var placeGroups = [4]struct {
	base     Placement
	slots    int
	loc      Location
	opponent bool
}{
	{PlaceM1, monsterSlots, LocationMZone, false},
	{PlaceS1, spellSlots, LocationSZone, false},
	{PlaceOM1, monsterSlots, LocationMZone, true},
	{PlaceOS1, spellSlots, LocationSZone, true},
}

// DecodePlacements expands a 32-bit zone mask into placements.
//
// The mask packs four byte groups: own monster, own spell/trap, opponent
// monster, opponent spell/trap. A set bit means the slot is blocked, so the
// result holds the clear bits, or the set bits when invert is true.
// Order is group-major, then bit index.
func DecodePlacements(mask uint32, invert bool) []Placement {
	places := make([]Placement, 0, NumPlacements-1)
	for g, group := range placeGroups {
		bits := uint8(mask >> (8 * g))
		for i := 0; i < group.slots; i++ {
			blocked := bits&(1<<i) != 0
			if blocked == invert {
				places = append(places, group.base+Placement(i))
			}
		}
	}
	return places
}

// PlacementOf returns the placement for a field slot, or PlaceNone when the
// location/sequence is not a placeable zone.
func PlacementOf(opponent bool, loc Location, seq uint8) Placement {
	for _, group := range placeGroups {
		if group.opponent == opponent && group.loc == loc && int(seq) < group.slots {
			return group.base + Placement(seq)
		}
	}
	return PlaceNone
}

// Zone splits a placement back into (opponent, location, sequence).
// ok is false for PlaceNone and out-of-range values.
func (p Placement) Zone() (opponent bool, loc Location, seq uint8, ok bool) {
	for _, group := range placeGroups {
		if p >= group.base && p < group.base+Placement(group.slots) {
			return group.opponent, group.loc, uint8(p - group.base), true
		}
	}
	return false, 0, 0, false
}

// String renders the placement in spec notation, e.g. "m3" or "os8".
func (p Placement) String() string {
	opponent, loc, seq, ok := p.Zone()
	if !ok {
		return "none"
	}
	return EncodeSpec(loc, seq, 0, opponent)
}
