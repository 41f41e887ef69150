package agent

import engine "github.com/jason-s-yu/ygobridge/engine"

// Card-specific effect descriptions take ids 0..15 (code<<4 | index); system
// strings follow.
const SystemStringOffset = 16

// Dense id tables, built once at init and read-only afterwards.
var (
	systemStringIDs = MakeIDsFromMap("system_string_to_id", systemStrings, SystemStringOffset, 0)
	locationIDs     = MakeIDsFromMap("location_to_id", locationNames, 1, 0)
	positionIDs     = MakeIDsFromMap("position_to_id", positionNames, 0, 0)
	attributeIDs    = MakeIDsFromMap("attribute_to_id", attributeNames, 0, 0)
	raceIDs         = MakeIDsFromMap("race_to_id", raceNames, 0, 0)
	phaseIDs        = MakeIDsFromMap("phase_to_id", phaseNames, 0, 0)
	msgIDs          = MakeIDs("msg_to_id", selectMsgs, 1, 0)

	cardTypes = SortedKeys(typeNames)
)

// NumTypes is the length of the TypeToIDs vector.
const NumTypes = 25

// Dense id lookups. A miss is a *LookupError wrapping ErrLookupMiss.

func SystemStringID(desc int) (int, error) { return systemStringIDs.Lookup(desc) }
func LocationID(loc engine.Location) (int, error) { return locationIDs.Lookup(loc) }
func PositionID(pos engine.Position) (int, error) { return positionIDs.Lookup(pos) }
func AttributeID(attr engine.Attribute) (int, error) { return attributeIDs.Lookup(attr) }
func RaceID(race engine.Race) (int, error) { return raceIDs.Lookup(race) }
func PhaseID(phase engine.Phase) (int, error) { return phaseIDs.Lookup(phase) }
func MsgID(msg engine.Msg) (int, error) { return msgIDs.Lookup(msg) }
func MustLocationID(loc engine.Location) int { return locationIDs.MustLookup(loc) }
func MustPositionID(pos engine.Position) int { return positionIDs.MustLookup(pos) }

// TypeToIDs returns a 0/1 vector over the card types in ascending bit order.
func TypeToIDs(t engine.CardType) []uint8 {
	ids := make([]uint8, len(cardTypes))
	for i, bit := range cardTypes {
		if t&bit != 0 {
			ids[i] = 1
		}
	}
	return ids
}

// EffectID maps an effect description of card code to a dense id. Descriptions
// below 10000 are system strings; larger ones are code<<4 | index and must
// belong to the card itself.
func EffectID(code engine.CardCode, desc uint32) (int, error) {
	if desc < 10000 {
		return SystemStringID(int(desc))
	}
	if engine.CardCode(desc>>4) != code {
		return 0, &LookupError{Table: "effect_to_id", Key: desc}
	}
	return int(desc & 0xf), nil
}

// SystemString returns the text of a system string description.
func SystemString(desc int) (string, error) {
	s, ok := systemStrings[desc]
	if !ok {
		return "", &LookupError{Table: "system_string", Key: desc}
	}
	return s, nil
}

func nameOr[K comparable](m map[K]string, k K) string {
	if s, ok := m[k]; ok {
		return s
	}
	return "unknown"
}

// Display names. Unknown values render as "unknown".

func PositionString(pos engine.Position) string { return nameOr(positionNames, pos) }
func AttributeString(a engine.Attribute) string { return nameOr(attributeNames, a) }
func RaceString(r engine.Race) string { return nameOr(raceNames, r) }
func PhaseString(p engine.Phase) string { return nameOr(phaseNames, p) }
func LocationString(loc engine.Location) string { return nameOr(locationNames, loc) }

func MsgToString(msg engine.Msg) string {
	if s, ok := msgNames[msg]; ok {
		return s
	}
	return "unknown_msg"
}

func ReasonToString(reason uint8) string {
	if s, ok := reasonNames[reason]; ok {
		return s
	}
	return "Unknown"
}

// TypeString joins the names of every type bit set in t.
func TypeString(t engine.CardType) string {
	var s string
	for _, bit := range cardTypes {
		if t&bit == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += typeNames[bit]
	}
	return s
}
