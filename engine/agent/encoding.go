package agent

import (
	"fmt"

	engine "github.com/jason-s-yu/ygobridge/engine"
)

const (
	CardFeatureDim   = 12 + NumTypes // 37
	ActionFeatureDim = 10

	statScale = 100 // attack/defense are stored in hundreds
)

// EncodeCard writes the feature vector of one card as seen by viewer into out.
// id is the card's dense id from the card database (0 when unknown).
// out is zeroed internally before writing.
func EncodeCard(c engine.CardSnapshot, id engine.CardID, viewer engine.PlayerID, out *[CardFeatureDim]uint8) error {
	*out = [CardFeatureDim]uint8{}

	// Card id: 2 bytes, big-endian
	out[0] = uint8(id >> 8)
	out[1] = uint8(id)

	overlay := c.Location&engine.LocationOverlay != 0
	loc, err := LocationID(c.Location &^ engine.LocationOverlay)
	if err != nil {
		return fmt.Errorf("encode card %d: %w", c.Code, err)
	}
	out[2] = uint8(loc)
	out[3] = c.Sequence
	if c.Controller != viewer {
		out[4] = 1
	}
	pos, err := PositionID(c.Position)
	if err != nil {
		return fmt.Errorf("encode card %d: %w", c.Code, err)
	}
	out[5] = uint8(pos)
	if overlay {
		out[6] = 1
	}
	// offset = 7

	// Monster stats are only meaningful for monsters; spells and traps keep zeros.
	if c.Type&engine.TypeMonster != 0 {
		attr, err := AttributeID(c.Attribute)
		if err != nil {
			return fmt.Errorf("encode card %d: %w", c.Code, err)
		}
		race, err := RaceID(c.Race)
		if err != nil {
			return fmt.Errorf("encode card %d: %w", c.Code, err)
		}
		out[7] = uint8(attr)
		out[8] = uint8(race)
		out[9] = clampU8(int64(c.Level))
		out[10] = clampU8(int64(c.Attack) / statScale)
		out[11] = clampU8(int64(c.Defense) / statScale)
	}
	// offset = 12

	// Type bits: NumTypes-dim multi-hot
	copy(out[12:], TypeToIDs(c.Type))
	return nil
}

// EncodeAction writes the feature vector of one legal action into out.
// id is the dense id of the action's card (0 when the action has none).
func EncodeAction(a engine.LegalAction, id engine.CardID, out *[ActionFeatureDim]uint8) error {
	*out = [ActionFeatureDim]uint8{}

	msg, err := MsgID(a.Msg)
	if err != nil {
		return fmt.Errorf("encode action %v: %w", a, err)
	}
	out[0] = uint8(msg)
	out[1] = uint8(a.Kind)

	// Phase: 0 = none, otherwise phase id + 1
	if a.Phase != engine.PhaseNone {
		phase, err := PhaseID(a.Phase)
		if err != nil {
			return fmt.Errorf("encode action %v: %w", a, err)
		}
		out[2] = uint8(phase + 1)
	}
	out[3] = uint8(a.Place)
	out[4] = uint8(a.Attribute) // announce masks may combine several bits
	out[5] = clampU8(int64(a.Number))

	// Effect: presence flag, then id
	if a.Effect >= 0 {
		eff, err := EffectID(a.Code, uint32(a.Effect))
		if err != nil {
			return fmt.Errorf("encode action %v: %w", a, err)
		}
		out[6] = 1
		out[7] = uint8(eff)
	}
	out[8] = uint8(id >> 8)
	out[9] = uint8(id)
	return nil
}

// ActionMask marks the first n slots of out as legal and the rest as illegal.
func ActionMask(n int, out []bool) {
	for i := range out {
		out[i] = i < n
	}
}

func clampU8(v int64) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}
