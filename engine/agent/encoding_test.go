package agent

import (
	"errors"
	"testing"

	engine "github.com/jason-s-yu/ygobridge/engine"
)

func TestEncodeCardMonster(t *testing.T) {
	c := engine.CardSnapshot{
		Code:       89631139,
		Controller: 1,
		Location:   engine.LocationMZone,
		Sequence:   2,
		Position:   engine.PositionFaceUpAttack,
		Type:       engine.TypeMonster | engine.TypeNormal,
		Attack:     3000,
		Defense:    2500,
		Level:      8,
		Race:       engine.RaceDragon,
		Attribute:  engine.AttributeLight,
	}
	var out [CardFeatureDim]uint8
	if err := EncodeCard(c, 0x0102, 0, &out); err != nil {
		t.Fatalf("EncodeCard: %v", err)
	}
	want := map[int]uint8{
		0:  0x01,
		1:  0x02,
		2:  uint8(MustLocationID(engine.LocationMZone)),
		3:  2,
		4:  1, // opponent's card
		5:  uint8(MustPositionID(engine.PositionFaceUpAttack)),
		6:  0,
		7:  5, // Light
		9:  8,
		10: 30,
		11: 25,
		12: 1, // Monster
		15: 1, // Normal
	}
	for i, w := range want {
		if out[i] != w {
			t.Errorf("out[%d] = %d, want %d", i, out[i], w)
		}
	}
}

// TestEncodeCardSpellSkipsStats: spell and trap cards leave monster stats zero.
func TestEncodeCardSpellSkipsStats(t *testing.T) {
	c := engine.CardSnapshot{
		Location: engine.LocationSZone,
		Position: engine.PositionFaceDown,
		Type:     engine.TypeSpell,
		Race:     engine.Race(0x3), // not a single race bit; ignored for spells
	}
	var out [CardFeatureDim]uint8
	if err := EncodeCard(c, 0, 0, &out); err != nil {
		t.Fatalf("EncodeCard: %v", err)
	}
	for i := 7; i < 12; i++ {
		if out[i] != 0 {
			t.Errorf("out[%d] = %d, want 0", i, out[i])
		}
	}
}

func TestEncodeCardOverlay(t *testing.T) {
	c := engine.CardSnapshot{Location: engine.LocationMZone | engine.LocationOverlay, Position: engine.PositionNone}
	var out [CardFeatureDim]uint8
	if err := EncodeCard(c, 0, 0, &out); err != nil {
		t.Fatalf("EncodeCard: %v", err)
	}
	if out[6] != 1 || out[2] != uint8(MustLocationID(engine.LocationMZone)) {
		t.Errorf("overlay flags = loc %d overlay %d", out[2], out[6])
	}
}

func TestEncodeCardBadRace(t *testing.T) {
	c := engine.CardSnapshot{
		Location: engine.LocationHand,
		Type:     engine.TypeMonster,
		Race:     engine.RaceDragon | engine.RaceWyrm,
	}
	var out [CardFeatureDim]uint8
	if err := EncodeCard(c, 0, 0, &out); !errors.Is(err, ErrLookupMiss) {
		t.Errorf("EncodeCard err = %v, want ErrLookupMiss", err)
	}
}

func TestEncodeAction(t *testing.T) {
	a := engine.LegalAction{
		Msg:    engine.MsgSelectIdleCmd,
		Kind:   engine.ActActivate,
		Code:   89631139,
		Effect: 89631139<<4 | 1,
	}
	var out [ActionFeatureDim]uint8
	if err := EncodeAction(a, 7, &out); err != nil {
		t.Fatalf("EncodeAction: %v", err)
	}
	want := [ActionFeatureDim]uint8{1, uint8(engine.ActActivate), 0, 0, 0, 0, 1, 1, 0, 7}
	if out != want {
		t.Errorf("EncodeAction = %v, want %v", out, want)
	}

	phase := engine.LegalAction{Msg: engine.MsgSelectBattleCmd, Phase: engine.PhaseMain2, Effect: -1}
	if err := EncodeAction(phase, 0, &out); err != nil {
		t.Fatalf("EncodeAction(phase): %v", err)
	}
	if out[2] == 0 || out[6] != 0 {
		t.Errorf("phase action = %v", out)
	}
}

func TestEncodeActionUnknownMsg(t *testing.T) {
	var out [ActionFeatureDim]uint8
	err := EncodeAction(engine.LegalAction{Msg: engine.MsgHint, Effect: -1}, 0, &out)
	if !errors.Is(err, ErrLookupMiss) {
		t.Errorf("err = %v, want ErrLookupMiss", err)
	}
}

func TestActionMask(t *testing.T) {
	out := make([]bool, 5)
	ActionMask(3, out)
	for i, v := range out {
		if v != (i < 3) {
			t.Errorf("mask[%d] = %v", i, v)
		}
	}
}
