package agent

import (
	"errors"
	"testing"

	engine "github.com/jason-s-yu/ygobridge/engine"
)

func TestSystemStringIDs(t *testing.T) {
	tests := []struct {
		desc int
		want int
	}{
		{1, 16},
		{30, 17},
		{31, 18},
	}
	for _, tt := range tests {
		got, err := SystemStringID(tt.desc)
		if err != nil || got != tt.want {
			t.Errorf("SystemStringID(%d) = %d, %v, want %d", tt.desc, got, err, tt.want)
		}
	}
	if _, err := SystemStringID(12345); !errors.Is(err, ErrLookupMiss) {
		t.Errorf("SystemStringID(12345) err = %v, want ErrLookupMiss", err)
	}
	if n := systemStringIDs.Len(); SystemStringOffset+n > 256 {
		t.Errorf("system string ids overflow a byte: %d", SystemStringOffset+n)
	}
}

func TestLocationIDs(t *testing.T) {
	want := []engine.Location{
		engine.LocationDeck, engine.LocationHand, engine.LocationMZone, engine.LocationSZone,
		engine.LocationGrave, engine.LocationRemoved, engine.LocationExtra,
	}
	for i, loc := range want {
		if got := MustLocationID(loc); got != i+1 {
			t.Errorf("LocationID(%#x) = %d, want %d", loc, got, i+1)
		}
	}
	if _, err := LocationID(engine.LocationOverlay); !errors.Is(err, ErrLookupMiss) {
		t.Errorf("LocationID(overlay) err = %v, want ErrLookupMiss", err)
	}
}

func TestPositionIDs(t *testing.T) {
	tests := []struct {
		pos  engine.Position
		want int
	}{
		{engine.PositionNone, 0},
		{engine.PositionFaceUpAttack, 1},
		{engine.PositionAttack, 3},
		{engine.PositionFaceUp, 5},
		{engine.PositionDefense, 8},
	}
	for _, tt := range tests {
		if got := MustPositionID(tt.pos); got != tt.want {
			t.Errorf("PositionID(%#x) = %d, want %d", tt.pos, got, tt.want)
		}
	}
}

func TestMsgIDs(t *testing.T) {
	if got, _ := MsgID(engine.MsgSelectIdleCmd); got != 1 {
		t.Errorf("MsgID(idlecmd) = %d, want 1", got)
	}
	if got, _ := MsgID(engine.MsgAnnounceCard); got != len(selectMsgs) {
		t.Errorf("MsgID(announce_card) = %d, want %d", got, len(selectMsgs))
	}
	if _, err := MsgID(engine.MsgHint); !errors.Is(err, ErrLookupMiss) {
		t.Errorf("MsgID(hint) err = %v, want ErrLookupMiss", err)
	}
}

func TestTypeToIDs(t *testing.T) {
	if len(typeNames) != NumTypes {
		t.Fatalf("len(typeNames) = %d, want %d", len(typeNames), NumTypes)
	}
	ids := TypeToIDs(engine.TypeMonster | engine.TypeEffect | engine.TypeLink)
	if len(ids) != NumTypes {
		t.Fatalf("len = %d, want %d", len(ids), NumTypes)
	}
	// Monster is bit 0, Effect is the 5th table entry, Link the last.
	if ids[0] != 1 || ids[4] != 1 || ids[NumTypes-1] != 1 {
		t.Errorf("TypeToIDs = %v", ids)
	}
	sum := 0
	for _, v := range ids {
		sum += int(v)
	}
	if sum != 3 {
		t.Errorf("sum(TypeToIDs) = %d, want 3", sum)
	}
}

func TestEffectID(t *testing.T) {
	const code engine.CardCode = 89631139
	if got, err := EffectID(code, uint32(code)<<4|2); err != nil || got != 2 {
		t.Errorf("EffectID(own) = %d, %v, want 2", got, err)
	}
	if got, err := EffectID(code, 1160); err != nil || got < SystemStringOffset {
		t.Errorf("EffectID(system) = %d, %v, want >= %d", got, err, SystemStringOffset)
	}
	if _, err := EffectID(code, 46986414<<4); !errors.Is(err, ErrLookupMiss) {
		t.Errorf("EffectID(other card) err = %v, want ErrLookupMiss", err)
	}
}

func TestStrings(t *testing.T) {
	if got := MsgToString(engine.MsgSelectSum); got != "select_sum" {
		t.Errorf("MsgToString = %q", got)
	}
	if got := MsgToString(engine.Msg(250)); got != "unknown_msg" {
		t.Errorf("MsgToString(250) = %q", got)
	}
	if got := ReasonToString(1); got != "LP reached 0" {
		t.Errorf("ReasonToString(1) = %q", got)
	}
	if got := ReasonToString(9); got != "Unknown" {
		t.Errorf("ReasonToString(9) = %q", got)
	}
	if got := AttributeString(engine.AttributeDark); got != "Dark" {
		t.Errorf("AttributeString = %q", got)
	}
	if got := PhaseString(engine.Phase(0x400)); got != "unknown" {
		t.Errorf("PhaseString(0x400) = %q", got)
	}
	if got := TypeString(engine.TypeMonster | engine.TypeXyz); got != "Monster|XYZ" {
		t.Errorf("TypeString = %q", got)
	}
	if s, err := SystemString(1150); err != nil || s != "Activate" {
		t.Errorf("SystemString(1150) = %q, %v", s, err)
	}
	if _, err := SystemString(7); !errors.Is(err, ErrLookupMiss) {
		t.Errorf("SystemString(7) err = %v, want ErrLookupMiss", err)
	}
}
