package engine

import (
	"fmt"
	"strings"
)

// ActionKind is what a legal action does with its card.
type ActionKind uint8

const (
	ActNone          ActionKind = iota // 0: phase change or plain choice
	ActSet                             // 1: set a spell/trap
	ActReposition                      // 2: change battle position
	ActSpSummon                        // 3: special summon
	ActSummon                          // 4: normal summon
	ActMonsterSet                      // 5: set a monster in a zone
	ActAttack                          // 6: attack a monster
	ActDirectAttack                    // 7: attack directly
	ActActivate                        // 8: activate an effect
	ActCancel                          // 9: cancel the prompt
)

var actionKindNames = [...]string{
	ActNone:         "none",
	ActSet:          "set",
	ActReposition:   "repo",
	ActSpSummon:     "spsummon",
	ActSummon:       "summon",
	ActMonsterSet:   "mset",
	ActAttack:       "attack",
	ActDirectAttack: "direct_attack",
	ActActivate:     "activate",
	ActCancel:       "cancel",
}

func (k ActionKind) String() string {
	if int(k) < len(actionKindNames) {
		return actionKindNames[k]
	}
	return fmt.Sprintf("ActionKind(%d)", uint8(k))
}

// Response is the value handed back to the engine for one decision. Exactly
// one of Int or Bytes is meaningful, selected by IsBytes.
type Response struct {
	Int     int32
	Bytes   []byte
	IsBytes bool
}

// IntResponse wraps an integer response.
func IntResponse(v int32) Response { return Response{Int: v} }

// BytesResponse wraps a byte response.
func BytesResponse(b []byte) Response { return Response{Bytes: b, IsBytes: true} }

// LegalAction is one selectable move decoded from a prompt.
//
// Spec, Place, Phase, Number, Attribute and Effect are optional; zero values
// mean "not set". Msg, Code and Response echo what the engine needs to accept
// the choice.
type LegalAction struct {
	Spec      string
	Kind      ActionKind
	Phase     Phase
	Place     Placement
	Number    int
	Attribute Attribute
	Effect    int // effect description index; -1 when absent
	Subset    []int

	Msg      Msg
	Code     CardCode
	Response Response
}

func (a LegalAction) String() string {
	var sb strings.Builder
	sb.WriteString(a.Kind.String())
	if a.Spec != "" {
		sb.WriteString(" ")
		sb.WriteString(a.Spec)
	}
	if a.Place != PlaceNone {
		sb.WriteString(" @")
		sb.WriteString(a.Place.String())
	}
	if a.Phase != PhaseNone {
		fmt.Fprintf(&sb, " phase=%#x", uint16(a.Phase))
	}
	if a.Number != 0 {
		fmt.Fprintf(&sb, " n=%d", a.Number)
	}
	if a.Attribute != AttributeNone {
		fmt.Fprintf(&sb, " attr=%#x", uint8(a.Attribute))
	}
	if a.Effect >= 0 {
		fmt.Fprintf(&sb, " effect=%d", a.Effect)
	}
	if len(a.Subset) > 0 {
		fmt.Fprintf(&sb, " subset=%v", a.Subset)
	}
	return sb.String()
}

// Prompt is a decoded decision message: the acting player and every legal
// action. It lives for one decision point only.
type Prompt struct {
	Msg     Msg
	Player  PlayerID
	Actions []LegalAction
}

// Response returns the engine response for action i.
func (p *Prompt) Response(i int) (Response, error) {
	if i < 0 || i >= len(p.Actions) {
		return Response{}, fmt.Errorf("action index %d out of range (%d actions)", i, len(p.Actions))
	}
	return p.Actions[i].Response, nil
}
