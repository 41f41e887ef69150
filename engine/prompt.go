package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Idle command response kinds, packed as (index << 16) | kind.
const (
	idleSummon   = 0
	idleSpSummon = 1
	idleRepos    = 2
	idleMSet     = 3
	idleSSet     = 4
	idleActivate = 5
	idleToBattle = 6
	idleToEnd    = 7
	idleShuffle  = 8
)

// Battle command response kinds, packed the same way.
const (
	battleActivate = 0
	battleAttack   = 1
	battleToMain2  = 2
	battleToEnd    = 3
)

// DecodePrompt decodes one decision message into its legal actions.
// msg starts with the message id byte.
func DecodePrompt(msg []byte) (*Prompt, error) {
	if len(msg) == 0 {
		return nil, &BufferError{Want: 1}
	}
	r := NewReader(msg[1:])
	id := Msg(msg[0])

	var p *Prompt
	switch id {
	case MsgSelectIdleCmd:
		p = decodeIdleCmd(r)
	case MsgSelectBattleCmd:
		p = decodeBattleCmd(r)
	case MsgSelectPlace, MsgSelectDisfield:
		var err error
		if p, err = decodeSelectPlace(r, id); err != nil {
			return nil, err
		}
	case MsgSelectTribute:
		var err error
		if p, err = decodeSelectTribute(r); err != nil {
			return nil, err
		}
	case MsgSelectSum:
		var err error
		if p, err = decodeSelectSum(r); err != nil {
			return nil, err
		}
	case MsgAnnounceAttrib:
		var err error
		if p, err = decodeAnnounceAttrib(r); err != nil {
			return nil, err
		}
	case MsgAnnounceNumber:
		p = decodeAnnounceNumber(r)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedMessage, id)
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("decode message %d after %d bytes: %w", id, r.Offset(), err)
	}
	return p, nil
}

// fieldPlace returns the zone of a card on the field as seen by player, or
// PlaceNone for cards elsewhere.
func fieldPlace(player, con PlayerID, loc Location, seq uint8) Placement {
	if loc&LocationOnField == 0 || loc&LocationOverlay != 0 {
		return PlaceNone
	}
	return PlacementOf(con != player, loc, seq)
}

func newAction(msg Msg, kind ActionKind) LegalAction {
	return LegalAction{Msg: msg, Kind: kind, Effect: -1}
}

func decodeIdleCmd(r *Reader) *Prompt {
	p := &Prompt{Msg: MsgSelectIdleCmd, Player: PlayerID(r.U8())}

	simple := []struct {
		resp int32
		kind ActionKind
	}{
		{idleSummon, ActSummon},
		{idleSpSummon, ActSpSummon},
		{idleRepos, ActReposition},
		{idleMSet, ActMonsterSet},
		{idleSSet, ActSet},
	}
	for _, s := range simple {
		n := int(r.U8())
		for i := 0; i < n; i++ {
			code, con, loc, seq := r.readCardLoc()
			a := newAction(p.Msg, s.kind)
			a.Code = code
			a.Spec = EncodeSpec(loc, seq, 0, con != p.Player)
			a.Place = fieldPlace(p.Player, con, loc, seq)
			a.Response = IntResponse(int32(i)<<16 | s.resp)
			p.Actions = append(p.Actions, a)
		}
	}

	n := int(r.U8())
	for i := 0; i < n; i++ {
		code, con, loc, seq := r.readCardLoc()
		desc := r.U32()
		a := newAction(p.Msg, ActActivate)
		a.Code = code
		a.Spec = EncodeSpec(loc, seq, 0, con != p.Player)
		a.Place = fieldPlace(p.Player, con, loc, seq)
		a.Effect = int(desc)
		a.Response = IntResponse(int32(i)<<16 | idleActivate)
		p.Actions = append(p.Actions, a)
	}

	if r.U8() != 0 {
		a := newAction(p.Msg, ActNone)
		a.Phase = PhaseBattle
		a.Response = IntResponse(idleToBattle)
		p.Actions = append(p.Actions, a)
	}
	if r.U8() != 0 {
		a := newAction(p.Msg, ActNone)
		a.Phase = PhaseEnd
		a.Response = IntResponse(idleToEnd)
		p.Actions = append(p.Actions, a)
	}
	// Hand shuffling is never offered as an action.
	r.Skip(1)
	return p
}

func decodeBattleCmd(r *Reader) *Prompt {
	p := &Prompt{Msg: MsgSelectBattleCmd, Player: PlayerID(r.U8())}

	n := int(r.U8())
	for i := 0; i < n; i++ {
		code, con, loc, seq := r.readCardLoc()
		desc := r.U32()
		a := newAction(p.Msg, ActActivate)
		a.Code = code
		a.Spec = EncodeSpec(loc, seq, 0, con != p.Player)
		a.Place = fieldPlace(p.Player, con, loc, seq)
		a.Effect = int(desc)
		a.Response = IntResponse(int32(i)<<16 | battleActivate)
		p.Actions = append(p.Actions, a)
	}

	n = int(r.U8())
	for i := 0; i < n; i++ {
		code, con, loc, seq := r.readCardLoc()
		direct := r.U8()
		kind := ActAttack
		if direct != 0 {
			kind = ActDirectAttack
		}
		a := newAction(p.Msg, kind)
		a.Code = code
		a.Spec = EncodeSpec(loc, seq, 0, con != p.Player)
		a.Place = fieldPlace(p.Player, con, loc, seq)
		a.Response = IntResponse(int32(i)<<16 | battleAttack)
		p.Actions = append(p.Actions, a)
	}

	if r.U8() != 0 {
		a := newAction(p.Msg, ActNone)
		a.Phase = PhaseMain2
		a.Response = IntResponse(battleToMain2)
		p.Actions = append(p.Actions, a)
	}
	if r.U8() != 0 {
		a := newAction(p.Msg, ActNone)
		a.Phase = PhaseEnd
		a.Response = IntResponse(battleToEnd)
		p.Actions = append(p.Actions, a)
	}
	return p
}

// decodeSelectPlace emits one action per set of count available placements.
// The byte response repeats (controller, location, sequence) per placement.
func decodeSelectPlace(r *Reader, id Msg) (*Prompt, error) {
	p := &Prompt{Msg: id, Player: PlayerID(r.U8())}
	count := int(r.U8())
	mask := r.U32()
	if r.Err() != nil {
		return p, nil
	}
	if count == 0 {
		count = 1
	}

	places := DecodePlacements(mask, false)
	if count > len(places) {
		return p, nil
	}
	combs, err := BoundedCombinations(len(places), count)
	if err != nil {
		return nil, fmt.Errorf("place selection of %d from %d zones: %w", count, len(places), err)
	}
	for _, comb := range combs {
		resp := make([]byte, 0, 3*count)
		for _, idx := range comb {
			opponent, loc, seq, _ := places[idx].Zone()
			con := p.Player
			if opponent {
				con = con.Opponent()
			}
			resp = append(resp, byte(con), byte(loc), seq)
		}
		a := newAction(id, ActNone)
		a.Place = places[comb[0]]
		if count > 1 {
			a.Subset = comb
		}
		a.Response = BytesResponse(resp)
		p.Actions = append(p.Actions, a)
	}
	return p, nil
}

// decodeSelectTribute emits one action per tribute set. A card counts as one
// tribute or as its release param, and any total between min and max is
// accepted.
func decodeSelectTribute(r *Reader) (*Prompt, error) {
	p := &Prompt{Msg: MsgSelectTribute, Player: PlayerID(r.U8())}
	cancelable := r.U8() != 0
	lo := int(r.U8())
	hi := int(r.U8())
	n := int(r.U8())

	specs := make([]string, n)
	codes := make([]CardCode, n)
	weights := make([]int, n)
	for i := 0; i < n; i++ {
		code, con, loc, seq := r.readCardLoc()
		codes[i] = code
		specs[i] = EncodeSpec(loc, seq, 0, con != p.Player)
		weights[i] = int(r.U8())
	}
	if r.Err() != nil {
		return p, nil
	}

	seen := make(map[string]bool)
	for target := lo; target <= hi; target++ {
		combs, err := tributeCombinations(weights, target)
		if err != nil {
			return nil, fmt.Errorf("tribute selection over %d cards: %w", n, err)
		}
		for _, comb := range combs {
			key := subsetKey(comb)
			if seen[key] {
				continue
			}
			seen[key] = true
			p.Actions = append(p.Actions, subsetAction(p.Msg, comb, specs, codes, 0))
		}
	}
	if cancelable {
		a := newAction(p.Msg, ActCancel)
		a.Response = IntResponse(-1)
		p.Actions = append(p.Actions, a)
	}
	return p, nil
}

// decodeSelectSum emits one action per selectable subset reaching the target
// exactly. Must-select cards are counted at their primary value and always
// included in the response.
func decodeSelectSum(r *Reader) (*Prompt, error) {
	mode := r.U8()
	p := &Prompt{Msg: MsgSelectSum, Player: PlayerID(r.U8())}
	target := int(r.U32())
	lo := int(r.U8())
	hi := int(r.U8())

	readCards := func() ([]string, []CardCode, [][]int) {
		n := int(r.U8())
		specs := make([]string, n)
		codes := make([]CardCode, n)
		weights := make([][]int, n)
		for i := 0; i < n; i++ {
			code, con, loc, seq := r.readCardLoc()
			param := r.U32()
			codes[i] = code
			specs[i] = EncodeSpec(loc, seq, 0, con != p.Player)
			weights[i] = sumWeights(param)
		}
		return specs, codes, weights
	}
	_, _, mustWeights := readCards()
	specs, codes, weights := readCards()
	if r.Err() != nil {
		return p, nil
	}
	if mode != 0 {
		return nil, fmt.Errorf("%w: select_sum mode %d", ErrUnsupportedMessage, mode)
	}

	for _, w := range mustWeights {
		target -= w[0]
	}
	if target <= 0 {
		return p, nil
	}
	combs, err := CombinationsWithWeight2(weights, target)
	if err != nil {
		return nil, fmt.Errorf("sum selection over %d cards: %w", len(weights), err)
	}
	for _, comb := range combs {
		if hi > 0 && (len(comb) < lo || len(comb) > hi) {
			continue
		}
		p.Actions = append(p.Actions, subsetAction(p.Msg, comb, specs, codes, len(mustWeights)))
	}
	return p, nil
}

// sumWeights splits a select_sum param into its one or two values.
func sumWeights(param uint32) []int {
	lo := int(param & 0xffff)
	hi := int(param >> 16)
	if hi == 0 || hi == lo {
		return []int{lo}
	}
	return []int{lo, hi}
}

// subsetAction builds the byte response [count, idx...]. The first must
// entries stand for must-select cards and are sent as zero.
func subsetAction(msg Msg, comb []int, specs []string, codes []CardCode, must int) LegalAction {
	resp := make([]byte, 1, 1+must+len(comb))
	resp[0] = byte(must + len(comb))
	resp = append(resp, make([]byte, must)...)
	names := make([]string, len(comb))
	for i, idx := range comb {
		resp = append(resp, byte(idx))
		names[i] = specs[idx]
	}
	a := newAction(msg, ActNone)
	a.Spec = strings.Join(names, ",")
	a.Code = codes[comb[0]]
	a.Subset = comb
	a.Response = BytesResponse(resp)
	return a
}

// releaseSumTo reports whether the cards ind[i:] can supply r tributes. Every
// card but the last counts as one tribute or as its release param; the last
// one closes the sum when the remainder equals its param or is exactly 1.
func releaseSumTo(w []int, ind []int, i, r int) bool {
	if r <= 0 {
		return false
	}
	if i == len(ind)-1 {
		return r == 1 || w[ind[i]] == r
	}
	return releaseSumTo(w, ind, i+1, r-1) || releaseSumTo(w, ind, i+1, r-w[ind[i]])
}

// tributeCombinations returns every card subset that can supply r tributes,
// smallest subsets first.
func tributeCombinations(release []int, r int) ([][]int, error) {
	return searchSubsets(len(release), func(comb []int) bool {
		return releaseSumTo(release, comb, 0, r)
	})
}

func subsetKey(comb []int) string {
	b := make([]byte, 0, 3*len(comb))
	for _, i := range comb {
		b = strconv.AppendInt(b, int64(i), 10)
		b = append(b, ',')
	}
	return string(b)
}

// decodeAnnounceAttrib emits one action per combination of count attributes.
// The response is the chosen attribute mask.
func decodeAnnounceAttrib(r *Reader) (*Prompt, error) {
	p := &Prompt{Msg: MsgAnnounceAttrib, Player: PlayerID(r.U8())}
	count := int(r.U8())
	avail := r.U32()
	if r.Err() != nil {
		return p, nil
	}
	if count == 0 {
		count = 1
	}

	var attrs []Attribute
	avail &= uint32(AttributeEarth | AttributeWater | AttributeFire | AttributeWind |
		AttributeLight | AttributeDark | AttributeDivine)
	for avail != 0 {
		bit := avail & -avail
		attrs = append(attrs, Attribute(bit))
		avail &^= bit
	}
	if count > len(attrs) {
		return p, nil
	}
	combs, err := BoundedCombinations(len(attrs), count)
	if err != nil {
		return nil, fmt.Errorf("attribute announce of %d from %d: %w", count, len(attrs), err)
	}
	for _, comb := range combs {
		var mask Attribute
		for _, i := range comb {
			mask |= attrs[i]
		}
		a := newAction(p.Msg, ActNone)
		a.Attribute = mask
		a.Response = IntResponse(int32(mask))
		p.Actions = append(p.Actions, a)
	}
	return p, nil
}

// decodeAnnounceNumber emits one action per offered number; the response is
// the index of the chosen value.
func decodeAnnounceNumber(r *Reader) *Prompt {
	p := &Prompt{Msg: MsgAnnounceNumber, Player: PlayerID(r.U8())}
	n := int(r.U8())
	for i := 0; i < n; i++ {
		v := r.U32()
		a := newAction(p.Msg, ActNone)
		a.Number = int(v)
		a.Response = IntResponse(int32(i))
		p.Actions = append(p.Actions, a)
	}
	return p
}
