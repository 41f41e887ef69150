package engine

import (
	"encoding/binary"
	"fmt"
)

// Message is one engine message cut out of a batch. Body excludes the id byte.
type Message struct {
	ID   Msg
	Body []byte
}

// Fixed body sizes of the event messages.
var eventSize = map[Msg]int{
	MsgRetry:           0,
	MsgHint:            6,
	MsgWaiting:         0,
	MsgWin:             2,
	MsgShuffleDeck:     1,
	MsgRefreshDeck:     1,
	MsgSwapGraveDeck:   1,
	MsgReverseDeck:     0,
	MsgDeckTop:         6,
	MsgNewTurn:         1,
	MsgNewPhase:        2,
	MsgMove:            16,
	MsgPosChange:       9,
	MsgSet:             8,
	MsgSwap:            16,
	MsgFieldDisabled:   4,
	MsgSummoning:       8,
	MsgSummoned:        0,
	MsgSpSummoning:     8,
	MsgSpSummoned:      0,
	MsgFlipSummoning:   8,
	MsgFlipSummoned:    0,
	MsgChaining:        16,
	MsgChained:         1,
	MsgChainSolving:    1,
	MsgChainSolved:     1,
	MsgChainEnd:        0,
	MsgChainNegated:    1,
	MsgChainDisabled:   1,
	MsgDamage:          5,
	MsgRecover:         5,
	MsgEquip:           8,
	MsgLPUpdate:        5,
	MsgUnequip:         4,
	MsgCardTarget:      8,
	MsgCancelTarget:    8,
	MsgPayLPCost:       5,
	MsgAddCounter:      7,
	MsgRemoveCounter:   7,
	MsgAttack:          8,
	MsgBattle:          26,
	MsgAttackDisabled:  0,
	MsgDamageStepStart: 0,
	MsgDamageStepEnd:   0,
	MsgMissedEffect:    8,
	MsgHandRes:         1,
	MsgCardHint:        9,
	MsgPlayerHint:      6,
	MsgMatchKill:       4,
}

// Event messages carrying a list: head bytes, a count byte, then count
// records of record bytes each.
var countedEvents = map[Msg]struct{ head, record int }{
	MsgConfirmDecktop:  {1, 7},
	MsgConfirmExtratop: {1, 7},
	MsgConfirmCards:    {1, 7},
	MsgShuffleHand:     {1, 4},
	MsgShuffleExtra:    {1, 4},
	MsgShuffleSetCard:  {1, 8},
	MsgCardSelected:    {1, 4},
	MsgRandomSelected:  {1, 4},
	MsgBecomeTarget:    {0, 4},
	MsgDraw:            {1, 4},
	MsgTossCoin:        {1, 1},
	MsgTossDice:        {1, 1},
}

// IsDecision reports whether the engine waits for a response after m.
func IsDecision(m Msg) bool {
	switch m {
	case MsgSelectBattleCmd, MsgSelectIdleCmd, MsgSelectEffectYN, MsgSelectYesNo,
		MsgSelectOption, MsgSelectCard, MsgSelectChain, MsgSelectPlace,
		MsgSelectPosition, MsgSelectTribute, MsgSortChain, MsgSelectCounter,
		MsgSelectSum, MsgSelectDisfield, MsgSortCard, MsgSelectUnselectCard,
		MsgRockPaperScissors, MsgAnnounceRace, MsgAnnounceAttrib,
		MsgAnnounceCard, MsgAnnounceNumber:
		return true
	}
	return false
}

// eventLen returns the body length of the event message id whose body starts
// at body[0].
func eventLen(id Msg, body []byte) (int, error) {
	if n, ok := eventSize[id]; ok {
		return n, nil
	}
	if c, ok := countedEvents[id]; ok {
		if len(body) <= c.head {
			return 0, &BufferError{Want: c.head + 1, Len: len(body)}
		}
		return c.head + 1 + int(body[c.head])*c.record, nil
	}
	switch id {
	case MsgAIName, MsgShowHint:
		// u16 length, the text, a trailing NUL.
		if len(body) < 2 {
			return 0, &BufferError{Want: 2, Len: len(body)}
		}
		return 2 + int(binary.LittleEndian.Uint16(body)) + 1, nil
	}
	return 0, fmt.Errorf("%w: %d in batch", ErrUnsupportedMessage, id)
}

// SplitBatch cuts a GetMessage batch into the event messages that precede a
// decision and the decision message itself, id byte included. prompt is nil
// when the batch holds events only. The decision message is always last, so
// everything from its id byte on is returned as the prompt.
func SplitBatch(buf []byte) (events []Message, prompt []byte, err error) {
	off := 0
	for off < len(buf) {
		id := Msg(buf[off])
		if IsDecision(id) {
			return events, buf[off:], nil
		}
		body := buf[off+1:]
		n, err := eventLen(id, body)
		if err != nil {
			return events, nil, fmt.Errorf("message %d at offset %d: %w", id, off, err)
		}
		if n > len(body) {
			return events, nil, fmt.Errorf("message %d at offset %d: %w", id, off,
				&BufferError{Offset: off + 1, Want: n, Len: len(body)})
		}
		events = append(events, Message{ID: id, Body: body[:n]})
		off += 1 + n
	}
	return events, nil, nil
}
