package engine

import (
	"fmt"
	"strconv"
)

// MaxSpecSub is the largest overlay index a spec letter can carry ('z').
const MaxSpecSub = 'z' - 'a'

// EncodeSpec renders a card position as a spec string, e.g. "h3", "m2a", "os1".
//
// The zone letter is chosen by the first matching bit in the order
// hand, monster, spell/trap, graveyard, banished, extra. Deck cards have no
// letter. Overlay materials get a trailing 'a'+sub letter; EncodeSpec panics
// when an overlay sub exceeds MaxSpecSub.
func EncodeSpec(loc Location, seq, sub uint8, opponent bool) string {
	if loc&LocationOverlay != 0 && sub > MaxSpecSub {
		panic(fmt.Sprintf("engine: overlay sub %d does not fit a spec letter", sub))
	}
	b := make([]byte, 0, 6)
	if opponent {
		b = append(b, 'o')
	}
	switch {
	case loc&LocationHand != 0:
		b = append(b, 'h')
	case loc&LocationMZone != 0:
		b = append(b, 'm')
	case loc&LocationSZone != 0:
		b = append(b, 's')
	case loc&LocationGrave != 0:
		b = append(b, 'g')
	case loc&LocationRemoved != 0:
		b = append(b, 'r')
	case loc&LocationExtra != 0:
		b = append(b, 'x')
	}
	b = strconv.AppendInt(b, int64(seq)+1, 10)
	if loc&LocationOverlay != 0 {
		b = append(b, 'a'+sub)
	}
	return string(b)
}

// specZones maps a zone letter to its location.
var specZones = map[byte]Location{
	'h': LocationHand,
	'm': LocationMZone,
	's': LocationSZone,
	'g': LocationGrave,
	'r': LocationRemoved,
	'x': LocationExtra,
}

// DecodeSpec parses a spec string without an opponent prefix.
// A trailing sub letter also sets LocationOverlay, so EncodeSpec and
// DecodeSpec round-trip for overlay materials.
func DecodeSpec(spec string) (loc Location, seq, sub uint8, err error) {
	if spec == "" {
		return 0, 0, 0, &SpecError{Spec: spec, Reason: "empty"}
	}
	offset := 1
	if l, ok := specZones[spec[0]]; ok {
		loc = l
	} else if isDigit(spec[0]) {
		loc = LocationDeck
		offset = 0
	} else {
		return 0, 0, 0, &SpecError{Spec: spec, Reason: "unknown zone letter"}
	}

	end := offset
	for end < len(spec) && isDigit(spec[end]) {
		end++
	}
	if end == offset {
		return 0, 0, 0, &SpecError{Spec: spec, Reason: "missing slot number"}
	}
	n, convErr := strconv.Atoi(spec[offset:end])
	if convErr != nil || n < 1 || n > 256 {
		return 0, 0, 0, &SpecError{Spec: spec, Reason: "slot out of range"}
	}
	seq = uint8(n - 1)

	if end < len(spec) {
		c := spec[end]
		if c < 'a' || c > 'z' || end+1 != len(spec) {
			return 0, 0, 0, &SpecError{Spec: spec, Reason: "invalid sub index"}
		}
		sub = c - 'a'
		loc |= LocationOverlay
	}
	return loc, seq, sub, nil
}

// DecodeSpecFor parses a spec string from player's point of view. A leading
// 'o' selects the opponent as controller.
func DecodeSpecFor(player PlayerID, spec string) (controller PlayerID, loc Location, seq, sub uint8, err error) {
	controller = player
	if len(spec) > 0 && spec[0] == 'o' {
		controller = player.Opponent()
		spec = spec[1:]
	}
	loc, seq, sub, err = DecodeSpec(spec)
	return controller, loc, seq, sub, err
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
