package engine

// Sentinels closing each three-token entry of an opcode stream.
const (
	OpcodeEndSub   uint32 = 1073742080 // end of sub-expression
	OpcodeEndEntry uint32 = 1073741829 // end of entry
)

// ParseOpcodeCodes extracts the card codes from an activation opcode stream.
//
// A two-element stream is a single implicit entry whose code is element 0.
// Otherwise the stream is two header tokens followed by entries of
// (code, OpcodeEndSub, OpcodeEndEntry). Any other shape is an *OpcodeError.
func ParseOpcodeCodes(opcodes []uint32) ([]CardCode, error) {
	n := len(opcodes)
	if n == 2 {
		return []CardCode{CardCode(opcodes[0])}, nil
	}
	if n < 2 || (n-2)%3 != 0 {
		return nil, &OpcodeError{Index: -1, Opcodes: opcodes}
	}

	codes := make([]CardCode, 0, (n-2)/3)
	for i := 2; i < n; i += 3 {
		if opcodes[i+1] != OpcodeEndSub || opcodes[i+2] != OpcodeEndEntry {
			return nil, &OpcodeError{Index: i, Opcodes: opcodes}
		}
		codes = append(codes, CardCode(opcodes[i]))
	}
	return codes, nil
}
