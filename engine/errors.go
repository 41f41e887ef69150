package engine

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the decoding layer. Callers match them with errors.Is;
// the concrete types below carry the context needed to diagnose the failure.
var (
	// ErrMalformedProtocol marks a message, spec string or opcode stream that
	// does not match the wire grammar. The whole message must be treated as corrupt.
	ErrMalformedProtocol = errors.New("malformed protocol")

	// ErrConfiguration marks a deck or environment problem detected before a
	// session is opened.
	ErrConfiguration = errors.New("configuration error")

	// ErrUnsupportedMessage is returned by DecodePrompt for message ids that do
	// not carry a decision prompt handled here.
	ErrUnsupportedMessage = errors.New("unsupported message")

	// ErrSearchTooLarge rejects subset searches above MaxSearchItems.
	ErrSearchTooLarge = errors.New("subset search too large")
)

// SpecError reports a spec string that could not be decoded.
type SpecError struct {
	Spec   string
	Reason string
}

func (e *SpecError) Error() string {
	return fmt.Sprintf("invalid spec %q: %s", e.Spec, e.Reason)
}

func (e *SpecError) Unwrap() error { return ErrMalformedProtocol }

// OpcodeError reports an opcode stream whose shape or sentinels are wrong.
// Index is the first offending position, or -1 when the length itself is invalid.
type OpcodeError struct {
	Index   int
	Opcodes []uint32
}

func (e *OpcodeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid format of opcodes (len %d): %v", len(e.Opcodes), e.Opcodes)
	}
	return fmt.Sprintf("invalid format of opcodes starting from %d: %v", e.Index, e.Opcodes)
}

func (e *OpcodeError) Unwrap() error { return ErrMalformedProtocol }

// BufferError reports a read past the end of a message buffer.
type BufferError struct {
	Offset int
	Want   int
	Len    int
}

func (e *BufferError) Error() string {
	return fmt.Sprintf("short buffer: need %d bytes at offset %d, have %d", e.Want, e.Offset, e.Len)
}

func (e *BufferError) Unwrap() error { return ErrMalformedProtocol }

// DeckError reports a deck list that cannot be used.
type DeckError struct {
	Path  string
	Count int // main deck size, when known
	Err   error
}

func (e *DeckError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("deck %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("main deck must contain at least %d cards, found: %d, file: %s", MinMainDeck, e.Count, e.Path)
}

func (e *DeckError) Is(target error) bool { return target == ErrConfiguration }

func (e *DeckError) Unwrap() error { return e.Err }
