package adapter

import (
	"errors"
	"fmt"

	engine "github.com/jason-s-yu/ygobridge/engine"
)

var (
	// ErrClosed is returned by every session call after Close.
	ErrClosed = errors.New("duel session closed")

	// ErrCreateFailed is returned by Open when the engine refuses a session.
	ErrCreateFailed = errors.New("failed to create duel")

	// ErrQueryFailed marks a query the engine answered with no data. The call
	// may be retried; partial buffers are never returned.
	ErrQueryFailed = errors.New("query failed")
)

// QueryError carries the queried slot and the length the engine reported.
type QueryError struct {
	Player   engine.PlayerID
	Location engine.Location
	Sequence uint8
	Len      int32
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("failed to query card: player %d location %#x sequence %d (len %d)",
		e.Player, uint8(e.Location), e.Sequence, e.Len)
}

func (e *QueryError) Unwrap() error { return ErrQueryFailed }
