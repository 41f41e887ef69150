// Package adapter owns one ygopro-core duel session and exposes its
// message pump and typed field/card queries.
package adapter

import engine "github.com/jason-s-yu/ygobridge/engine"

// Duel is an opaque engine session handle.
type Duel uintptr

// Core is the consumed duel engine API. Implementations are not required to
// be safe for concurrent use; an Adapter serializes every call it makes.
type Core interface {
	CreateDuel(seed uint32) Duel
	EndDuel(d Duel)
	SetPlayerInfo(d Duel, player engine.PlayerID, lp, startCount, drawCount int32)
	NewCard(d Duel, code engine.CardCode, owner, player engine.PlayerID, loc engine.Location, seq uint8, pos engine.Position)
	StartDuel(d Duel, options int32)
	Process(d Duel) uint32
	GetMessage(d Duel, buf []byte) int32
	SetResponseI(d Duel, v int32)
	SetResponseB(d Duel, b []byte)
	QueryFieldCard(d Duel, player engine.PlayerID, loc engine.Location, info uint32, buf []byte) int32
	QueryCard(d Duel, player engine.PlayerID, loc engine.Location, seq uint8, info uint32, buf []byte) int32
}
