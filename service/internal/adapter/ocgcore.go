//go:build ocgcore

package adapter

/*
#cgo LDFLAGS: -locgcore -lstdc++ -llua
#include <stdint.h>

// Exported C symbols of ocgapi.h, declared with fixed-width types.
extern intptr_t create_duel(uint32_t seed);
extern void start_duel(intptr_t pduel, int32_t options);
extern void end_duel(intptr_t pduel);
extern void set_player_info(intptr_t pduel, int32_t playerid, int32_t lp, int32_t startcount, int32_t drawcount);
extern void new_card(intptr_t pduel, uint32_t code, uint8_t owner, uint8_t playerid, uint8_t location, uint8_t sequence, uint8_t position);
extern uint32_t process(intptr_t pduel);
extern int32_t get_message(intptr_t pduel, unsigned char* buf);
extern void set_responsei(intptr_t pduel, int32_t value);
extern void set_responseb(intptr_t pduel, unsigned char* buf);
extern int32_t query_card(intptr_t pduel, uint8_t playerid, uint8_t location, uint8_t sequence, int32_t query_flag, unsigned char* buf, int32_t use_cache);
extern int32_t query_field_card(intptr_t pduel, uint8_t playerid, uint8_t location, uint32_t query_flag, unsigned char* buf, int32_t use_cache);
*/
import "C"

import (
	"unsafe"

	engine "github.com/jason-s-yu/ygobridge/engine"
)

// OCGCore calls the linked ygopro-core library. Card and script readers must
// be registered with the library before the first CreateDuel.
type OCGCore struct{}

// NewOCGCore returns the cgo-backed Core.
func NewOCGCore() OCGCore { return OCGCore{} }

func ptr(b []byte) *C.uchar {
	if len(b) == 0 {
		return nil
	}
	return (*C.uchar)(unsafe.Pointer(&b[0]))
}

func (OCGCore) CreateDuel(seed uint32) Duel {
	return Duel(C.create_duel(C.uint32_t(seed)))
}

func (OCGCore) EndDuel(d Duel) { C.end_duel(C.intptr_t(d)) }

func (OCGCore) SetPlayerInfo(d Duel, player engine.PlayerID, lp, startCount, drawCount int32) {
	C.set_player_info(C.intptr_t(d), C.int32_t(player), C.int32_t(lp), C.int32_t(startCount), C.int32_t(drawCount))
}

func (OCGCore) NewCard(d Duel, code engine.CardCode, owner, player engine.PlayerID, loc engine.Location, seq uint8, pos engine.Position) {
	C.new_card(C.intptr_t(d), C.uint32_t(code), C.uint8_t(owner), C.uint8_t(player),
		C.uint8_t(loc), C.uint8_t(seq), C.uint8_t(pos))
}

func (OCGCore) StartDuel(d Duel, options int32) {
	C.start_duel(C.intptr_t(d), C.int32_t(options))
}

func (OCGCore) Process(d Duel) uint32 {
	return uint32(C.process(C.intptr_t(d)))
}

func (OCGCore) GetMessage(d Duel, buf []byte) int32 {
	return int32(C.get_message(C.intptr_t(d), ptr(buf)))
}

func (OCGCore) SetResponseI(d Duel, v int32) {
	C.set_responsei(C.intptr_t(d), C.int32_t(v))
}

func (OCGCore) SetResponseB(d Duel, b []byte) {
	// The engine copies at most 64 bytes out of the response buffer.
	var resp [64]byte
	copy(resp[:], b)
	C.set_responseb(C.intptr_t(d), (*C.uchar)(unsafe.Pointer(&resp[0])))
}

func (OCGCore) QueryFieldCard(d Duel, player engine.PlayerID, loc engine.Location, info uint32, buf []byte) int32 {
	return int32(C.query_field_card(C.intptr_t(d), C.uint8_t(player), C.uint8_t(loc), C.uint32_t(info), ptr(buf), 0))
}

func (OCGCore) QueryCard(d Duel, player engine.PlayerID, loc engine.Location, seq uint8, info uint32, buf []byte) int32 {
	return int32(C.query_card(C.intptr_t(d), C.uint8_t(player), C.uint8_t(loc), C.uint8_t(seq), C.int32_t(info), ptr(buf), 0))
}
