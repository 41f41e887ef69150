package adapter

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mathext/prng"

	engine "github.com/jason-s-yu/ygobridge/engine"
)

const (
	// MessageBufferSize is large enough for any single get_message batch.
	MessageBufferSize = 0x20000

	fieldQueryBufferSize = 4096
	cardQueryBufferSize  = 1024

	// FieldQueryLocations is the fixed filter of QueryField.
	FieldQueryLocations = engine.LocationMZone | engine.LocationSZone | engine.LocationHand
)

// Status is the decoded result of one Pump.
type Status struct {
	Len     int  // bytes pending for NextMessage
	Waiting bool // the engine needs a response
	Ended   bool // the duel is over
}

// ParseStatus splits a raw process() result.
func ParseStatus(v uint32) Status {
	return Status{
		Len:     int(v & engine.ProcessorBufferLen),
		Waiting: v&engine.ProcessorWaiting != 0,
		Ended:   v&engine.ProcessorEnd != 0,
	}
}

// Adapter owns exactly one engine session. It must not be shared between
// goroutines; the pump/respond protocol already serializes every call.
type Adapter struct {
	core   Core
	duel   Duel
	id     uuid.UUID
	seed   uint32
	closed bool
	log    logrus.FieldLogger
}

// DeriveSeed returns the engine seed for a caller seed: the second output of
// an MT19937 seeded with seed.
func DeriveSeed(seed uint32) uint32 {
	mt := prng.NewMT19937()
	mt.Seed(uint64(seed))
	mt.Uint32() // burn one
	return mt.Uint32()
}

// Open creates one duel session. A nil logger uses the logrus standard logger.
func Open(core Core, seed uint32, log logrus.FieldLogger) (*Adapter, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	a := &Adapter{
		core: core,
		id:   uuid.New(),
		seed: DeriveSeed(seed),
	}
	a.log = log.WithField("session", a.id.String())

	a.duel = core.CreateDuel(a.seed)
	if a.duel == 0 {
		return nil, fmt.Errorf("%w (seed %d)", ErrCreateFailed, seed)
	}
	a.log.WithField("seed", seed).Debug("duel created")
	return a, nil
}

// ID returns the session id used in log fields.
func (a *Adapter) ID() uuid.UUID { return a.id }

// EngineSeed returns the seed handed to the engine.
func (a *Adapter) EngineSeed() uint32 { return a.seed }

// Closed reports whether Close has been called.
func (a *Adapter) Closed() bool { return a.closed }

func (a *Adapter) SetPlayerInfo(player engine.PlayerID, lp, startCount, drawCount int32) error {
	if a.closed {
		return ErrClosed
	}
	a.core.SetPlayerInfo(a.duel, player, lp, startCount, drawCount)
	return nil
}

// AddCard places a card before the duel starts.
func (a *Adapter) AddCard(code engine.CardCode, owner, player engine.PlayerID, loc engine.Location, seq uint8, pos engine.Position) error {
	if a.closed {
		return ErrClosed
	}
	a.core.NewCard(a.duel, code, owner, player, loc, seq, pos)
	return nil
}

// AddDeck places the main and extra deck of d for player, face down.
func (a *Adapter) AddDeck(player engine.PlayerID, d engine.Deck) error {
	for i := len(d.Main) - 1; i >= 0; i-- {
		if err := a.AddCard(d.Main[i], player, player, engine.LocationDeck, 0, engine.PositionFaceDownDefense); err != nil {
			return err
		}
	}
	for i := len(d.Extra) - 1; i >= 0; i-- {
		if err := a.AddCard(d.Extra[i], player, player, engine.LocationExtra, 0, engine.PositionFaceDownDefense); err != nil {
			return err
		}
	}
	a.log.WithFields(logrus.Fields{
		"player": player,
		"main":   len(d.Main),
		"extra":  len(d.Extra),
	}).Debug("deck added")
	return nil
}

func (a *Adapter) StartDuel(options int32) error {
	if a.closed {
		return ErrClosed
	}
	a.core.StartDuel(a.duel, options)
	a.log.WithField("options", options).Debug("duel started")
	return nil
}

// Pump advances the engine one step.
func (a *Adapter) Pump() (Status, error) {
	if a.closed {
		return Status{}, ErrClosed
	}
	st := ParseStatus(a.core.Process(a.duel))
	a.log.WithFields(logrus.Fields{
		"len":     st.Len,
		"waiting": st.Waiting,
		"ended":   st.Ended,
	}).Trace("pump")
	return st, nil
}

// NextMessage copies the pending message batch into buf and returns its
// length. buf should be MessageBufferSize bytes.
func (a *Adapter) NextMessage(buf []byte) (int, error) {
	if a.closed {
		return 0, ErrClosed
	}
	n := int(a.core.GetMessage(a.duel, buf))
	if n > len(buf) {
		return 0, &engine.BufferError{Want: n, Len: len(buf)}
	}
	return n, nil
}

func (a *Adapter) SetResponse(v int32) error {
	if a.closed {
		return ErrClosed
	}
	a.core.SetResponseI(a.duel, v)
	return nil
}

func (a *Adapter) SetResponseBytes(b []byte) error {
	if a.closed {
		return ErrClosed
	}
	a.core.SetResponseB(a.duel, b)
	return nil
}

// Submit sends the response of a chosen legal action.
func (a *Adapter) Submit(r engine.Response) error {
	if r.IsBytes {
		return a.SetResponseBytes(r.Bytes)
	}
	return a.SetResponse(r.Int)
}

// QueryField returns every card of player in the monster zones, the spell &
// trap zones and the hand, in engine order. An empty field yields no cards.
func (a *Adapter) QueryField(player engine.PlayerID) ([]engine.CardSnapshot, error) {
	if a.closed {
		return nil, ErrClosed
	}
	buf := make([]byte, fieldQueryBufferSize)
	n := a.core.QueryFieldCard(a.duel, player, FieldQueryLocations, engine.QueryInfoMask, buf)
	if n <= 0 {
		return nil, nil
	}
	if int(n) > len(buf) {
		return nil, &engine.BufferError{Want: int(n), Len: len(buf)}
	}
	cards, err := decodeFieldRecords(buf[:n])
	if err != nil {
		return nil, fmt.Errorf("query field of player %d: %w", player, err)
	}
	return cards, nil
}

// QueryCard returns one card. A zero or negative reply is a *QueryError.
func (a *Adapter) QueryCard(player engine.PlayerID, loc engine.Location, seq uint8) (engine.CardSnapshot, error) {
	if a.closed {
		return engine.CardSnapshot{}, ErrClosed
	}
	buf := make([]byte, cardQueryBufferSize)
	n := a.core.QueryCard(a.duel, player, loc, seq, engine.QueryInfoMask, buf)
	if n <= 0 {
		return engine.CardSnapshot{}, &QueryError{Player: player, Location: loc, Sequence: seq, Len: n}
	}
	if int(n) > len(buf) {
		n = int32(len(buf))
	}
	c, err := decodeCardRecord(buf[:n])
	if err != nil {
		return engine.CardSnapshot{}, fmt.Errorf("query card %d/%#x/%d: %w", player, uint8(loc), seq, err)
	}
	c.Controller = player
	c.Location = loc
	c.Sequence = seq
	return c, nil
}

// Close releases the session. Later calls are no-ops.
func (a *Adapter) Close() error {
	if a.closed {
		return nil
	}
	a.core.EndDuel(a.duel)
	a.closed = true
	a.duel = 0
	a.log.Debug("duel ended")
	return nil
}
