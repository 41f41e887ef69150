package engine

// PlayerID identifies one of the two duelists. Only 0 and 1 are valid.
type PlayerID uint8

// NumPlayers is the number of duelists in a session.
const NumPlayers = 2

// Opponent returns the other duelist.
func (p PlayerID) Opponent() PlayerID { return 1 - p }

// CardCode is the 32-bit identity of a printed card definition.
type CardCode uint32

// CardID is a dense index into the card-definition table. 0 means "no card".
type CardID uint16

// Location is the engine's zone bitmask.
type Location uint8

const (
	LocationDeck    Location = 0x01
	LocationHand    Location = 0x02
	LocationMZone   Location = 0x04
	LocationSZone   Location = 0x08
	LocationGrave   Location = 0x10
	LocationRemoved Location = 0x20
	LocationExtra   Location = 0x40
	LocationOverlay Location = 0x80 // composes with LocationMZone for xyz materials

	LocationOnField = LocationMZone | LocationSZone
)

// Position is the battle position bitmask of a card.
type Position uint8

const (
	PositionNone            Position = 0x0 // overlay materials
	PositionFaceUpAttack    Position = 0x1
	PositionFaceDownAttack  Position = 0x2
	PositionFaceUpDefense   Position = 0x4
	PositionFaceDownDefense Position = 0x8

	PositionFaceUp   = PositionFaceUpAttack | PositionFaceUpDefense
	PositionFaceDown = PositionFaceDownAttack | PositionFaceDownDefense
	PositionAttack   = PositionFaceUpAttack | PositionFaceDownAttack
	PositionDefense  = PositionFaceUpDefense | PositionFaceDownDefense
)

// Attribute is a monster attribute bit.
type Attribute uint8

const (
	AttributeNone   Attribute = 0x00 // tokens
	AttributeEarth  Attribute = 0x01
	AttributeWater  Attribute = 0x02
	AttributeFire   Attribute = 0x04
	AttributeWind   Attribute = 0x08
	AttributeLight  Attribute = 0x10
	AttributeDark   Attribute = 0x20
	AttributeDivine Attribute = 0x40
)

// Race is a monster type bit.
type Race uint32

const (
	RaceNone         Race = 0x0
	RaceWarrior      Race = 0x1
	RaceSpellcaster  Race = 0x2
	RaceFairy        Race = 0x4
	RaceFiend        Race = 0x8
	RaceZombie       Race = 0x10
	RaceMachine      Race = 0x20
	RaceAqua         Race = 0x40
	RacePyro         Race = 0x80
	RaceRock         Race = 0x100
	RaceWindbeast    Race = 0x200
	RacePlant        Race = 0x400
	RaceInsect       Race = 0x800
	RaceThunder      Race = 0x1000
	RaceDragon       Race = 0x2000
	RaceBeast        Race = 0x4000
	RaceBeastWarrior Race = 0x8000
	RaceDinosaur     Race = 0x10000
	RaceFish         Race = 0x20000
	RaceSeaSerpent   Race = 0x40000
	RaceReptile      Race = 0x80000
	RacePsycho       Race = 0x100000
	RaceDivine       Race = 0x200000
	RaceCreatorGod   Race = 0x400000
	RaceWyrm         Race = 0x800000
	RaceCyberse      Race = 0x1000000
	RaceIllusion     Race = 0x2000000
)

// CardType is the card type bitmask.
type CardType uint32

const (
	TypeMonster     CardType = 0x1
	TypeSpell       CardType = 0x2
	TypeTrap        CardType = 0x4
	TypeNormal      CardType = 0x10
	TypeEffect      CardType = 0x20
	TypeFusion      CardType = 0x40
	TypeRitual      CardType = 0x80
	TypeTrapMonster CardType = 0x100
	TypeSpirit      CardType = 0x200
	TypeUnion       CardType = 0x400
	TypeDual        CardType = 0x800
	TypeTuner       CardType = 0x1000
	TypeSynchro     CardType = 0x2000
	TypeToken       CardType = 0x4000
	TypeQuickPlay   CardType = 0x10000
	TypeContinuous  CardType = 0x20000
	TypeEquip       CardType = 0x40000
	TypeField       CardType = 0x80000
	TypeCounter     CardType = 0x100000
	TypeFlip        CardType = 0x200000
	TypeToon        CardType = 0x400000
	TypeXyz         CardType = 0x800000
	TypePendulum    CardType = 0x1000000
	TypeSpSummon    CardType = 0x2000000
	TypeLink        CardType = 0x4000000
)

// Phase is a turn phase bit.
type Phase uint16

const (
	PhaseNone        Phase = 0
	PhaseDraw        Phase = 0x01
	PhaseStandby     Phase = 0x02
	PhaseMain1       Phase = 0x04
	PhaseBattleStart Phase = 0x08
	PhaseBattleStep  Phase = 0x10
	PhaseDamage      Phase = 0x20
	PhaseDamageCal   Phase = 0x40
	PhaseBattle      Phase = 0x80
	PhaseMain2       Phase = 0x100
	PhaseEnd         Phase = 0x200
)

// Msg is the leading byte of every engine message.
type Msg uint8

const (
	MsgRetry              Msg = 1
	MsgHint               Msg = 2
	MsgWaiting            Msg = 3
	MsgStart              Msg = 4
	MsgWin                Msg = 5
	MsgUpdateData         Msg = 6
	MsgUpdateCard         Msg = 7
	MsgRequestDeck        Msg = 8
	MsgSelectBattleCmd    Msg = 10
	MsgSelectIdleCmd      Msg = 11
	MsgSelectEffectYN     Msg = 12
	MsgSelectYesNo        Msg = 13
	MsgSelectOption       Msg = 14
	MsgSelectCard         Msg = 15
	MsgSelectChain        Msg = 16
	MsgSelectPlace        Msg = 18
	MsgSelectPosition     Msg = 19
	MsgSelectTribute      Msg = 20
	MsgSortChain          Msg = 21
	MsgSelectCounter      Msg = 22
	MsgSelectSum          Msg = 23
	MsgSelectDisfield     Msg = 24
	MsgSortCard           Msg = 25
	MsgSelectUnselectCard Msg = 26
	MsgConfirmDecktop     Msg = 30
	MsgConfirmCards       Msg = 31
	MsgShuffleDeck        Msg = 32
	MsgShuffleHand        Msg = 33
	MsgRefreshDeck        Msg = 34
	MsgSwapGraveDeck      Msg = 35
	MsgShuffleSetCard     Msg = 36
	MsgReverseDeck        Msg = 37
	MsgDeckTop            Msg = 38
	MsgShuffleExtra       Msg = 39
	MsgNewTurn            Msg = 40
	MsgNewPhase           Msg = 41
	MsgConfirmExtratop    Msg = 42
	MsgMove               Msg = 50
	MsgPosChange          Msg = 53
	MsgSet                Msg = 54
	MsgSwap               Msg = 55
	MsgFieldDisabled      Msg = 56
	MsgSummoning          Msg = 60
	MsgSummoned           Msg = 61
	MsgSpSummoning        Msg = 62
	MsgSpSummoned         Msg = 63
	MsgFlipSummoning      Msg = 64
	MsgFlipSummoned       Msg = 65
	MsgChaining           Msg = 70
	MsgChained            Msg = 71
	MsgChainSolving       Msg = 72
	MsgChainSolved        Msg = 73
	MsgChainEnd           Msg = 74
	MsgChainNegated       Msg = 75
	MsgChainDisabled      Msg = 76
	MsgCardSelected       Msg = 80
	MsgRandomSelected     Msg = 81
	MsgBecomeTarget       Msg = 83
	MsgDraw               Msg = 90
	MsgDamage             Msg = 91
	MsgRecover            Msg = 92
	MsgEquip              Msg = 93
	MsgLPUpdate           Msg = 94
	MsgUnequip            Msg = 95
	MsgCardTarget         Msg = 96
	MsgCancelTarget       Msg = 97
	MsgPayLPCost          Msg = 100
	MsgAddCounter         Msg = 101
	MsgRemoveCounter      Msg = 102
	MsgAttack             Msg = 110
	MsgBattle             Msg = 111
	MsgAttackDisabled     Msg = 112
	MsgDamageStepStart    Msg = 113
	MsgDamageStepEnd      Msg = 114
	MsgMissedEffect       Msg = 120
	MsgBeChainTarget      Msg = 121
	MsgCreateRelation     Msg = 122
	MsgReleaseRelation    Msg = 123
	MsgTossCoin           Msg = 130
	MsgTossDice           Msg = 131
	MsgRockPaperScissors  Msg = 132
	MsgHandRes            Msg = 133
	MsgAnnounceRace       Msg = 140
	MsgAnnounceAttrib     Msg = 141
	MsgAnnounceCard       Msg = 142
	MsgAnnounceNumber     Msg = 143
	MsgCardHint           Msg = 160
	MsgTagSwap            Msg = 161
	MsgReloadField        Msg = 162
	MsgAIName             Msg = 163
	MsgShowHint           Msg = 164
	MsgPlayerHint         Msg = 165
	MsgMatchKill          Msg = 170
	MsgCustomMsg          Msg = 180
)

// Query info flags requested by field and single-card queries.
const QueryInfoMask uint32 = 0x781fff

// Processor status bits returned by a pump.
const (
	ProcessorBufferLen uint32 = 0x0fffffff
	ProcessorWaiting   uint32 = 0x10000000
	ProcessorEnd       uint32 = 0x20000000
)

// CardSnapshot is a point-in-time view of one card returned by a query.
// It does not reference the session that produced it.
type CardSnapshot struct {
	Code       CardCode
	Controller PlayerID
	Location   Location
	Sequence   uint8
	Position   Position
	Type       CardType
	Attack     int32
	Defense    int32
	Level      uint32
	Race       Race
	Attribute  Attribute
}

// Spec returns the spec string of the snapshot as seen by viewer.
func (c CardSnapshot) Spec(viewer PlayerID) string {
	return EncodeSpec(c.Location, c.Sequence, 0, c.Controller != viewer)
}

// CardDefinition is the immutable printed data of a card.
type CardDefinition struct {
	Code        CardCode
	Alias       CardCode
	ID          CardID
	Type        CardType
	Level       uint32
	Attack      int32
	Defense     int32
	Race        Race
	Attribute   Attribute
	Name        string
	Description string
}

// IsExtraDeck reports whether the card belongs in the extra deck.
func (d *CardDefinition) IsExtraDeck() bool {
	return d.Type&(TypeFusion|TypeSynchro|TypeXyz|TypeLink) != 0
}
