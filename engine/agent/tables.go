package agent

import engine "github.com/jason-s-yu/ygobridge/engine"

// systemStrings holds the engine's shared effect and hint texts, keyed by
// description number. Card-specific texts live in the card database.
var systemStrings = map[int]string{
	// announce type
	1050: "Monster",
	1051: "Spell",
	1052: "Trap",
	1054: "Normal",
	1055: "Effect",
	1056: "Fusion",
	1057: "Ritual",
	1058: "Trap Monsters",
	1059: "Spirit",
	1060: "Union",
	1061: "Gemini",
	1062: "Tuner",
	1063: "Synchro",
	1064: "Token",
	1066: "Quick-Play",
	1067: "Continuous",
	1068: "Equip",
	1069: "Field",
	1070: "Counter",
	1071: "Flip",
	1072: "Toon",
	1073: "Xyz",
	1074: "Pendulum",
	1075: "Special Summon",
	1076: "Link",
	1080: "(N/A)",
	1081: "Extra Monster Zone",
	// actions
	1150: "Activate",
	1151: "Normal Summon",
	1152: "Special Summon",
	1153: "Set",
	1154: "Flip Summon",
	1155: "To Defense",
	1156: "To Attack",
	1157: "Attack",
	1158: "View",
	1159: "S/T Set",
	1160: "Put in Pendulum Zone",
	1161: "Do Effect",
	1162: "Reset Effect",
	1163: "Pendulum Summon",
	1164: "Synchro Summon",
	1165: "Xyz Summon",
	1166: "Link Summon",
	1167: "Tribute Summon",
	1168: "Ritual Summon",
	1169: "Fusion Summon",
	1190: "Add to hand",
	1191: "Send to GY",
	1192: "Banish",
	1193: "Return to Deck",
	// hints
	1:    "Normal Summon",
	30:   "Replay rules apply. Continue this attack?",
	31:   "Attack directly with this monster?",
	80:   "Start Step of the Battle Phase.",
	81:   "During the End Phase.",
	90:   "Conduct this Normal Summon without Tributing?",
	91:   "Use additional Summon?",
	92:   "Tribute your opponent's monster?",
	93:   "Continue selecting Materials?",
	94:   "Activate this card's effect now?",
	95:   "Use the effect of [%ls]?",
	96:   "Use the effect of [%ls] to avoid destruction?",
	97:   "Place [%ls] to a Spell & Trap Zone?",
	98:   "Tribute a monster(s) your opponent controls?",
	200:  "From [%ls], activate [%ls]?",
	203:  "Chain another card or effect?",
	210:  "Continue selecting?",
	218:  "Pay LP by Effect of [%ls], instead?",
	219:  "Detach Xyz material by Effect of [%ls], instead?",
	220:  "Remove Counter(s) by Effect of [%ls], instead?",
	221:  "On [%ls], Activate Trigger Effect of [%ls]?",
	222:  "Activate Trigger Effect?",
	1621: "Attack Negated",
	1622: "[%ls] Missed timing",
}

var positionNames = map[engine.Position]string{
	engine.PositionNone:            "none",
	engine.PositionFaceUpAttack:    "face-up attack",
	engine.PositionFaceDownAttack:  "face-down attack",
	engine.PositionAttack:          "attack",
	engine.PositionFaceUpDefense:   "face-up defense",
	engine.PositionFaceUp:          "face-up",
	engine.PositionFaceDownDefense: "face-down defense",
	engine.PositionFaceDown:        "face-down",
	engine.PositionDefense:         "defense",
}

var attributeNames = map[engine.Attribute]string{
	engine.AttributeNone:   "None",
	engine.AttributeEarth:  "Earth",
	engine.AttributeWater:  "Water",
	engine.AttributeFire:   "Fire",
	engine.AttributeWind:   "Wind",
	engine.AttributeLight:  "Light",
	engine.AttributeDark:   "Dark",
	engine.AttributeDivine: "Divine",
}

var raceNames = map[engine.Race]string{
	engine.RaceNone:         "None",
	engine.RaceWarrior:      "Warrior",
	engine.RaceSpellcaster:  "Spellcaster",
	engine.RaceFairy:        "Fairy",
	engine.RaceFiend:        "Fiend",
	engine.RaceZombie:       "Zombie",
	engine.RaceMachine:      "Machine",
	engine.RaceAqua:         "Aqua",
	engine.RacePyro:         "Pyro",
	engine.RaceRock:         "Rock",
	engine.RaceWindbeast:    "Windbeast",
	engine.RacePlant:        "Plant",
	engine.RaceInsect:       "Insect",
	engine.RaceThunder:      "Thunder",
	engine.RaceDragon:       "Dragon",
	engine.RaceBeast:        "Beast",
	engine.RaceBeastWarrior: "Beast Warrior",
	engine.RaceDinosaur:     "Dinosaur",
	engine.RaceFish:         "Fish",
	engine.RaceSeaSerpent:   "Sea Serpent",
	engine.RaceReptile:      "Reptile",
	engine.RacePsycho:       "Psycho",
	engine.RaceDivine:       "Divine",
	engine.RaceCreatorGod:   "Creator God",
	engine.RaceWyrm:         "Wyrm",
	engine.RaceCyberse:      "Cyberse",
	engine.RaceIllusion:     "Illusion",
}

var typeNames = map[engine.CardType]string{
	engine.TypeMonster:     "Monster",
	engine.TypeSpell:       "Spell",
	engine.TypeTrap:        "Trap",
	engine.TypeNormal:      "Normal",
	engine.TypeEffect:      "Effect",
	engine.TypeFusion:      "Fusion",
	engine.TypeRitual:      "Ritual",
	engine.TypeTrapMonster: "Trap Monster",
	engine.TypeSpirit:      "Spirit",
	engine.TypeUnion:       "Union",
	engine.TypeDual:        "Dual",
	engine.TypeTuner:       "Tuner",
	engine.TypeSynchro:     "Synchro",
	engine.TypeToken:       "Token",
	engine.TypeQuickPlay:   "Quick-play",
	engine.TypeContinuous:  "Continuous",
	engine.TypeEquip:       "Equip",
	engine.TypeField:       "Field",
	engine.TypeCounter:     "Counter",
	engine.TypeFlip:        "Flip",
	engine.TypeToon:        "Toon",
	engine.TypeXyz:         "XYZ",
	engine.TypePendulum:    "Pendulum",
	engine.TypeSpSummon:    "Special",
	engine.TypeLink:        "Link",
}

var phaseNames = map[engine.Phase]string{
	engine.PhaseDraw:        "draw phase",
	engine.PhaseStandby:     "standby phase",
	engine.PhaseMain1:       "main1 phase",
	engine.PhaseBattleStart: "battle start phase",
	engine.PhaseBattleStep:  "battle step phase",
	engine.PhaseDamage:      "damage phase",
	engine.PhaseDamageCal:   "damage calculation phase",
	engine.PhaseBattle:      "battle phase",
	engine.PhaseMain2:       "main2 phase",
	engine.PhaseEnd:         "end phase",
}

var locationNames = map[engine.Location]string{
	engine.LocationDeck:    "Deck",
	engine.LocationHand:    "Hand",
	engine.LocationMZone:   "Main Monster Zone",
	engine.LocationSZone:   "Spell & Trap Zone",
	engine.LocationGrave:   "Graveyard",
	engine.LocationRemoved: "Banished",
	engine.LocationExtra:   "Extra Deck",
}

// selectMsgs are the decision prompts in agent id order. The order is part of
// the encoding contract and must not be sorted.
var selectMsgs = []engine.Msg{
	engine.MsgSelectIdleCmd, engine.MsgSelectChain, engine.MsgSelectCard,
	engine.MsgSelectTribute, engine.MsgSelectPosition, engine.MsgSelectEffectYN,
	engine.MsgSelectYesNo, engine.MsgSelectBattleCmd, engine.MsgSelectUnselectCard,
	engine.MsgSelectOption, engine.MsgSelectPlace, engine.MsgSelectSum,
	engine.MsgSelectDisfield, engine.MsgAnnounceAttrib, engine.MsgAnnounceNumber,
	engine.MsgAnnounceCard,
}

var msgNames = map[engine.Msg]string{
	engine.MsgRetry:              "retry",
	engine.MsgHint:               "hint",
	engine.MsgWin:                "win",
	engine.MsgSelectBattleCmd:    "select_battlecmd",
	engine.MsgSelectIdleCmd:      "select_idlecmd",
	engine.MsgSelectEffectYN:     "select_effectyn",
	engine.MsgSelectYesNo:        "select_yesno",
	engine.MsgSelectOption:       "select_option",
	engine.MsgSelectCard:         "select_card",
	engine.MsgSelectChain:        "select_chain",
	engine.MsgSelectPlace:        "select_place",
	engine.MsgSelectPosition:     "select_position",
	engine.MsgSelectTribute:      "select_tribute",
	engine.MsgSelectCounter:      "select_counter",
	engine.MsgSelectSum:          "select_sum",
	engine.MsgSelectDisfield:     "select_disfield",
	engine.MsgSortCard:           "sort_card",
	engine.MsgSelectUnselectCard: "select_unselect_card",
	engine.MsgConfirmDecktop:     "confirm_decktop",
	engine.MsgConfirmCards:       "confirm_cards",
	engine.MsgShuffleDeck:        "shuffle_deck",
	engine.MsgShuffleHand:        "shuffle_hand",
	engine.MsgSwapGraveDeck:      "swap_grave_deck",
	engine.MsgShuffleSetCard:     "shuffle_set_card",
	engine.MsgReverseDeck:        "reverse_deck",
	engine.MsgDeckTop:            "deck_top",
	engine.MsgShuffleExtra:       "shuffle_extra",
	engine.MsgNewTurn:            "new_turn",
	engine.MsgNewPhase:           "new_phase",
	engine.MsgConfirmExtratop:    "confirm_extratop",
	engine.MsgMove:               "move",
	engine.MsgPosChange:          "pos_change",
	engine.MsgSet:                "set",
	engine.MsgSwap:               "swap",
	engine.MsgFieldDisabled:      "field_disabled",
	engine.MsgSummoning:          "summoning",
	engine.MsgSummoned:           "summoned",
	engine.MsgSpSummoning:        "spsummoning",
	engine.MsgSpSummoned:         "spsummoned",
	engine.MsgFlipSummoning:      "flipsummoning",
	engine.MsgFlipSummoned:       "flipsummoned",
	engine.MsgChaining:           "chaining",
	engine.MsgChained:            "chained",
	engine.MsgChainSolving:       "chain_solving",
	engine.MsgChainSolved:        "chain_solved",
	engine.MsgChainEnd:           "chain_end",
	engine.MsgChainNegated:       "chain_negated",
	engine.MsgChainDisabled:      "chain_disabled",
	engine.MsgRandomSelected:     "random_selected",
	engine.MsgBecomeTarget:       "become_target",
	engine.MsgDraw:               "draw",
	engine.MsgDamage:             "damage",
	engine.MsgRecover:            "recover",
	engine.MsgEquip:              "equip",
	engine.MsgLPUpdate:           "lpupdate",
	engine.MsgCardTarget:         "card_target",
	engine.MsgCancelTarget:       "cancel_target",
	engine.MsgPayLPCost:          "pay_lpcost",
	engine.MsgAddCounter:         "add_counter",
	engine.MsgRemoveCounter:      "remove_counter",
	engine.MsgAttack:             "attack",
	engine.MsgBattle:             "battle",
	engine.MsgAttackDisabled:     "attack_disabled",
	engine.MsgDamageStepStart:    "damage_step_start",
	engine.MsgDamageStepEnd:      "damage_step_end",
	engine.MsgMissedEffect:       "missed_effect",
	engine.MsgTossCoin:           "toss_coin",
	engine.MsgTossDice:           "toss_dice",
	engine.MsgRockPaperScissors:  "rock_paper_scissors",
	engine.MsgHandRes:            "hand_res",
	engine.MsgAnnounceRace:       "announce_race",
	engine.MsgAnnounceAttrib:     "announce_attrib",
	engine.MsgAnnounceCard:       "announce_card",
	engine.MsgAnnounceNumber:     "announce_number",
	engine.MsgCardHint:           "card_hint",
	engine.MsgTagSwap:            "tag_swap",
	engine.MsgReloadField:        "reload_field",
	engine.MsgAIName:             "ai_name",
	engine.MsgShowHint:           "show_hint",
	engine.MsgPlayerHint:         "player_hint",
	engine.MsgMatchKill:          "match_kill",
	engine.MsgCustomMsg:          "custom_msg",
}

// Win reasons carried by MSG_WIN.
var reasonNames = map[uint8]string{
	0x0: "Surrendered",
	0x1: "LP reached 0",
	0x2: "Cards can't be drawn",
	0x3: "Time limit up",
	0x4: "Lost connection",
}
