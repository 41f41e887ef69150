// Package carddb loads printed card data from a ygopro cards.cdb file.
package carddb

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	engine "github.com/jason-s-yu/ygobridge/engine"
	"github.com/jason-s-yu/ygobridge/engine/agent"
)

// NumCardStrings is the number of per-card effect strings (str1..str16).
const NumCardStrings = 16

const loadQuery = `
SELECT d.id, d.alias, d.type, d.atk, d.def, d.level, d.race, d.attribute,
       t.name, t.desc,
       t.str1, t.str2, t.str3, t.str4, t.str5, t.str6, t.str7, t.str8,
       t.str9, t.str10, t.str11, t.str12, t.str13, t.str14, t.str15, t.str16
FROM datas d JOIN texts t ON t.id = d.id
ORDER BY d.id`

// Store is an immutable, in-memory copy of a card database.
type Store struct {
	cards   map[engine.CardCode]*engine.CardDefinition
	strings map[engine.CardCode][NumCardStrings]string
	ids     *agent.Registry[engine.CardCode]
}

// Open reads every card of the database at path. The file is only read during
// Open; the returned Store does not keep it open.
func Open(ctx context.Context, path string, log logrus.FieldLogger) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("%w: empty card database path", engine.ErrConfiguration)
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("%w: open card database %s: %v", engine.ErrConfiguration, path, err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("%w: open card database %s: %v", engine.ErrConfiguration, path, err)
	}

	s, err := load(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("load card database %s: %w", path, err)
	}
	log.WithFields(logrus.Fields{
		"path":     path,
		"cards":    len(s.cards),
		"table":    s.ids.Name(),
		"first_id": s.ids.Offset(),
		"last_id":  s.ids.Offset() + s.ids.Len() - 1,
	}).Info("card database loaded")
	return s, nil
}

func load(ctx context.Context, db *sql.DB) (*Store, error) {
	rows, err := db.QueryContext(ctx, loadQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	s := &Store{
		cards:   make(map[engine.CardCode]*engine.CardDefinition),
		strings: make(map[engine.CardCode][NumCardStrings]string),
	}
	var codes []engine.CardCode
	for rows.Next() {
		var (
			d         engine.CardDefinition
			code      int64
			alias     int64
			typ       int64
			atk, def  int64
			level     int64
			race      int64
			attribute int64
			name      sql.NullString
			desc      sql.NullString
			strs      [NumCardStrings]sql.NullString
		)
		dest := []any{&code, &alias, &typ, &atk, &def, &level, &race, &attribute, &name, &desc}
		for i := range strs {
			dest = append(dest, &strs[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}

		d.Code = engine.CardCode(code)
		d.Alias = engine.CardCode(alias)
		d.Type = engine.CardType(typ)
		d.Attack = int32(atk)
		d.Defense = int32(def)
		d.Level = uint32(level & 0xff) // higher bits hold pendulum scales
		d.Race = engine.Race(race)
		d.Attribute = engine.Attribute(attribute)
		d.Name = name.String
		d.Description = desc.String

		var texts [NumCardStrings]string
		for i, str := range strs {
			texts[i] = str.String
		}
		s.cards[d.Code] = &d
		s.strings[d.Code] = texts
		codes = append(codes, d.Code)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(codes) >= math.MaxUint16 {
		return nil, fmt.Errorf("%d cards do not fit a 16-bit card id", len(codes))
	}

	// Rows are ordered by code, so ids follow ascending codes. 0 means no card.
	s.ids = agent.MakeIDs("card_to_id", codes, 1, 0)
	for _, d := range s.cards {
		d.ID = engine.CardID(s.ids.MustLookup(d.Code))
	}
	return s, nil
}

// Len returns the number of cards.
func (s *Store) Len() int { return len(s.cards) }

// Definition returns the printed data of code.
func (s *Store) Definition(code engine.CardCode) (*engine.CardDefinition, bool) {
	d, ok := s.cards[code]
	return d, ok
}

// CardID returns the dense id of code. Unknown codes are an agent.ErrLookupMiss.
func (s *Store) CardID(code engine.CardCode) (engine.CardID, error) {
	id, err := s.ids.Lookup(code)
	if err != nil {
		return 0, err
	}
	return engine.CardID(id), nil
}

// Missing returns the codes not present in the store, each once, in input order.
func (s *Store) Missing(codes []engine.CardCode) []engine.CardCode {
	var missing []engine.CardCode
	seen := make(map[engine.CardCode]bool)
	for _, c := range codes {
		if _, ok := s.cards[c]; ok || seen[c] {
			continue
		}
		seen[c] = true
		missing = append(missing, c)
	}
	return missing
}

// Describe returns the text of an effect description: a system string below
// 10000, otherwise string (desc & 0xf) of card (desc >> 4).
func (s *Store) Describe(desc uint32) (string, error) {
	if desc < 10000 {
		return agent.SystemString(int(desc))
	}
	code := engine.CardCode(desc >> 4)
	texts, ok := s.strings[code]
	if !ok {
		return "", &agent.LookupError{Table: "card_string", Key: desc}
	}
	return texts[desc&0xf], nil
}

// CheckDeck verifies every card of d exists and that extra deck cards are
// extra deck monsters. Problems are an engine.ErrConfiguration.
func (s *Store) CheckDeck(d engine.Deck) error {
	if missing := s.Missing(d.Codes()); len(missing) > 0 {
		return &engine.DeckError{Path: d.Name, Err: fmt.Errorf("unknown cards: %v", missing)}
	}
	for _, code := range d.Extra {
		if !s.cards[code].IsExtraDeck() {
			return &engine.DeckError{Path: d.Name, Err: fmt.Errorf("card %d is not an extra deck monster", code)}
		}
	}
	for _, code := range d.Main {
		if s.cards[code].IsExtraDeck() {
			return &engine.DeckError{Path: d.Name, Err: fmt.Errorf("card %d belongs in the extra deck", code)}
		}
	}
	return nil
}
