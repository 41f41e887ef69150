package adapter

import engine "github.com/jason-s-yu/ygobridge/engine"

// FieldRecordSize is the stride of a field-query record.
const FieldRecordSize = 32

// decodeFieldRecords reads fixed 32-byte records. A zero code marks a padding
// record whose remaining 28 bytes are skipped.
func decodeFieldRecords(buf []byte) ([]engine.CardSnapshot, error) {
	r := engine.NewReader(buf)
	cards := make([]engine.CardSnapshot, 0, len(buf)/FieldRecordSize)
	for r.Remaining() >= FieldRecordSize {
		code := engine.CardCode(r.U32())
		if code == 0 {
			r.Skip(FieldRecordSize - 4)
			continue
		}
		c := engine.CardSnapshot{Code: code}
		c.Controller = engine.PlayerID(r.U8())
		c.Location = engine.Location(r.U8())
		c.Sequence = r.U8()
		c.Position = engine.Position(r.U8())
		c.Type = engine.CardType(r.U32())
		c.Attack = r.I32()
		c.Defense = r.I32()
		c.Level = r.U32()
		c.Race = engine.Race(r.U32())
		c.Attribute = engine.Attribute(r.U32())
		cards = append(cards, c)
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return cards, nil
}

// decodeCardRecord reads the leading fields of a single-card query. Fields
// after defense are engine specific and ignored.
func decodeCardRecord(buf []byte) (engine.CardSnapshot, error) {
	r := engine.NewReader(buf)
	var c engine.CardSnapshot
	c.Code = engine.CardCode(r.U32())
	r.Skip(4) // alias
	c.Type = engine.CardType(r.U32())
	c.Level = r.U32()
	c.Race = engine.Race(r.U32())
	c.Attribute = engine.Attribute(r.U32())
	c.Attack = r.I32()
	c.Defense = r.I32()
	return c, r.Err()
}
