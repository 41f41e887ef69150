package carddb

import (
	"context"
	"database/sql"
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	engine "github.com/jason-s-yu/ygobridge/engine"
	"github.com/jason-s-yu/ygobridge/engine/agent"
)

const schema = `
CREATE TABLE datas(id integer primary key, ot integer, alias integer, setcode integer, type integer,
  atk integer, def integer, level integer, race integer, attribute integer, category integer);
CREATE TABLE texts(id integer primary key, name text, desc text,
  str1 text, str2 text, str3 text, str4 text, str5 text, str6 text, str7 text, str8 text,
  str9 text, str10 text, str11 text, str12 text, str13 text, str14 text, str15 text, str16 text);`

type testCard struct {
	code, alias, typ, atk, def, level, race, attr int64
	name, str1                                    string
}

var testCards = []testCard{
	{89631139, 0, int64(engine.TypeMonster | engine.TypeNormal), 3000, 2500, 8, int64(engine.RaceDragon), int64(engine.AttributeLight), "Blue-Eyes White Dragon", ""},
	{46986414, 0, int64(engine.TypeMonster | engine.TypeNormal), 2500, 2100, 7, int64(engine.RaceSpellcaster), int64(engine.AttributeDark), "Dark Magician", ""},
	{38033121, 0, int64(engine.TypeMonster | engine.TypeEffect), 2000, 1700, 6, int64(engine.RaceSpellcaster), int64(engine.AttributeDark), "Dark Magician Girl", "Gain ATK"},
	{23995346, 0, int64(engine.TypeMonster | engine.TypeFusion), 4500, 3800, 12 | 0x0a0a0000, int64(engine.RaceDragon), int64(engine.AttributeLight), "Blue-Eyes Ultimate Dragon", ""},
}

func writeTestDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cards.cdb")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(schema)
	require.NoError(t, err)
	for _, c := range testCards {
		_, err = db.Exec(`INSERT INTO datas VALUES (?, 3, ?, 0, ?, ?, ?, ?, ?, ?, 0)`,
			c.code, c.alias, c.typ, c.atk, c.def, c.level, c.race, c.attr)
		require.NoError(t, err)
		_, err = db.Exec(`INSERT INTO texts (id, name, desc, str1) VALUES (?, ?, ?, ?)`,
			c.code, c.name, "desc of "+c.name, c.str1)
		require.NoError(t, err)
	}
	return path
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), writeTestDB(t), quietLogger())
	require.NoError(t, err)
	return s
}

func TestOpenLoadsDefinitions(t *testing.T) {
	s := openTestStore(t)
	require.Equal(t, len(testCards), s.Len())

	d, ok := s.Definition(89631139)
	require.True(t, ok)
	assert.Equal(t, "Blue-Eyes White Dragon", d.Name)
	assert.Equal(t, int32(3000), d.Attack)
	assert.Equal(t, int32(2500), d.Defense)
	assert.Equal(t, uint32(8), d.Level)
	assert.Equal(t, engine.RaceDragon, d.Race)
	assert.Equal(t, engine.AttributeLight, d.Attribute)
	assert.Equal(t, "desc of Blue-Eyes White Dragon", d.Description)

	fusion, ok := s.Definition(23995346)
	require.True(t, ok)
	assert.Equal(t, uint32(12), fusion.Level, "pendulum scale bits are masked off")
	assert.True(t, fusion.IsExtraDeck())

	_, ok = s.Definition(1)
	assert.False(t, ok)
}

// TestCardIDsFollowSortedCodes verifies ids 1..n in ascending code order.
func TestCardIDsFollowSortedCodes(t *testing.T) {
	s := openTestStore(t)
	want := map[engine.CardCode]engine.CardID{
		23995346: 1,
		38033121: 2,
		46986414: 3,
		89631139: 4,
	}
	for code, id := range want {
		got, err := s.CardID(code)
		require.NoError(t, err)
		assert.Equal(t, id, got, "CardID(%d)", code)

		d, _ := s.Definition(code)
		assert.Equal(t, id, d.ID)
	}
	_, err := s.CardID(12345)
	assert.ErrorIs(t, err, agent.ErrLookupMiss)
}

func TestMissing(t *testing.T) {
	s := openTestStore(t)
	got := s.Missing([]engine.CardCode{89631139, 5, 46986414, 5, 6})
	assert.Equal(t, []engine.CardCode{5, 6}, got)
	assert.Empty(t, s.Missing([]engine.CardCode{89631139}))
}

func TestDescribe(t *testing.T) {
	s := openTestStore(t)

	text, err := s.Describe(38033121 << 4)
	require.NoError(t, err)
	assert.Equal(t, "Gain ATK", text)

	text, err = s.Describe(1150)
	require.NoError(t, err)
	assert.Equal(t, "Activate", text)

	_, err = s.Describe(12345 << 4)
	assert.ErrorIs(t, err, agent.ErrLookupMiss)
}

func TestCheckDeck(t *testing.T) {
	s := openTestStore(t)
	main := make([]engine.CardCode, 40)
	for i := range main {
		main[i] = 46986414
	}

	ok := engine.Deck{Name: "ok", Main: main, Extra: []engine.CardCode{23995346}}
	assert.NoError(t, s.CheckDeck(ok))

	unknown := engine.Deck{Name: "unknown", Main: append([]engine.CardCode{7}, main...)}
	assert.ErrorIs(t, s.CheckDeck(unknown), engine.ErrConfiguration)

	misplaced := engine.Deck{Name: "misplaced", Main: main, Extra: []engine.CardCode{89631139}}
	assert.ErrorIs(t, s.CheckDeck(misplaced), engine.ErrConfiguration)
}

func TestOpenErrors(t *testing.T) {
	_, err := Open(context.Background(), " ", quietLogger())
	assert.ErrorIs(t, err, engine.ErrConfiguration)

	_, err = Open(context.Background(), filepath.Join(t.TempDir(), "missing.cdb"), quietLogger())
	assert.ErrorIs(t, err, engine.ErrConfiguration)
}
