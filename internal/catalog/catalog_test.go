// internal/catalog/catalog_test.go
package catalog

import (
	"strings"
	"testing"

	"go_5_vocab_drill/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEntries = []model.VocabEntry{
	{Level: model.LevelN5, Expression: "学校", Reading: "がっこう", Meaning: "school"},
	{Level: model.LevelN5, Expression: "先生", Reading: "せんせい", Meaning: "teacher"},
	{Level: model.LevelN4, Expression: "会議", Reading: "かいぎ", Meaning: "meeting"},
}

func TestDeriveID(t *testing.T) {
	entry := testEntries[0]

	t.Run("同じ内容なら常に同じID", func(t *testing.T) {
		id1, err := DeriveID(entry, model.QuestionTypeMeaning)
		require.NoError(t, err)
		id2, err := DeriveID(entry, model.QuestionTypeMeaning)
		require.NoError(t, err)
		assert.Equal(t, id1, id2)
		assert.Len(t, id1, 10)
		// 16進文字のみ
		assert.Equal(t, strings.ToLower(id1), id1)
	})

	t.Run("出題形式が違えばIDも違う", func(t *testing.T) {
		meaningID, err := DeriveID(entry, model.QuestionTypeMeaning)
		require.NoError(t, err)
		readingID, err := DeriveID(entry, model.QuestionTypeReading)
		require.NoError(t, err)
		assert.NotEqual(t, meaningID, readingID)
	})

	t.Run("内容が違えばIDも違う", func(t *testing.T) {
		id1, err := DeriveID(testEntries[0], model.QuestionTypeMeaning)
		require.NoError(t, err)
		id2, err := DeriveID(testEntries[1], model.QuestionTypeMeaning)
		require.NoError(t, err)
		assert.NotEqual(t, id1, id2)
	})
}

func TestExpandEntries(t *testing.T) {
	t.Run("正常系: 1語彙につき2問に展開", func(t *testing.T) {
		questions, err := ExpandEntries(testEntries)
		require.NoError(t, err)
		assert.Len(t, questions, len(testEntries)*2)
		for id, q := range questions {
			assert.Equal(t, id, q.ID)
		}
	})

	t.Run("異常系: 完全に重複したエントリはID衝突で失敗", func(t *testing.T) {
		dup := []model.VocabEntry{testEntries[0], testEntries[0]}
		_, err := ExpandEntries(dup)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrIDCollision)
	})

	t.Run("異常系: 不正なレベル", func(t *testing.T) {
		bad := []model.VocabEntry{
			{Level: "N9", Expression: "x", Reading: "y", Meaning: "z"},
		}
		_, err := ExpandEntries(bad)
		require.Error(t, err)
	})
}

func TestCatalogLookups(t *testing.T) {
	questions, err := ExpandEntries(testEntries)
	require.NoError(t, err)
	cat, err := New(questions)
	require.NoError(t, err)

	assert.Equal(t, 6, cat.Size())
	assert.Len(t, cat.Level(model.LevelN5), 4)
	assert.Len(t, cat.Level(model.LevelN4), 2)
	assert.Empty(t, cat.Level(model.LevelN1))

	assert.Len(t, cat.LevelByType(model.LevelN5, model.QuestionTypeMeaning), 2)
	assert.Len(t, cat.LevelByType(model.LevelN5, model.QuestionTypeReading), 2)

	entries := cat.Entries(model.LevelN5)
	require.Len(t, entries, 2)
	expressions := []string{entries[0].Expression, entries[1].Expression}
	assert.ElementsMatch(t, []string{"学校", "先生"}, expressions)

	for id, q := range questions {
		got, ok := cat.Question(id)
		require.True(t, ok)
		assert.Equal(t, q, got)
	}
	_, ok := cat.Question("ffffffffff")
	assert.False(t, ok)
}

func TestCatalogNew_RejectsCorruptedData(t *testing.T) {
	questions, err := ExpandEntries(testEntries)
	require.NoError(t, err)

	t.Run("キーとIDの不一致", func(t *testing.T) {
		broken := map[string]model.Question{}
		for id, q := range questions {
			broken[id] = q
		}
		var anyQ model.Question
		for _, q := range broken {
			anyQ = q
			break
		}
		broken["0000000000"] = anyQ
		_, err := New(broken)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrDataCorrupted)
	})

	t.Run("空フィールド", func(t *testing.T) {
		broken := map[string]model.Question{
			"abcdef0123": {ID: "abcdef0123", Level: model.LevelN5, QType: model.QuestionTypeMeaning},
		}
		_, err := New(broken)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrDataCorrupted)
	})
}

func TestLoadFromReader(t *testing.T) {
	t.Run("正常系", func(t *testing.T) {
		data := `{
			"abcdef0123": {"id":"abcdef0123","level":"N5","expression":"学校","reading":"がっこう","meaning":"school","q_type":"meaning"}
		}`
		cat, err := LoadFromReader(strings.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 1, cat.Size())
	})

	t.Run("異常系: JSONとして壊れている", func(t *testing.T) {
		_, err := LoadFromReader(strings.NewReader(`{"broken`))
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrDataCorrupted)
	})
}
