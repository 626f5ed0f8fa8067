// internal/catalog/catalog.go
package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"go_5_vocab_drill/internal/model"
)

// Catalog は読み込み済みの問題集合を保持する読み取り専用のインデックスです。
// 起動時に一度構築し、以後はロックなしで共有できます。
// パッケージグローバルは持たず、利用側へ明示的に注入します。
type Catalog struct {
	byID    map[string]model.Question
	byLevel map[model.Level][]model.Question
}

// New は問題集合を検証してCatalogを構築します。
// キーとIDの不一致、未知のレベル・出題形式、空フィールドは保存データの破損として扱います。
func New(questions map[string]model.Question) (*Catalog, error) {
	byID := make(map[string]model.Question, len(questions))
	byLevel := make(map[model.Level][]model.Question)

	for id, q := range questions {
		if id != q.ID {
			return nil, fmt.Errorf("%w: catalog key %q does not match question id %q", model.ErrDataCorrupted, id, q.ID)
		}
		if _, err := model.ParseLevel(string(q.Level)); err != nil {
			return nil, fmt.Errorf("%w: question %s: %v", model.ErrDataCorrupted, id, err)
		}
		if _, err := model.ParseQuestionType(string(q.QType)); err != nil {
			return nil, fmt.Errorf("%w: question %s: %v", model.ErrDataCorrupted, id, err)
		}
		if q.Expression == "" || q.Reading == "" || q.Meaning == "" {
			return nil, fmt.Errorf("%w: question %s has empty fields", model.ErrDataCorrupted, id)
		}
		byID[id] = q
		byLevel[q.Level] = append(byLevel[q.Level], q)
	}

	// マップの走査順に依存しないよう、レベル内はID順に固定する
	for level := range byLevel {
		qs := byLevel[level]
		sort.Slice(qs, func(i, j int) bool { return qs[i].ID < qs[j].ID })
	}

	return &Catalog{byID: byID, byLevel: byLevel}, nil
}

// Load はquestions.json(問題IDをキーにしたJSONオブジェクト)からCatalogを構築します
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog file: %w", err)
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader はio.ReaderからCatalogを構築します
func LoadFromReader(r io.Reader) (*Catalog, error) {
	var questions map[string]model.Question
	if err := json.NewDecoder(r).Decode(&questions); err != nil {
		return nil, fmt.Errorf("%w: decoding catalog: %v", model.ErrDataCorrupted, err)
	}
	return New(questions)
}

// Question はIDで問題を引きます
func (c *Catalog) Question(id string) (model.Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// Level は指定レベルの全問題(両出題形式)を返します。返り値を変更してはいけません。
func (c *Catalog) Level(level model.Level) []model.Question {
	return c.byLevel[level]
}

// LevelByType は指定レベル・指定出題形式の問題を返します
func (c *Catalog) LevelByType(level model.Level, qType model.QuestionType) []model.Question {
	var result []model.Question
	for _, q := range c.byLevel[level] {
		if q.QType == qType {
			result = append(result, q)
		}
	}
	return result
}

// Entries は指定レベルの語彙エントリを返します。
// 各語彙は2問に展開されているため、meaning側だけを取り出して重複を除きます。
func (c *Catalog) Entries(level model.Level) []model.VocabEntry {
	questions := c.LevelByType(level, model.QuestionTypeMeaning)
	entries := make([]model.VocabEntry, 0, len(questions))
	for _, q := range questions {
		entries = append(entries, q.Entry())
	}
	return entries
}

// Size は問題の総数を返します
func (c *Catalog) Size() int {
	return len(c.byID)
}
