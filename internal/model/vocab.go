// internal/model/vocab.go
package model

import "fmt"

// Level はJLPTの語彙レベルを表します (N5が最も易しく、N1が最も難しい)
type Level string

const (
	LevelN5 Level = "N5"
	LevelN4 Level = "N4"
	LevelN3 Level = "N3"
	LevelN2 Level = "N2"
	LevelN1 Level = "N1"
)

// Levels は易しい順に並べた全レベルのリストです
var Levels = []Level{LevelN5, LevelN4, LevelN3, LevelN2, LevelN1}

// ParseLevel は文字列をLevelに変換します。未知のレベルはエラーになります。
func ParseLevel(s string) (Level, error) {
	for _, l := range Levels {
		if s == string(l) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: unknown level %q", ErrInvalidInput, s)
}

// QuestionType は出題形式を表します (意味を問うか、読みを問うか)
type QuestionType string

const (
	QuestionTypeMeaning QuestionType = "meaning"
	QuestionTypeReading QuestionType = "reading"
)

// QuestionTypes は全出題形式のリストです。カタログ展開時の順序もこれに従います。
var QuestionTypes = []QuestionType{QuestionTypeMeaning, QuestionTypeReading}

func ParseQuestionType(s string) (QuestionType, error) {
	switch QuestionType(s) {
	case QuestionTypeMeaning, QuestionTypeReading:
		return QuestionType(s), nil
	}
	return "", fmt.Errorf("%w: unknown question type %q", ErrInvalidInput, s)
}

// VocabEntry は語彙リストの1エントリを表します。起動時に読み込まれ、以後不変です。
type VocabEntry struct {
	Level      Level  `json:"level"`
	Expression string `json:"expression"`
	Reading    string `json:"reading"`
	Meaning    string `json:"meaning"`
}

// Question は語彙エントリと出題形式の組を表します。
// IDは内容から導出される安定な識別子で、カタログ再生成をまたいでも変わりません。
type Question struct {
	ID         string       `json:"id"`
	Level      Level        `json:"level"`
	Expression string       `json:"expression"`
	Reading    string       `json:"reading"`
	Meaning    string       `json:"meaning"`
	QType      QuestionType `json:"q_type"`
}

// Entry は問題の元になった語彙エントリを返します
func (q Question) Entry() VocabEntry {
	return VocabEntry{
		Level:      q.Level,
		Expression: q.Expression,
		Reading:    q.Reading,
		Meaning:    q.Meaning,
	}
}

// AnswerText は出題形式に応じた正解テキストを返します
func (q Question) AnswerText() string {
	if q.QType == QuestionTypeReading {
		return q.Reading
	}
	return q.Meaning
}
