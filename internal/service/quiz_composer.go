// internal/service/quiz_composer.go
package service

import (
	"fmt"
	"math/rand"

	"go_5_vocab_drill/internal/catalog"
	"go_5_vocab_drill/internal/model"
)

// quizChoiceCount は1問あたりの選択肢数(正解1 + 誤答択3)
const quizChoiceCount = 4

func quizStatement(qType model.QuestionType) string {
	return fmt.Sprintf("What is the %s for the following expression?", qType)
}

// ComposeQuiz は1問分の4択クイズを組み立てます。
//
// 誤答択は同レベル・同出題形式の問題から、正解とも互いとも異なるテキストを
// 重複なしでランダムに選びます。候補が3つに満たない場合は選択肢が4つ未満の
// まま返します(縮退動作。実カタログはレベルごとに数百語あるため通常は起きません)。
// 選択肢の並びはシャッフルし、正解の位置をAnswerに記録します。
func ComposeQuiz(q model.Question, cat *catalog.Catalog, rng *rand.Rand) model.QuizItem {
	answer := q.AnswerText()

	// 誤答択の候補: 同レベル・同形式で、テキストが正解とも互いとも異なるもの
	seenTexts := map[string]bool{answer: true}
	var candidates []string
	for _, other := range cat.LevelByType(q.Level, q.QType) {
		text := other.AnswerText()
		if other.ID == q.ID || seenTexts[text] {
			continue
		}
		seenTexts[text] = true
		candidates = append(candidates, text)
	}
	rng.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })

	distractors := quizChoiceCount - 1
	if len(candidates) < distractors {
		distractors = len(candidates)
	}

	choices := make([]string, 0, quizChoiceCount)
	choices = append(choices, answer)
	choices = append(choices, candidates[:distractors]...)
	rng.Shuffle(len(choices), func(i, j int) { choices[i], choices[j] = choices[j], choices[i] })

	answerIndex := 0
	for i, c := range choices {
		if c == answer {
			answerIndex = i
			break
		}
	}

	return model.QuizItem{
		QuestionID: q.ID,
		Statement:  quizStatement(q.QType),
		Subject:    q.Expression,
		Choices:    choices,
		Answer:     answerIndex,
	}
}
