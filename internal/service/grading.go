// internal/service/grading.go
package service

import "go_5_vocab_drill/internal/model"

// gradeWindow は評価対象とする直近の解答数です。
// 習熟度は生涯の成績ではなく直近の成績を反映させます。
const gradeWindow = 5

// GradeHistory は1問分の解答履歴(古い順)から習熟度と基準時刻(エポック秒)を算出します。
// 直近gradeWindow件だけを評価します。判定は上から順に行い、最初に一致した規則で決まります。
//   - 履歴なし              → NoData (基準時刻は0)
//   - 1件のみ               → 正解ならHigh、不正解ならLow
//   - 全件正解              → Total
//   - 直近3件が全て正解     → High
//   - 直近3件が全て不正解   → Low
//   - それ以外              → Moderate
//
// 副作用はなく、同じ履歴には常に同じ結果を返します。
func GradeHistory(events []model.OutcomeEvent) (model.Grade, int64) {
	if len(events) > gradeWindow {
		events = events[len(events)-gradeWindow:]
	}
	if len(events) == 0 {
		return model.GradeNoData, 0
	}

	anchor := events[len(events)-1].Timestamp

	if len(events) == 1 {
		if events[0].Correct {
			return model.GradeHigh, anchor
		}
		return model.GradeLow, anchor
	}

	switch {
	case allOutcomes(events, true):
		return model.GradeTotal, anchor
	case allOutcomes(lastOutcomes(events, 3), true):
		return model.GradeHigh, anchor
	case allOutcomes(lastOutcomes(events, 3), false):
		return model.GradeLow, anchor
	}
	return model.GradeModerate, anchor
}

func lastOutcomes(events []model.OutcomeEvent, n int) []model.OutcomeEvent {
	if len(events) <= n {
		return events
	}
	return events[len(events)-n:]
}

func allOutcomes(events []model.OutcomeEvent, correct bool) bool {
	for _, e := range events {
		if e.Correct != correct {
			return false
		}
	}
	return true
}
