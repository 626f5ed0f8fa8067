// internal/service/grading_test.go
package service

import (
	"testing"

	"go_5_vocab_drill/internal/model"

	"github.com/stretchr/testify/assert"
)

// history はタイムスタンプを1000から100刻みで振った履歴を作るテストヘルパー
func history(outcomes ...bool) []model.OutcomeEvent {
	events := make([]model.OutcomeEvent, 0, len(outcomes))
	for i, correct := range outcomes {
		events = append(events, model.OutcomeEvent{
			Timestamp: int64(1000 + i*100),
			Correct:   correct,
		})
	}
	return events
}

func TestGradeHistory(t *testing.T) {
	tests := []struct {
		name       string
		events     []model.OutcomeEvent
		wantGrade  model.Grade
		wantAnchor int64
	}{
		{
			name:       "履歴なし -> NoData、基準時刻なし",
			events:     nil,
			wantGrade:  model.GradeNoData,
			wantAnchor: 0,
		},
		{
			name:       "1件のみ正解 -> High",
			events:     history(true),
			wantGrade:  model.GradeHigh,
			wantAnchor: 1000,
		},
		{
			name:       "1件のみ不正解 -> Low",
			events:     history(false),
			wantGrade:  model.GradeLow,
			wantAnchor: 1000,
		},
		{
			name:       "5件全て正解 -> Total",
			events:     history(true, true, true, true, true),
			wantGrade:  model.GradeTotal,
			wantAnchor: 1400,
		},
		{
			name:       "2件全て正解 -> Total",
			events:     history(true, true),
			wantGrade:  model.GradeTotal,
			wantAnchor: 1100,
		},
		{
			name:       "直近3件が正解 (F,F,T,T,T) -> High",
			events:     history(false, false, true, true, true),
			wantGrade:  model.GradeHigh,
			wantAnchor: 1400,
		},
		{
			name:       "直近3件が不正解 (T,T,F,F,F) -> Low",
			events:     history(true, true, false, false, false),
			wantGrade:  model.GradeLow,
			wantAnchor: 1400,
		},
		{
			name:       "混在 (T,F,T,F,T) -> Moderate",
			events:     history(true, false, true, false, true),
			wantGrade:  model.GradeModerate,
			wantAnchor: 1400,
		},
		{
			name:       "2件で混在 (F,T) -> Moderate (直近3件規則は全2件で評価)",
			events:     history(false, true),
			wantGrade:  model.GradeModerate,
			wantAnchor: 1100,
		},
		{
			name:       "不正解3回のあと正解2回 -> Moderate (直近3件=F,T,Tで揃わない)",
			events:     history(false, false, false, true, true),
			wantGrade:  model.GradeModerate,
			wantAnchor: 1400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grade, anchor := GradeHistory(tt.events)
			assert.Equal(t, tt.wantGrade, grade)
			assert.Equal(t, tt.wantAnchor, anchor)
		})
	}
}

func TestGradeHistory_OnlyLastFiveEventsMatter(t *testing.T) {
	// 直近5件 (F,F,T,T,T) の前に古い履歴を積んでも結果は変わらない
	recent := history(false, false, true, true, true)

	older := []model.OutcomeEvent{
		{Timestamp: 10, Correct: true},
		{Timestamp: 20, Correct: false},
		{Timestamp: 30, Correct: true},
		{Timestamp: 40, Correct: true},
	}
	padded := append(append([]model.OutcomeEvent{}, older...), recent...)

	wantGrade, wantAnchor := GradeHistory(recent)
	gotGrade, gotAnchor := GradeHistory(padded)
	assert.Equal(t, wantGrade, gotGrade)
	assert.Equal(t, wantAnchor, gotAnchor)
}

func TestGradeHistory_Deterministic(t *testing.T) {
	events := history(true, false, true, false, true)
	grade1, anchor1 := GradeHistory(events)
	grade2, anchor2 := GradeHistory(events)
	assert.Equal(t, grade1, grade2)
	assert.Equal(t, anchor1, anchor2)
}
