// internal/service/mocks/drill_service.go
package mocks

import (
	"context"

	"go_5_vocab_drill/internal/model"

	"github.com/stretchr/testify/mock"
)

// DrillService は service.DrillService のモックです
type DrillService struct {
	mock.Mock
}

func (m *DrillService) NextQuiz(ctx context.Context, userID string, level model.Level, count int) ([]model.QuizItem, error) {
	args := m.Called(ctx, userID, level, count)
	var items []model.QuizItem
	if args.Get(0) != nil {
		items = args.Get(0).([]model.QuizItem)
	}
	return items, args.Error(1)
}

func (m *DrillService) RecordOutcome(ctx context.Context, userID, questionID string, correct bool) error {
	args := m.Called(ctx, userID, questionID, correct)
	return args.Error(0)
}

func (m *DrillService) Report(ctx context.Context, userID string, level model.Level) (*model.LevelReport, error) {
	args := m.Called(ctx, userID, level)
	var report *model.LevelReport
	if args.Get(0) != nil {
		report = args.Get(0).(*model.LevelReport)
	}
	return report, args.Error(1)
}

func (m *DrillService) Vocab(level model.Level) []model.VocabEntry {
	args := m.Called(level)
	var entries []model.VocabEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]model.VocabEntry)
	}
	return entries
}
