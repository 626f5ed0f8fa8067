// internal/repository/mocks/outcome_repository.go
package mocks

import (
	"context"

	"go_5_vocab_drill/internal/model"

	"github.com/stretchr/testify/mock"
)

// OutcomeRepository は repository.OutcomeRepository のモックです
type OutcomeRepository struct {
	mock.Mock
}

func (m *OutcomeRepository) Append(ctx context.Context, userID, questionID string, event model.OutcomeEvent) error {
	args := m.Called(ctx, userID, questionID, event)
	return args.Error(0)
}

func (m *OutcomeRepository) Load(ctx context.Context, userID string) (model.UserRecord, error) {
	args := m.Called(ctx, userID)
	var record model.UserRecord
	if args.Get(0) != nil {
		record = args.Get(0).(model.UserRecord)
	}
	return record, args.Error(1)
}
