// internal/service/drill_service_test.go
package service

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"go_5_vocab_drill/internal/model"
	"go_5_vocab_drill/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDrillService は時刻と乱数を固定したdrillServiceを作るテストヘルパー
func newTestDrillService(repo *mocks.OutcomeRepository, catSize int, t *testing.T, now time.Time) *drillService {
	cat := buildTestCatalog(t, catSize)
	return &drillService{
		repo:   repo,
		cat:    cat,
		now:    func() time.Time { return now },
		newRng: func() *rand.Rand { return rand.New(rand.NewSource(42)) },
	}
}

func TestDrillService_RecordOutcome(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1700000000, 0)

	tests := []struct {
		name       string
		questionID func(s *drillService) string
		correct    bool
		setupMock  func(m *mocks.OutcomeRepository, questionID string)
		wantErr    error
	}{
		{
			name: "正常系: 既知の問題への解答を記録",
			questionID: func(s *drillService) string {
				return s.cat.Level(model.LevelN5)[0].ID
			},
			correct: true,
			setupMock: func(m *mocks.OutcomeRepository, questionID string) {
				m.On("Append", ctx, "alice", questionID,
					model.OutcomeEvent{Timestamp: now.Unix(), Correct: true}).
					Return(nil).Once()
			},
			wantErr: nil,
		},
		{
			name:       "異常系: 未知の問題ID -> ErrNotFound",
			questionID: func(s *drillService) string { return "ffffffffff" },
			correct:    true,
			setupMock:  func(m *mocks.OutcomeRepository, questionID string) { /* Appendは呼ばれない */ },
			wantErr:    model.ErrNotFound,
		},
		{
			name: "異常系: ストレージ障害はリクエスト失敗として返す",
			questionID: func(s *drillService) string {
				return s.cat.Level(model.LevelN5)[0].ID
			},
			correct: false,
			setupMock: func(m *mocks.OutcomeRepository, questionID string) {
				m.On("Append", ctx, "alice", questionID,
					model.OutcomeEvent{Timestamp: now.Unix(), Correct: false}).
					Return(errors.New("disk full")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.OutcomeRepository)
			s := newTestDrillService(mockRepo, 5, t, now)
			questionID := tt.questionID(s)
			tt.setupMock(mockRepo, questionID)

			err := s.RecordOutcome(ctx, "alice", questionID, tt.correct)

			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, model.ErrNotFound) {
					assert.ErrorIs(t, err, model.ErrNotFound)
				}
			} else {
				require.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestDrillService_NextQuiz(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1700000000, 0)

	t.Run("正常系: 期限到来の問題がクイズになる", func(t *testing.T) {
		mockRepo := new(mocks.OutcomeRepository)
		s := newTestDrillService(mockRepo, 10, t, now)

		dueID := s.cat.Level(model.LevelN5)[0].ID
		record := model.UserRecord{
			dueID: {{Timestamp: now.Add(-48 * time.Hour).Unix(), Correct: false}},
		}
		mockRepo.On("Load", ctx, "alice").Return(record, nil).Once()

		items, err := s.NextQuiz(ctx, "alice", model.LevelN5, 1)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, dueID, items[0].QuestionID)
		assert.Len(t, items[0].Choices, 4)
		mockRepo.AssertExpectations(t)
	})

	t.Run("正常系: 履歴のない新規ユーザーは未出題から出題", func(t *testing.T) {
		mockRepo := new(mocks.OutcomeRepository)
		s := newTestDrillService(mockRepo, 10, t, now)
		mockRepo.On("Load", ctx, "bob").Return(model.UserRecord{}, nil).Once()

		items, err := s.NextQuiz(ctx, "bob", model.LevelN5, 3)
		require.NoError(t, err)
		require.Len(t, items, 3)
		mockRepo.AssertExpectations(t)
	})

	t.Run("異常系: レコード読み込み失敗", func(t *testing.T) {
		mockRepo := new(mocks.OutcomeRepository)
		s := newTestDrillService(mockRepo, 10, t, now)
		mockRepo.On("Load", ctx, "carol").Return(nil, errors.New("io error")).Once()

		items, err := s.NextQuiz(ctx, "carol", model.LevelN5, 1)
		require.Error(t, err)
		assert.Nil(t, items)
		mockRepo.AssertExpectations(t)
	})
}

func TestDrillService_Report(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1700000000, 0)

	mockRepo := new(mocks.OutcomeRepository)
	s := newTestDrillService(mockRepo, 5, t, now)

	target := s.cat.Level(model.LevelN5)[0]

	// 不正解3回のあと正解2回 -> Moderate (直近3件 = F,T,T で揃わない)
	base := now.Add(-time.Hour).Unix()
	events := []model.OutcomeEvent{
		{Timestamp: base, Correct: false},
		{Timestamp: base + 10, Correct: false},
		{Timestamp: base + 20, Correct: false},
		{Timestamp: base + 30, Correct: true},
		{Timestamp: base + 40, Correct: true},
	}
	record := model.UserRecord{
		target.ID: events,
		// カタログ外のIDはレポートに含まれない
		"ffffffffff": {{Timestamp: base, Correct: true}},
	}
	mockRepo.On("Load", ctx, "alice").Return(record, nil).Once()

	report, err := s.Report(ctx, "alice", model.LevelN5)
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, "alice", report.User)
	assert.Equal(t, model.LevelN5, report.Level)
	require.Len(t, report.Questions, 1)

	entry := report.Questions[target.ID]
	assert.Equal(t, "Moderate", entry.Grade.Label)
	assert.Equal(t, int(model.GradeModerate), entry.Grade.Level)
	assert.Equal(t, base+40, entry.Timestamp.Epoch)
	mockRepo.AssertExpectations(t)
}

func TestDrillService_Vocab(t *testing.T) {
	mockRepo := new(mocks.OutcomeRepository)
	s := newTestDrillService(mockRepo, 7, t, time.Now())

	entries := s.Vocab(model.LevelN5)
	assert.Len(t, entries, 7)
	assert.Empty(t, s.Vocab(model.LevelN1))
}
