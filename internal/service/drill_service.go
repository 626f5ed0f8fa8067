// internal/service/drill_service.go
package service

import (
	"context"
	"math/rand"
	"time"

	"go_5_vocab_drill/internal/catalog"
	"go_5_vocab_drill/internal/middleware"
	"go_5_vocab_drill/internal/model"
	"go_5_vocab_drill/internal/repository"
)

// DrillService インターフェース
type DrillService interface {
	NextQuiz(ctx context.Context, userID string, level model.Level, count int) ([]model.QuizItem, error)
	RecordOutcome(ctx context.Context, userID, questionID string, correct bool) error
	Report(ctx context.Context, userID string, level model.Level) (*model.LevelReport, error)
	Vocab(level model.Level) []model.VocabEntry
}

type drillService struct {
	repo repository.OutcomeRepository
	cat  *catalog.Catalog

	// テストから差し替えられるように関数で持つ
	now    func() time.Time
	newRng func() *rand.Rand
}

func NewDrillService(repo repository.OutcomeRepository, cat *catalog.Catalog) DrillService {
	return &drillService{
		repo: repo,
		cat:  cat,
		now:  time.Now,
		newRng: func() *rand.Rand {
			// パッケージグローバルのSourceはロック付きなので、シード取得はここで済ませる
			return rand.New(rand.NewSource(rand.Int63()))
		},
	}
}

func (s *drillService) NextQuiz(ctx context.Context, userID string, level model.Level, count int) ([]model.QuizItem, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "level", string(level))

	record, err := s.repo.Load(ctx, userID)
	if err != nil {
		logger.Error("Failed to load user record", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "クイズの生成に失敗しました。", "", err)
	}

	rng := s.newRng()
	ids := SelectDue(record, level, s.cat, count, s.now(), rng)

	items := make([]model.QuizItem, 0, len(ids))
	for _, id := range ids {
		q, ok := s.cat.Question(id)
		if !ok {
			// SelectDueはカタログ由来のIDしか返さないため通常は到達しない
			logger.Warn("Selected question missing from catalog, skipping", "question_id", id)
			continue
		}
		item := ComposeQuiz(q, s.cat, rng)
		if len(item.Choices) < quizChoiceCount {
			logger.Warn("Composed quiz with fewer than 4 choices",
				"question_id", id, "choices", len(item.Choices))
		}
		items = append(items, item)
	}

	logger.Info("Quiz composed", "requested", count, "count", len(items))
	return items, nil
}

func (s *drillService) RecordOutcome(ctx context.Context, userID, questionID string, correct bool) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "question_id", questionID)

	if _, ok := s.cat.Question(questionID); !ok {
		logger.Warn("Outcome recorded for unknown question")
		return model.NewAppError("NOT_FOUND", "指定された問題が見つかりません。", "question_id", model.ErrNotFound)
	}

	event := model.OutcomeEvent{
		Timestamp: s.now().Unix(),
		Correct:   correct,
	}
	if err := s.repo.Append(ctx, userID, questionID, event); err != nil {
		logger.Error("Failed to append outcome event", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "解答結果の保存に失敗しました。", "", err)
	}

	logger.Info("Outcome recorded", "correct", correct)
	return nil
}

func (s *drillService) Report(ctx context.Context, userID string, level model.Level) (*model.LevelReport, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "level", string(level))

	record, err := s.repo.Load(ctx, userID)
	if err != nil {
		logger.Error("Failed to load user record", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "レポートの生成に失敗しました。", "", err)
	}

	report := &model.LevelReport{
		User:      userID,
		Level:     level,
		Questions: make(map[string]model.QuestionGradeReport),
	}
	for questionID, history := range record {
		q, ok := s.cat.Question(questionID)
		if !ok || q.Level != level {
			continue
		}
		grade, anchor := GradeHistory(history)
		report.Questions[questionID] = model.QuestionGradeReport{
			Expression: q.Expression,
			QType:      q.QType,
			Grade: model.GradeInfo{
				Label: grade.Label(),
				Level: int(grade),
			},
			Timestamp: model.TimestampInfo{
				Epoch:    anchor,
				Datetime: time.Unix(anchor, 0).Format("2006-01-02 15:04:05"),
			},
		}
	}

	logger.Info("Report generated", "count", len(report.Questions))
	return report, nil
}

func (s *drillService) Vocab(level model.Level) []model.VocabEntry {
	return s.cat.Entries(level)
}
