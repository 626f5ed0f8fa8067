// internal/repository/gorm_outcome_repository.go
package repository

import (
	"context"
	"fmt"

	"go_5_vocab_drill/internal/model"

	"gorm.io/gorm"
)

// gormOutcomeRepository はRDB上のoutcome_eventsテーブルに履歴を保存します。
// ファイルストアと差し替え可能な代替実装で、store.driver設定で選択されます。
type gormOutcomeRepository struct {
	db *gorm.DB
}

func NewGormOutcomeRepository(db *gorm.DB) OutcomeRepository {
	return &gormOutcomeRepository{db: db}
}

func (r *gormOutcomeRepository) Append(ctx context.Context, userID, questionID string, event model.OutcomeEvent) error {
	record := model.OutcomeEventRecord{
		UserID:     userID,
		QuestionID: questionID,
		Timestamp:  event.Timestamp,
		Correct:    event.Correct,
	}
	// 1件のINSERTだが、ストレージ契約(部分書き込みなし)に合わせてトランザクションで囲む
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&record).Error
	})
	if err != nil {
		return fmt.Errorf("appending outcome for user %s: %w", userID, err)
	}
	return nil
}

func (r *gormOutcomeRepository) Load(ctx context.Context, userID string) (model.UserRecord, error) {
	var rows []model.OutcomeEventRecord
	// 主キー昇順 = 追記順 = 時系列順
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("loading outcomes for user %s: %w", userID, result.Error)
	}

	record := model.UserRecord{}
	for _, row := range rows {
		record[row.QuestionID] = append(record[row.QuestionID], model.OutcomeEvent{
			Timestamp: row.Timestamp,
			Correct:   row.Correct,
		})
	}
	return record, nil
}
