// internal/model/outcome.go
package model

// OutcomeEvent は1回分の解答結果です。記録後は変更されません。
type OutcomeEvent struct {
	Timestamp int64 `json:"timestamp"` // エポック秒
	Correct   bool  `json:"correct"`
}

// UserRecord は問題IDから解答履歴(古い順)への対応です。
// 1ユーザー分の全履歴を表し、追記のみで更新されます。
type UserRecord map[string][]OutcomeEvent

// OutcomeEventRecord はGORMストア用の解答イベント行です。
// 自動採番の主キーが追記順(=時系列順)を保存します。
type OutcomeEventRecord struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     string `gorm:"size:64;not null;index:idx_user_question"`
	QuestionID string `gorm:"size:16;not null;index:idx_user_question"`
	Timestamp  int64  `gorm:"not null"`
	Correct    bool   `gorm:"not null"`
}

func (OutcomeEventRecord) TableName() string {
	return "outcome_events"
}
