// internal/repository/outcome_repository.go
package repository

import (
	"context"

	"go_5_vocab_drill/internal/model"
)

// OutcomeRepository は1ユーザー分の解答履歴の読み書きを抽象化します。
// Appendは1件の追記をアトミックに行い、同一ユーザーへの同時追記は直列化されます。
// Loadは履歴のないユーザーに対して空のUserRecordを返します(エラーにはしません)。
type OutcomeRepository interface {
	Append(ctx context.Context, userID, questionID string, event model.OutcomeEvent) error
	Load(ctx context.Context, userID string) (model.UserRecord, error)
}
