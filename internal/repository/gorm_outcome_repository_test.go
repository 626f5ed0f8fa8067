// internal/repository/gorm_outcome_repository_test.go
package repository

import (
	"context"
	"testing"

	"go_5_vocab_drill/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite" // テスト用にsqliteを使用
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // テスト中はログを抑制
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.OutcomeEventRecord{}))
	return db
}

func TestGormOutcomeRepository_AppendThenLoad(t *testing.T) {
	ctx := context.Background()
	repo := NewGormOutcomeRepository(setupTestDB(t))

	events := []model.OutcomeEvent{
		{Timestamp: 1000, Correct: false},
		{Timestamp: 2000, Correct: true},
	}
	for _, ev := range events {
		require.NoError(t, repo.Append(ctx, "alice", "q1", ev))
	}
	require.NoError(t, repo.Append(ctx, "alice", "q2", model.OutcomeEvent{Timestamp: 3000, Correct: true}))
	require.NoError(t, repo.Append(ctx, "bob", "q1", model.OutcomeEvent{Timestamp: 4000, Correct: false}))

	record, err := repo.Load(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, record, 2)
	// 主キー昇順 = 追記順で返る
	assert.Equal(t, events, record["q1"])
	assert.Equal(t, []model.OutcomeEvent{{Timestamp: 3000, Correct: true}}, record["q2"])

	bobRecord, err := repo.Load(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, bobRecord, 1)
}

func TestGormOutcomeRepository_LoadUnknownUser(t *testing.T) {
	repo := NewGormOutcomeRepository(setupTestDB(t))

	record, err := repo.Load(context.Background(), "nobody")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Empty(t, record)
}
