// internal/repository/file_outcome_repository.go
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go_5_vocab_drill/internal/model"

	"github.com/google/uuid"
)

// fileOutcomeRepository はユーザーごとに1ファイルのJSONで履歴を保存します。
// ファイル名はユーザーID。内容は 問題ID → [{timestamp, correct}] のJSONオブジェクト。
// 書き込みは一時ファイルへ書いてからrenameすることで、中途半端な状態を外に見せません。
type fileOutcomeRepository struct {
	dir string

	mu    sync.Mutex // locks マップの保護用
	locks map[string]*sync.Mutex
}

// NewFileOutcomeRepository はファイルベースのOutcomeRepositoryを作成します。
// dirが存在しなければ作成します。
func NewFileOutcomeRepository(dir string) (OutcomeRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating outcome store directory: %w", err)
	}
	return &fileOutcomeRepository{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

// userLock はユーザーIDごとのミューテックスを返します。
// 同一ユーザーへの並行Appendによる更新消失を防ぐための直列化に使います。
func (r *fileOutcomeRepository) userLock(userID string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	lock, ok := r.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[userID] = lock
	}
	return lock
}

func (r *fileOutcomeRepository) path(userID string) string {
	return filepath.Join(r.dir, userID+".json")
}

func (r *fileOutcomeRepository) Load(ctx context.Context, userID string) (model.UserRecord, error) {
	lock := r.userLock(userID)
	lock.Lock()
	defer lock.Unlock()
	return r.read(userID)
}

// read は呼び出し側でユーザーロックを取得済みであることを前提とします
func (r *fileOutcomeRepository) read(userID string) (model.UserRecord, error) {
	data, err := os.ReadFile(r.path(userID))
	if errors.Is(err, fs.ErrNotExist) {
		// 未記録のユーザーは空レコード扱い
		return model.UserRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading user record %s: %w", userID, err)
	}
	var record model.UserRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: user record %s: %v", model.ErrDataCorrupted, userID, err)
	}
	if record == nil {
		record = model.UserRecord{}
	}
	return record, nil
}

func (r *fileOutcomeRepository) Append(ctx context.Context, userID, questionID string, event model.OutcomeEvent) error {
	lock := r.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	record, err := r.read(userID)
	if err != nil {
		return err
	}
	record[questionID] = append(record[questionID], event)

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding user record %s: %w", userID, err)
	}

	// 一時ファイル経由のrenameで更新を単一ステップで可視化する
	tmp := r.path(userID) + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing user record %s: %w", userID, err)
	}
	if err := os.Rename(tmp, r.path(userID)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("committing user record %s: %w", userID, err)
	}
	return nil
}
