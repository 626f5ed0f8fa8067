// internal/catalog/builder.go
package catalog

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go_5_vocab_drill/internal/model"
)

// ErrIDCollision は問題ID導出の衝突を表します。
// 衝突したカタログは曖昧なデータを提供してしまうため、ビルドは失敗させます。
var ErrIDCollision = errors.New("question id collision")

// idLength は問題IDの長さ(sha256ダイジェストの先頭16進文字数)
const idLength = 10

// DeriveID は語彙エントリと出題形式から問題IDを導出します。
// "<json{level,expression,reading,meaning}>/<q_type>" のsha256ダイジェスト先頭10桁(16進)。
// 内容が同じであれば実行をまたいでも同じIDになるため、
// カタログを再生成してもユーザー履歴のキーは有効なままです。
func DeriveID(entry model.VocabEntry, qType model.QuestionType) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(entry); err != nil {
		return "", fmt.Errorf("encoding vocab entry for id derivation: %w", err)
	}
	// Encodeは末尾に改行を付けるため除去してから形式名を連結する
	payload := strings.TrimSuffix(buf.String(), "\n") + "/" + string(qType)
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])[:idLength], nil
}

// ExpandEntries は語彙エントリを出題形式ごとに展開し、IDで引ける問題集合を作ります。
// 1エントリにつき問題は2つ(意味・読み)。ID衝突はErrIDCollisionで失敗します。
func ExpandEntries(entries []model.VocabEntry) (map[string]model.Question, error) {
	questions := make(map[string]model.Question, len(entries)*2)
	for _, entry := range entries {
		if err := validateEntry(entry); err != nil {
			return nil, err
		}
		for _, qType := range model.QuestionTypes {
			id, err := DeriveID(entry, qType)
			if err != nil {
				return nil, err
			}
			if prev, ok := questions[id]; ok {
				return nil, fmt.Errorf("%w: id %q derived for both %s/%s and %s/%s",
					ErrIDCollision, id, prev.Expression, prev.QType, entry.Expression, qType)
			}
			questions[id] = model.Question{
				ID:         id,
				Level:      entry.Level,
				Expression: entry.Expression,
				Reading:    entry.Reading,
				Meaning:    entry.Meaning,
				QType:      qType,
			}
		}
	}
	return questions, nil
}

func validateEntry(entry model.VocabEntry) error {
	if _, err := model.ParseLevel(string(entry.Level)); err != nil {
		return fmt.Errorf("vocab entry %q: %w", entry.Expression, err)
	}
	if entry.Expression == "" || entry.Reading == "" || entry.Meaning == "" {
		return fmt.Errorf("%w: vocab entry %+v has empty fields", model.ErrInvalidInput, entry)
	}
	return nil
}
