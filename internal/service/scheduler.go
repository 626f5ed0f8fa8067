// internal/service/scheduler.go
package service

import (
	"math/rand"
	"time"

	"go_5_vocab_drill/internal/catalog"
	"go_5_vocab_drill/internal/model"
)

// Spacing は習熟度ごとの再出題間隔(秒)です。習熟度が低いほど早く再出題されます。
// NoDataにエントリはありません。出題済みの問題には必ず1件以上の履歴があるため、
// 採点がNoDataを返すことはない、という前提です。
var Spacing = map[model.Grade]int64{
	model.GradeLow:      1 * 24 * 3600,
	model.GradeModerate: 3 * 24 * 3600,
	model.GradeHigh:     7 * 24 * 3600,
	model.GradeTotal:    20 * 24 * 3600,
}

// SelectDue は指定レベルから次に出題する問題IDを最大count件選びます。
//
// 出題済みの問題は履歴を採点し、基準時刻から習熟度に応じた間隔が経過したものを
// 「再出題期限到来」として優先します。残り枠は未出題の問題で埋めます。
// どちらのプールからの選択もランダムで、同一呼び出し内で同じIDを二度返しません。
// 両プールが尽きた場合はcount未満(空もあり得る)を返します。これはエラーではありません。
func SelectDue(record model.UserRecord, level model.Level, cat *catalog.Catalog, count int, now time.Time, rng *rand.Rand) []string {
	if count <= 0 {
		return nil
	}

	nowEpoch := now.Unix()
	var due, unseen []string

	for _, q := range cat.Level(level) {
		history, seen := record[q.ID]
		if !seen {
			unseen = append(unseen, q.ID)
			continue
		}
		grade, anchor := GradeHistory(history)
		spacing, ok := Spacing[grade]
		if !ok {
			continue
		}
		if nowEpoch-anchor > spacing {
			due = append(due, q.ID)
		}
	}

	rng.Shuffle(len(due), func(i, j int) { due[i], due[j] = due[j], due[i] })
	rng.Shuffle(len(unseen), func(i, j int) { unseen[i], unseen[j] = unseen[j], unseen[i] })

	selected := make([]string, 0, count)
	for _, pool := range [][]string{due, unseen} {
		for _, id := range pool {
			if len(selected) == count {
				return selected
			}
			selected = append(selected, id)
		}
	}
	return selected
}
