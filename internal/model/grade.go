// internal/model/grade.go
package model

// Grade は直近の解答履歴から導出される習熟度です。
// 保存はされず、履歴から毎回計算し直されます。
type Grade int

const (
	GradeNoData   Grade = iota // 0: 履歴なし
	GradeLow                   // 1
	GradeModerate              // 2
	GradeHigh                  // 3
	GradeTotal                 // 4: 完全定着
)

var gradeLabels = map[Grade]string{
	GradeNoData:   "No Data",
	GradeLow:      "Low",
	GradeModerate: "Moderate",
	GradeHigh:     "High",
	GradeTotal:    "Total",
}

// Label は表示用のラベルを返します
func (g Grade) Label() string {
	if label, ok := gradeLabels[g]; ok {
		return label
	}
	return "Unknown"
}
