// internal/model/quiz.go
package model

// QuizItem は4択クイズ1問分のレスポンスDTOです。リクエストごとに生成され、保存されません。
type QuizItem struct {
	QuestionID string   `json:"question_id"`
	Statement  string   `json:"statement"`
	Subject    string   `json:"subject"`
	Choices    []string `json:"choices"`
	Answer     int      `json:"answer"` // Choices内の正解のインデックス
}

// RecordOutcomeRequest は解答結果送信(PUT /record)のリクエストDTO
type RecordOutcomeRequest struct {
	User       string `json:"user" validate:"required,max=64"`
	QuestionID string `json:"question_id" validate:"required"`
	Correct    *bool  `json:"correct" validate:"required"`
}

// CallStatus は単純な成否レスポンスDTO
type CallStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// GradeInfo は習熟度のラベルと数値表現
type GradeInfo struct {
	Label string `json:"label"`
	Level int    `json:"level"`
}

// TimestampInfo は基準時刻のエポック秒と表示用文字列
type TimestampInfo struct {
	Epoch    int64  `json:"epoch"`
	Datetime string `json:"datetime"`
}

// QuestionGradeReport は1問分の成績レポート
type QuestionGradeReport struct {
	Expression string        `json:"expression"`
	QType      QuestionType  `json:"q_type"`
	Grade      GradeInfo     `json:"grade"`
	Timestamp  TimestampInfo `json:"timestamp"`
}

// LevelReport はユーザー×レベルの成績レポートのレスポンスDTO
type LevelReport struct {
	User      string                         `json:"user"`
	Level     Level                          `json:"level"`
	Questions map[string]QuestionGradeReport `json:"questions"`
}
