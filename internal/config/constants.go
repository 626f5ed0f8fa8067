// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "vocab-drill"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort   = ":8080"
	DefaultLogLevel     = "info"
	DefaultCatalogPath  = "questions.json"
	DefaultStoreDriver  = "file"
	DefaultStoreDir     = "users"
	DefaultQuizCount    = 1
	DefaultMaxQuizCount = 20
)
