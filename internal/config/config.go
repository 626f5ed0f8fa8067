// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

type StoreConfig struct {
	Driver string `mapstructure:"driver"` // "file" | "postgres" | "sqlite"
	Dir    string `mapstructure:"dir"`    // fileドライバ用: ユーザーレコード置き場
	URL    string `mapstructure:"url"`    // postgres/sqliteドライバ用: 接続文字列
}

type AppConfig struct {
	QuizCount    int `mapstructure:"quiz_count"`     // /next のデフォルト出題数
	MaxQuizCount int `mapstructure:"max_quiz_count"` // /next/{count} の上限
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Store   StoreConfig   `mapstructure:"store"`
	App     AppConfig     `mapstructure:"app"`
	CORS    CORSConfig    `mapstructure:"cors"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 環境変数でも上書きできるようにする (例: APP_SERVER_PORT)
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("store.driver", "STORE_DRIVER")
	viper.BindEnv("store.url", "STORE_URL")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Catalog.Path == "" {
		log.Printf("Catalog path not set, using default '%s'", DefaultCatalogPath)
		Cfg.Catalog.Path = DefaultCatalogPath
	}
	if Cfg.Store.Driver == "" {
		Cfg.Store.Driver = DefaultStoreDriver
	}
	if Cfg.Store.Dir == "" {
		Cfg.Store.Dir = DefaultStoreDir
	}
	if Cfg.App.QuizCount <= 0 {
		log.Printf("App quiz count not set or invalid, using default '%d'", DefaultQuizCount)
		Cfg.App.QuizCount = DefaultQuizCount
	}
	if Cfg.App.MaxQuizCount <= 0 {
		Cfg.App.MaxQuizCount = DefaultMaxQuizCount
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Catalog Path: %s", Cfg.Catalog.Path)
	log.Printf("Store Driver: %s", Cfg.Store.Driver)
	log.Printf("Quiz Count: %d", Cfg.App.QuizCount)

	return nil
}
