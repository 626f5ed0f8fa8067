// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"go_5_vocab_drill/internal/catalog"
	"go_5_vocab_drill/internal/config"
	"go_5_vocab_drill/internal/handlers"
	"go_5_vocab_drill/internal/middleware"
	"go_5_vocab_drill/internal/repository"
	"go_5_vocab_drill/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	if err := config.LoadConfig("configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	// 2. カタログ読み込み (起動時に一度だけ。ID衝突や破損データなら起動を中止する)
	cat, err := catalog.Load(config.Cfg.Catalog.Path)
	if err != nil {
		slog.Error("Error loading question catalog", slog.String("path", config.Cfg.Catalog.Path), slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("Question catalog loaded", slog.Int("questions", cat.Size()))

	// 3. Outcome Store の初期化 (設定でファイル/RDBを切り替え)
	var repo repository.OutcomeRepository
	switch config.Cfg.Store.Driver {
	case "file":
		repo, err = repository.NewFileOutcomeRepository(config.Cfg.Store.Dir)
		if err != nil {
			slog.Error("Error initializing file outcome store", slog.Any("error", err))
			os.Exit(1)
		}
	case "postgres", "sqlite":
		db, dbErr := repository.NewDB(config.Cfg.Store.Driver, config.Cfg.Store.URL, logger)
		if dbErr != nil {
			slog.Error("Error initializing database outcome store", slog.Any("error", dbErr))
			os.Exit(1)
		}
		sqlDB, dbErr := db.DB()
		if dbErr != nil {
			slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", dbErr))
			os.Exit(1)
		}
		defer func() {
			if err := sqlDB.Close(); err != nil {
				slog.Error("Error closing database connection", slog.Any("error", err))
			} else {
				slog.Info("Database connection closed.")
			}
		}()
		repo = repository.NewGormOutcomeRepository(db)
	default:
		slog.Error("Unknown store driver", slog.String("driver", config.Cfg.Store.Driver))
		os.Exit(1)
	}

	// 4. Dependency Injection
	drillService := service.NewDrillService(repo, cat)
	drillHandler := handlers.NewDrillHandler(drillService, &config.Cfg)

	// 5. Setup Router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Get("/next/{user_id}/{level}", drillHandler.GetNextQuiz)
	r.Get("/next/{user_id}/{level}/{count}", drillHandler.GetNextQuiz)
	r.Get("/record/{user_id}/{question_id}/{correct}", drillHandler.RecordOutcome)
	r.Put("/record", drillHandler.PutRecordOutcome)
	r.Get("/report/{user_id}/{level}", drillHandler.GetReport)
	r.Get("/vocab/{level}", drillHandler.GetVocab)

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 6. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
