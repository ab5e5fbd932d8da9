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

	"github.com/lmittmann/tint"

	"darae_api/internal/config"
	"darae_api/internal/handlers"
	"darae_api/internal/repository"
	"darae_api/internal/service"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	configPath := os.Getenv("APP_CONFIG_PATH")
	if configPath == "" {
		configPath = "configs"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(cfg.Log.Level, tempLogger)
	slog.SetDefault(logger)
	slog.Info("Application starting...", slog.String("version", cfg.App.Version))

	// データベース接続 (GORM)
	db, err := repository.NewDB(cfg.Database.Driver, cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := repository.AutoMigrate(db); err != nil {
			slog.Error("Error migrating database", slog.Any("error", err))
			os.Exit(1)
		}
		slog.Info("Database schema migrated")
	}

	// 依存関係の組み立て
	userRepo := repository.NewGormUserRepository()
	languageRepo := repository.NewGormLanguageRepository()
	vocabRepo := repository.NewGormVocabularyRepository()
	expressionRepo := repository.NewGormExpressionRepository()
	grammarRepo := repository.NewGormGrammarRepository()
	noteRepo := repository.NewGormNoteRepository()

	authService := service.NewAuthService(db, userRepo, cfg)
	languageService := service.NewLanguageService(db, languageRepo)
	vocabService := service.NewVocabularyService(db, vocabRepo)
	expressionService := service.NewExpressionService(db, expressionRepo)
	grammarService := service.NewGrammarService(db, grammarRepo)
	noteService := service.NewNoteService(db, noteRepo, vocabRepo, grammarRepo, expressionRepo)
	dictionaryService := service.NewDictionaryService(db, vocabRepo)

	limit := cfg.App.DefaultListLimit
	router := handlers.NewRouter(handlers.RouterDeps{
		Config:     cfg,
		Logger:     logger,
		Resolver:   authService,
		Auth:       handlers.NewAuthHandler(authService),
		Language:   handlers.NewLanguageHandler(languageService),
		Vocabulary: handlers.NewVocabularyHandler(vocabService, limit),
		Expression: handlers.NewExpressionHandler(expressionService, limit),
		Grammar:    handlers.NewGrammarHandler(grammarService, limit),
		Note:       handlers.NewNoteHandler(noteService),
		Dictionary: handlers.NewDictionaryHandler(dictionaryService),
		Health:     handlers.NewHealthHandler(sqlDB, cfg.App.Name, cfg.App.Version),
	})

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 65 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
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

// newLogger は log.level と APP_ENV から slog ロガーを作ります。dev なら tint、それ以外は JSON。
func newLogger(level string, tempLogger *slog.Logger) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(level) {
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
		tempLogger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	return slog.New(handler)
}
