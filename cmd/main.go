package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/ladder-system/config"
	"github.com/Dosada05/ladder-system/db"
	"github.com/Dosada05/ladder-system/handlers"
	"github.com/Dosada05/ladder-system/realtime"
	"github.com/Dosada05/ladder-system/repositories"
	api "github.com/Dosada05/ladder-system/routes"
	"github.com/Dosada05/ladder-system/services"
	"github.com/Dosada05/ladder-system/state"
	"github.com/Dosada05/ladder-system/storage"
	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
)

// @title Ladder System API
// @version 1.0
// @description API двухгрупповой лиги пар: игроки, турниры, туры, счет и live-обновления.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Подключение к базе данных
	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	if err := db.Migrate(ctx, dbConn); err != nil {
		logger.Error("failed to apply schema", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("database connection established")

	// Хранилище файлов (Cloudflare R2) опционально
	var uploader storage.FileUploader
	if cfg.StorageEnabled() {
		uploader, err = storage.NewCloudflareR2Uploader(ctx, storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized")
	} else {
		logger.Warn("object storage disabled: avatars and snapshots are not stored")
	}

	// Инициализация WebSocket Hub
	wsHub := realtime.NewHub(logger)
	go wsHub.Run(ctx)
	logger.Info("WebSocket Hub started")

	// Инициализация репозиториев
	tx := repositories.NewTransactor(dbConn)
	playerRepo := repositories.NewPostgresPlayerRepository(dbConn)
	tournamentRepo := repositories.NewPostgresTournamentRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)
	specialRepo := repositories.NewPostgresSpecialTypeRepository(dbConn)
	logger.Info("Repositories initialized")

	// Состояние турниров в памяти, периодически сверяется с БД
	loader := services.NewOverviewLoader(tournamentRepo, playerRepo, matchRepo, specialRepo, uploader)
	store := state.NewStore(loader.Load, logger)
	go store.Run(ctx, cfg.StateSyncInterval)

	// Инициализация сервисов
	authService := services.NewAuthService(services.OperatorCredentials{
		Email:        cfg.OperatorEmail,
		PasswordHash: cfg.OperatorPasswordHash,
	}, cfg.JWTSecretKey)
	if cfg.OperatorEmail == "" || cfg.OperatorPasswordHash == "" {
		logger.Warn("operator credentials are not configured: write endpoints are unreachable")
	}
	playerService := services.NewPlayerService(playerRepo, uploader, logger)
	tournamentService := services.NewTournamentService(tx, tournamentRepo, playerRepo, matchRepo, store, wsHub, uploader, logger)
	roundService := services.NewRoundService(tx, tournamentRepo, playerRepo, matchRepo, specialRepo, store, wsHub, uploader, logger)
	matchService := services.NewMatchService(tx, matchRepo, tournamentRepo, playerRepo, specialRepo, store, wsHub, logger)
	specialService := services.NewSpecialTypeService(specialRepo)
	dashboardService := services.NewDashboardService(playerRepo, tournamentRepo, matchRepo)
	logger.Info("Services initialized")

	// Инициализация обработчиков HTTP
	authHandler := handlers.NewAuthHandler(authService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	tournamentHandler := handlers.NewTournamentHandler(tournamentService)
	roundHandler := handlers.NewRoundHandler(roundService)
	matchHandler := handlers.NewMatchHandler(matchService)
	specialHandler := handlers.NewSpecialTypeHandler(specialService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	webSocketHandler := handlers.NewWebSocketHandler(wsHub, tournamentService, logger)
	logger.Info("HTTP handlers initialized")

	// Настройка маршрутизатора
	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		api.Options{JWTSecret: cfg.JWTSecretKey, AllowedOrigins: cfg.CORSAllowedOrigins},
		authHandler,
		playerHandler,
		tournamentHandler,
		roundHandler,
		matchHandler,
		specialHandler,
		dashboardHandler,
		webSocketHandler,
	)
	logger.Info("Routes configured")

	// Настройка и запуск HTTP-сервера
	server := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:     router,
		ReadTimeout: 10 * time.Second,
		// WriteTimeout не задан: WebSocket-соединения долгоживущие,
		// обычные запросы ограничены chi Timeout
		IdleTimeout: 120 * time.Second,
		ErrorLog:    slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Ожидание сигнала завершения
	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
