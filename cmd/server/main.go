package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/portfolio-backend/internal/config"
	"github.com/ignatzorin/portfolio-backend/internal/db"
	"github.com/ignatzorin/portfolio-backend/internal/goroutine"
	httpHandlers "github.com/ignatzorin/portfolio-backend/internal/http/handlers"
	httpRouter "github.com/ignatzorin/portfolio-backend/internal/http/router"
	"github.com/ignatzorin/portfolio-backend/internal/logger"
	"github.com/ignatzorin/portfolio-backend/internal/repository"
	"github.com/ignatzorin/portfolio-backend/internal/service"
	"github.com/ignatzorin/portfolio-backend/internal/storage"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}
	logger.Init(cfg.LogLevel, cfg.IsProduction())

	// Подключение к базе и миграции.
	dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Log.Fatalf("main: ошибка подключения к базе: %v", err)
	}
	defer safeClose(dbConn)

	if cfg.RunMigrations {
		if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
			logger.Log.Fatalf("main: ошибка миграций: %v", err)
		}
	}

	if cfg.SeedOnStart {
		if _, err := service.NewSeedService(repository.NewBootstrapRepository(dbConn)).EnsureDefaults(ctx); err != nil {
			logger.Log.Fatalf("main: ошибка начального заполнения: %v", err)
		}
	}

	fileStorage, err := storage.New(ctx, cfg.Storage, cfg.MaxUploadSizeMB)
	if err != nil {
		logger.Log.Fatalf("main: не удалось подготовить файловое хранилище: %v", err)
	}

	// Сервисы поверх репозиториев.
	userService := service.NewUserService(repository.NewUserRepository(dbConn))
	patentService := service.NewPatentService(repository.NewPatentRepository(dbConn))
	competitionService := service.NewCompetitionService(repository.NewCompetitionRepository(dbConn))
	newsService := service.NewNewsService(repository.NewNewsRepository(dbConn))
	projectService := service.NewProjectService(repository.NewProjectRepository(dbConn))
	skillService := service.NewSkillService(repository.NewSkillRepository(dbConn))
	aboutService := service.NewAboutValueService(repository.NewAboutValueRepository(dbConn))
	fileService := service.NewFileService(repository.NewFileRepository(dbConn), fileStorage, cfg.MaxUploadSizeMB)
	analyticsService := service.NewAnalyticsService(repository.NewAnalyticsRepository(dbConn))
	authService := service.NewAuthService(cfg.AdminPassword, cfg.AdminPasswordHash)

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, httpRouter.Handlers{
		Health:       httpHandlers.NewHealthHandler(dbConn, cfg.Env),
		Auth:         httpHandlers.NewAuthHandler(authService),
		Users:        httpHandlers.NewUserHandler(userService),
		Patents:      httpHandlers.NewPatentHandler(patentService),
		Competitions: httpHandlers.NewCompetitionHandler(competitionService),
		News:         httpHandlers.NewNewsHandler(newsService),
		Projects:     httpHandlers.NewProjectHandler(projectService),
		Skills:       httpHandlers.NewSkillHandler(skillService),
		AboutValues:  httpHandlers.NewAboutValueHandler(aboutService),
		Files:        httpHandlers.NewFileHandler(fileService, cfg.MaxUploadSizeMB),
		Analytics:    httpHandlers.NewAnalyticsHandler(analyticsService),
	})

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		logger.Log.Fatalf("main: не удалось открыть порт %s: %v", cfg.HTTPPort, err)
	}
	logger.Log.Infof("main: HTTP сервер запущен на порту %s (%s)", cfg.HTTPPort, cfg.Env)

	if err := serve(ctx, server, ln); err != nil {
		logger.Log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
	logger.Log.Info("main: сервер остановлен")
}

// serve обслуживает запросы до отмены ctx и возвращается только после того,
// как Shutdown дождался активных запросов. Serve возвращает ErrServerClosed
// сразу после вызова Shutdown, поэтому без ожидания пул базы закрылся бы раньше.
func serve(ctx context.Context, server *http.Server, ln net.Listener) error {
	shutdownDone := goroutine.Go(ctx, "http-shutdown", func(ctx context.Context) {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Log.Errorf("main: ошибка остановки http сервера: %v", err)
		}
	})

	if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-shutdownDone
	return nil
}

// safeClose закрывает соединение с базой.
func safeClose(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		logger.Log.Errorf("main: ошибка закрытия базы: %v", err)
	}
}
