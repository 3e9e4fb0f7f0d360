// Команда migrate применяет миграции схемы и, по флагу -seed, заполняет базу начальными данными.
package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	"github.com/ignatzorin/portfolio-backend/internal/config"
	"github.com/ignatzorin/portfolio-backend/internal/db"
	"github.com/ignatzorin/portfolio-backend/internal/logger"
	"github.com/ignatzorin/portfolio-backend/internal/repository"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

func main() {
	seed := flag.Bool("seed", false, "создать владельца и начальный контент, если база пуста")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("migrate: ошибка загрузки конфигурации: %v", err)
	}
	logger.Init(cfg.LogLevel, cfg.IsProduction())

	if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
		logger.Log.Fatalf("migrate: ошибка миграций: %v", err)
	}
	logger.Log.Info("migrate: схема актуальна")

	if !*seed {
		return
	}

	dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Log.Fatalf("migrate: ошибка подключения к базе: %v", err)
	}
	defer dbConn.Close()

	created, err := service.NewSeedService(repository.NewBootstrapRepository(dbConn)).EnsureDefaults(ctx)
	if err != nil {
		logger.Log.Fatalf("migrate: ошибка начального заполнения: %v", err)
	}
	if created {
		logger.Log.Info("migrate: начальные данные созданы")
	} else {
		logger.Log.Info("migrate: владелец уже существует, заполнение пропущено")
	}
}
