// Package main запускает HTTP-сервис записи на внеклассные активности
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"activity-signup-service/internal/config"
	httpapi "activity-signup-service/internal/http"
	"activity-signup-service/internal/repository"
	"activity-signup-service/internal/service"
)

func main() {
	// Инициализация логгера (JSON)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Чтение конфигурации из ENV
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Стартовый каталог активностей из статической конфигурации
	roster, err := config.LoadRoster(cfg.ActivitiesFile)
	if err != nil {
		log.Fatalf("failed to load activities: %v", err)
	}

	// 1. Инициализация хранилища
	rosterRepo := repository.NewRosterRepo(roster)

	// 2. Инициализация сервиса
	rosterService := service.NewRosterService(rosterRepo)

	// 3. Инициализация HTTP-обработчика
	handler := httpapi.NewHandler(rosterService, logger, cfg.StaticDir)

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: handler.Router(),
	}

	// Канал для сигналов завершения; ошибка сервера тоже ведёт к остановке
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Запуск сервера в горутине
	go func() {
		logger.Info("starting http server",
			slog.String("addr", server.Addr),
			slog.Int("activities", len(roster)),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("err", err))
			stop <- syscall.SIGTERM
		}
	}()

	// Graceful Shutdown
	<-stop
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server shutdown error", slog.Any("err", err))
	}

	logger.Info("server stopped")
}
