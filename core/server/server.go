package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gridmeet/core/cache"
	"gridmeet/core/config"
	"gridmeet/core/database"
	"gridmeet/core/logger"
	"gridmeet/core/middleware"
	"gridmeet/core/queue"
	"gridmeet/modules/availability"
	"gridmeet/modules/event"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// Run wires up config, storage, cache, queue and the HTTP surface, then
// serves until SIGINT/SIGTERM.
func Run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Init(cfg.Log.Level)

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}
	if err := db.EnsureSchema(context.Background()); err != nil {
		return err
	}

	c, err := cache.NewCache(cfg.Redis)
	if err != nil {
		return err
	}
	defer c.Close()

	q := queue.NewQueue(cfg.Redis)
	defer q.Close()

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	mw := middleware.NewMiddleware()

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	mux := asynq.NewServeMux()
	eventRepo := event.Init(e, db, mw)
	availability.Init(e, mux, db, c, q, eventRepo, mw)

	worker := queue.NewServer(cfg.Redis)
	go func() {
		if err := worker.Run(mux); err != nil {
			logger.Error("server: asynq worker stopped", err)
		}
	}()

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		logger.Info("HTTP server starting", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("server: listen error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	worker.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
