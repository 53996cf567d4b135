package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-booking-engine/core/cache"
	"go-booking-engine/core/clock"
	"go-booking-engine/core/config"
	"go-booking-engine/core/database"
	"go-booking-engine/core/logger"
	"go-booking-engine/core/middleware"
	"go-booking-engine/modules/booking"
	"go-booking-engine/modules/booking/worker"
	"go-booking-engine/modules/calendar"
	"go-booking-engine/modules/schedule"
	"go-booking-engine/modules/service"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Run boots the whole application: config, logging, storage, modules, the
// HTTP server, and the background sweep worker. It blocks until SIGINT or
// SIGTERM, then shuts everything down gracefully.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.Environment)
	defer logger.Sync()

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	if err := database.RunMigrations(context.Background(), db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	var c cache.Cache
	c, err = cache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		// The engine works without the cache, only slower
		logger.Warn("Server:RedisUnavailable", err)
		c = cache.Noop()
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())

	mw := middleware.NewMiddleware()
	e.Use(mw.RequestLogger())

	clk := clock.System()

	scheduleSvc := schedule.Init(e, db, mw)
	eventRepo, freeBusySvc := calendar.Init(e, db, scheduleSvc, mw)
	serviceSvc := service.Init(e, db, c, mw)
	bookingSvc := booking.Init(e, db, mw, serviceSvc, freeBusySvc, eventRepo, clk)

	e.GET("/api/v1/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	expiry := worker.NewExpiryWorker(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, bookingSvc, clk)
	expiry.Start()
	defer expiry.Shutdown()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		logger.Info("Server:Run", "addr", addr, "environment", cfg.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Run", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server:Shutdown", "reason", "signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
