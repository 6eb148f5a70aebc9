package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-table-reservation/internal/config"
	"github.com/iliyamo/restaurant-table-reservation/internal/database"
	"github.com/iliyamo/restaurant-table-reservation/internal/handler"
	"github.com/iliyamo/restaurant-table-reservation/internal/middleware"
	"github.com/iliyamo/restaurant-table-reservation/internal/queue"
	"github.com/iliyamo/restaurant-table-reservation/internal/repository"
	"github.com/iliyamo/restaurant-table-reservation/internal/router"
	"github.com/iliyamo/restaurant-table-reservation/internal/store"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win

	cfg := config.Load()
	st := store.New()

	// The MySQL archive is a best-effort mirror of the in-memory
	// state.  The service runs fine without it.
	var archive *repository.Archive
	if cfg.ArchiveEnabled() {
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Printf("archive disabled: %v", err)
		} else {
			archive = repository.NewArchive(db)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := archive.EnsureSchema(ctx); err != nil {
				log.Printf("archive disabled: %v", err)
				archive = nil
			}
			cancel()
		}
	}

	// Redis backs the token-bucket rate limiter and the public
	// response cache; both degrade to pass-through when it is down.
	rdb := config.NewRedisClient()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, st, archive), cfg.JWTSecret)
	router.RegisterManager(e, handler.NewManagerHandler(st, archive), cfg.JWTSecret)
	router.RegisterClient(e, handler.NewClientHandler(st, archive), cfg.JWTSecret)
	router.RegisterPublic(e, handler.NewPublicHandler(st, cfg.AvailabilityDays), cacheMW)

	// Consume reservation lifecycle events in the background; the
	// consumer reconnects on its own if the broker goes away.
	go func() {
		if err := queue.StartReservationConsumer(); err != nil {
			log.Printf("reservation consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
