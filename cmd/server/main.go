package main // Entry point package

import (
	"context" // bounded context for the schema migration
	"log"     // Logging library
	"time"    // migration deadline

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/hoteldesk/hoteldesk/internal/billing"    // pricing engine and invoice issuer
	"github.com/hoteldesk/hoteldesk/internal/config"     // environment config loader
	"github.com/hoteldesk/hoteldesk/internal/database"   // MySQL pool and schema bootstrap
	"github.com/hoteldesk/hoteldesk/internal/handler"    // HTTP handlers
	"github.com/hoteldesk/hoteldesk/internal/middleware" // cache and rate limit middleware
	"github.com/hoteldesk/hoteldesk/internal/queue"      // invoice event consumer
	"github.com/hoteldesk/hoteldesk/internal/repository" // DB repositories
	"github.com/hoteldesk/hoteldesk/internal/router"     // route registration
)

func main() {
	_ = godotenv.Load() // .env is optional; real environments set vars directly

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.Migrate(ctx, db); err != nil {
		cancel()
		log.Fatalf("migrate: %v", err)
	}
	cancel()

	rdb := config.NewRedisClient() // nil when Redis is absent; middleware degrades to passthrough

	// Repositories.
	guests := repository.NewGuestRepo(db)
	staff := repository.NewStaffRepo(db)
	rooms := repository.NewRoomRepo(db)
	services := repository.NewServiceRepo(db)
	reservations := repository.NewReservationRepo(db)
	invoices := repository.NewInvoiceRepo(db)
	accounts := repository.NewAccountRepo(db)
	tokens := repository.NewTokenRepo(db)

	// Billing.
	engine := billing.NewEngine(rooms, reservations)
	issuer := billing.NewIssuer(engine, invoices)

	// Handlers.
	frontDesk := handler.NewFrontDeskHandler(guests, staff, rooms, services)
	resHandler := handler.NewReservationHandler(reservations, engine, issuer, invoices)
	authHandler := handler.NewAuthHandler(cfg, accounts, tokens)

	e := echo.New() // Create Echo instance
	e.HideBanner = true

	rlCfg := config.LoadRateLimitConfig()
	if rlCfg.Enabled && rdb != nil {
		e.Use(middleware.NewRateLimit(rlCfg, rdb))
	}

	var cache echo.MiddlewareFunc
	cacheCfg := config.LoadCacheConfig()
	if cacheCfg.Enabled && rdb != nil {
		cache = middleware.NewResponseCache(cacheCfg, rdb)
	}

	router.RegisterRoutes(e) // health check
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterFrontDesk(e, frontDesk, cfg.JWTSecret, cache)
	router.RegisterReservations(e, resHandler, cfg.JWTSecret, cache)

	// The consumer reconnects on its own; a hard failure only loses the
	// audit log, never an invoice row.
	go func() {
		if err := queue.StartInvoiceConsumer(); err != nil {
			log.Printf("invoice consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
