package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vehicle-checklist-service/internal/adapters/primary/http/handlers"
	"vehicle-checklist-service/internal/adapters/primary/http/middleware"
	"vehicle-checklist-service/internal/adapters/secondary/emailjs"
	"vehicle-checklist-service/internal/adapters/secondary/imgbb"
	"vehicle-checklist-service/internal/adapters/secondary/postgres"
	"vehicle-checklist-service/internal/adapters/secondary/rediscache"
	"vehicle-checklist-service/internal/config"
	ports "vehicle-checklist-service/internal/core/ports/output"
	"vehicle-checklist-service/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Create database pool
	poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		log.Fatalf("parse db config: %v", err)
	}
	poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.Database.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatalf("create db pool: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatalf("ping db: %v", err)
	}
	log.Info("database connection established")

	// Secondary adapters
	checklistRepo := postgres.NewChecklistRepository(pool)
	vehicleRepo := postgres.NewVehicleRepository(pool)

	var reportCache ports.ReportCache
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Warnf("redis ping failed (continuing without report cache): %v", err)
		} else {
			reportCache = rediscache.NewReportCache(rdb)
			log.Info("report cache initialized")
		}
	} else {
		log.Info("report cache disabled")
	}

	notifier := emailjs.NewClient(cfg.Email)
	imageHost := imgbb.NewClient(cfg.ImageHost)

	// Core services
	draftSvc := services.NewDraftService(imageHost)
	checklistSvc := services.NewChecklistService(checklistRepo, notifier, reportCache)
	vehicleSvc := services.NewVehicleService(vehicleRepo)
	reportSvc := services.NewReportService(checklistSvc)
	sessionSvc := services.NewSessionService(cfg.Access.Code)

	// Primary adapter
	h := handlers.New(draftSvc, checklistSvc, vehicleSvc, reportSvc, sessionSvc)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	api := router.Group("/api/v1/checklist")
	h.RegisterRoutes(api)

	// Health check with DB ping
	router.GET("/healthz", func(c *gin.Context) {
		if err := pool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
