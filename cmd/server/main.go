package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"product-manager/internal/config"
	"product-manager/internal/currency"
	"product-manager/internal/httpserver"
	authmw "product-manager/internal/middleware/auth"
	"product-manager/internal/models"
	"product-manager/internal/mykafka"
	"product-manager/internal/repo"
	"product-manager/internal/service"
	"product-manager/pkg/db"
	"product-manager/pkg/logging"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)
	slog.SetDefault(log)

	ctx := logging.IntoContext(context.Background(), log)

	gdb, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := gdb.AutoMigrate(&models.Product{}, &models.User{}, &models.CodeSequence{}); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}

	store := repo.NewGormRepo(gdb)
	if err := store.EnsureCodeSequence(ctx); err != nil {
		log.Error("code sequence seeding failed", "error", err)
		os.Exit(1)
	}
	if err := service.EnsureAdmin(ctx, store, cfg); err != nil {
		log.Error("admin bootstrap failed", "error", err)
		os.Exit(1)
	}

	var producer *mykafka.Producer
	if cfg.KafkaAddress != "" {
		producer = mykafka.NewProducer(strings.Split(cfg.KafkaAddress, ","))
		defer producer.Close()
	}

	productSvc := &service.ProductService{
		Repo:     store,
		Currency: currency.NewClient(cfg.HnbAPIURL),
	}
	authSvc := &service.AuthService{
		Repo:      store,
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  time.Duration(cfg.JWTTTLHours) * time.Hour,
	}

	e := httpserver.NewServer(&httpserver.Deps{
		Log:     log,
		Auth:    &httpserver.AuthHTTP{Svc: authSvc},
		Product: &httpserver.ProductHTTP{Svc: productSvc, Producer: producer},
		Guard:   &authmw.RoleGuard{Repo: store, JWTSecret: cfg.JWTSecret},
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}
