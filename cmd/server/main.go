package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/contacthub/backend/internal/config"
	"github.com/contacthub/backend/internal/handler"
	"github.com/contacthub/backend/internal/logging"
	"github.com/contacthub/backend/internal/repository"
	"github.com/contacthub/backend/internal/service"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("failed to load config", "error", err)
	}

	pool, err := repository.NewPool(context.Background(), cfg.Database)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	contactRepo := repository.NewPgContactRepository(pool)
	// テーブル作成失敗は致命ではない — /health が unhealthy を返し続ける
	if err := contactRepo.EnsureSchema(context.Background()); err != nil {
		slog.Error("schema bootstrap failed", "error", err)
	}

	contactService := service.NewContactService(contactRepo)

	h := handler.New(pool, cfg.Server.FrontendURL)
	contactHandler := handler.NewContactHandler(contactService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /contacts", contactHandler.List)
	mux.HandleFunc("POST /contacts", contactHandler.Create)
	mux.HandleFunc("DELETE /contacts/{id}", contactHandler.Delete)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      h.CORS(handler.SecurityHeaders(handler.RequestLogger(mux))),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
