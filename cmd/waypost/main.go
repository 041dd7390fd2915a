package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/waypost/waypost/internal/auth"
	"github.com/waypost/waypost/internal/config"
	httpapp "github.com/waypost/waypost/internal/http"
	"github.com/waypost/waypost/internal/media"
	"github.com/waypost/waypost/internal/store/sqlite"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	st, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open db", "path", cfg.DBPath, "err", err)
		os.Exit(1)
	}
	defer st.Close()

	mediaStore, err := media.New(cfg.UploadDir, cfg.BaseURL)
	if err != nil {
		logger.Error("failed to initialize upload dir", "dir", cfg.UploadDir, "err", err)
		os.Exit(1)
	}

	authSvc := auth.NewService(cfg.JWTSecret, cfg.TokenTTL)
	server := httpapp.NewServer(st, authSvc, mediaStore, cfg, logger)

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("waypost listening", "addr", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(ctx)
}
