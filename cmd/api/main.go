package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/georgemunganga/wecare-shop/internal/config"
	"github.com/georgemunganga/wecare-shop/internal/modules/catalog"
	"github.com/georgemunganga/wecare-shop/internal/modules/pos"
	"github.com/georgemunganga/wecare-shop/internal/obs"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading .env file: ", err)
	}

	logger, err := obs.NewLogger(cfg.LogLevel, "stderr")
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Catalog (read-only, reloaded per request) ───────────
	reader := catalog.NewSnapshotReader(catalog.NewFileRepository(cfg.CatalogFile))
	catalog.NewHandler(reader, pos.SellingPrice).RegisterRoutes(router)

	// ── Start Server ─────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.APIPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http_listen", zap.String("addr", srv.Addr), zap.String("catalog", cfg.CatalogFile))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("http_shutdown")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("http_server_error", zap.Error(err))
		os.Exit(1)
	}
}
