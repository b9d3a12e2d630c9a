// Package main runs the WeCare shop console.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/georgemunganga/wecare-shop/internal/config"
	"github.com/georgemunganga/wecare-shop/internal/console"
	"github.com/georgemunganga/wecare-shop/internal/modules/billing"
	"github.com/georgemunganga/wecare-shop/internal/modules/catalog"
	"github.com/georgemunganga/wecare-shop/internal/modules/inventory"
	"github.com/georgemunganga/wecare-shop/internal/modules/pos"
	"github.com/georgemunganga/wecare-shop/internal/obs"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "wecare: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// The screen belongs to the user; logs go to a file.
	logger, err := obs.NewLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	store, err := catalog.NewService(ctx, catalog.NewFileRepository(cfg.CatalogFile), logger)
	if err != nil {
		logger.Error("catalog_load_failed", zap.Error(err))
		return err
	}
	invoices := billing.NewFileWriter(cfg.InvoiceDir, logger)

	c := console.New(os.Stdin, os.Stdout, store,
		pos.NewService(store, invoices, logger),
		inventory.NewService(store, invoices, logger),
		logger)

	logger.Info("console_started", zap.String("catalog", cfg.CatalogFile), zap.String("invoices", cfg.InvoiceDir))
	if err := c.Run(ctx); err != nil {
		logger.Error("console_failed", zap.Error(err))
		return err
	}
	logger.Info("console_stopped")
	return nil
}
