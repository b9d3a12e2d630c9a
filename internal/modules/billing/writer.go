package billing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

const maxNameAttempts = 1000

// Writer persists rendered invoices. Each call returns the path written.
type Writer interface {
	WriteSale(ctx context.Context, inv *SaleInvoice) (string, error)
	WriteRestock(ctx context.Context, inv *RestockInvoice) (string, error)
}

type invoiceFile interface {
	io.StringWriter
	io.Closer
}

type fileWriter struct {
	dir    string
	logger *zap.Logger
	create func(path string) (invoiceFile, error)
}

// NewFileWriter writes invoices as text files under dir, creating it on
// first use.
func NewFileWriter(dir string, logger *zap.Logger) Writer {
	return &fileWriter{dir: dir, logger: logger, create: createExclusive}
}

// createExclusive fails with fs.ErrExist when path is already taken.
func createExclusive(path string) (invoiceFile, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (w *fileWriter) WriteSale(ctx context.Context, inv *SaleInvoice) (string, error) {
	path, err := w.write(KindSale, inv.Date, RenderSale(inv))
	if err != nil {
		return "", err
	}
	w.logger.Info("invoice_written",
		zap.String("kind", string(KindSale)),
		zap.Stringer("invoice_id", inv.ID),
		zap.String("path", path),
		zap.Int("lines", len(inv.Items)),
		zap.String("total", inv.Total.StringFixed(2)))
	return path, nil
}

func (w *fileWriter) WriteRestock(ctx context.Context, inv *RestockInvoice) (string, error) {
	path, err := w.write(KindRestock, inv.Date, RenderRestock(inv))
	if err != nil {
		return "", err
	}
	w.logger.Info("invoice_written",
		zap.String("kind", string(KindRestock)),
		zap.Stringer("invoice_id", inv.ID),
		zap.String("path", path),
		zap.Int("lines", len(inv.Items)),
		zap.String("total", inv.Total.StringFixed(2)))
	return path, nil
}

// write creates {kind}_{yyyyMMdd_HHmmss}.txt, adding _2, _3, ... when an
// invoice with the same timestamp already exists.
func (w *fileWriter) write(kind Kind, at time.Time, content string) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create invoice dir: %w", err)
	}
	base := fmt.Sprintf("%s_%s", kind, at.Format("20060102_150405"))
	for n := 1; n <= maxNameAttempts; n++ {
		name := base + ".txt"
		if n > 1 {
			name = fmt.Sprintf("%s_%d.txt", base, n)
		}
		path := filepath.Join(w.dir, name)
		f, err := w.create(path)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("create invoice: %w", err)
		}
		if _, err := f.WriteString(content); err != nil {
			f.Close()
			w.discard(path)
			return "", fmt.Errorf("write invoice: %w", err)
		}
		if err := f.Close(); err != nil {
			w.discard(path)
			return "", fmt.Errorf("write invoice: %w", err)
		}
		return path, nil
	}
	return "", fmt.Errorf("no free invoice name for %s", base)
}

// discard removes a partially written invoice.
func (w *fileWriter) discard(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		w.logger.Warn("invoice_discard_failed", zap.String("path", path), zap.Error(err))
	}
}
