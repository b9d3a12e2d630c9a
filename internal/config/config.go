// Package config provides runtime configuration values for the shop.
package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Config holds file locations and server settings.
type Config struct {
	CatalogFile string
	InvoiceDir  string
	LogFile     string
	LogLevel    string
	APIPort     string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads an optional .env file and collects configuration from the
// environment with defaults. A missing .env is not an error.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	return Config{
		CatalogFile: getenv("WECARE_CATALOG_FILE", "products.txt"),
		InvoiceDir:  getenv("WECARE_INVOICE_DIR", "invoices"),
		LogFile:     getenv("WECARE_LOG_FILE", "wecare.log"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		APIPort:     getenv("APP_PORT", "8080"),
	}, nil
}
