package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"WECARE_CATALOG_FILE", "WECARE_INVOICE_DIR", "WECARE_LOG_FILE", "LOG_LEVEL", "APP_PORT"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	c, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "products.txt", c.CatalogFile)
	assert.Equal(t, "invoices", c.InvoiceDir)
	assert.Equal(t, "wecare.log", c.LogFile)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "8080", c.APIPort)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("WECARE_CATALOG_FILE", "/tmp/catalog.txt")
	t.Setenv("APP_PORT", "9090")
	c, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/catalog.txt", c.CatalogFile)
	assert.Equal(t, "9090", c.APIPort)
}

func TestLoadDotEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("WECARE_INVOICE_DIR=receipts\nLOG_LEVEL=debug\n"), 0o644))
	t.Cleanup(func() {
		_ = os.Unsetenv("WECARE_INVOICE_DIR")
		_ = os.Unsetenv("LOG_LEVEL")
	})

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "receipts", c.InvoiceDir)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "products.txt", c.CatalogFile)
}
