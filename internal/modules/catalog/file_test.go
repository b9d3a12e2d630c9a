package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertSameProducts(t *testing.T, want, got []*Product) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Name, got[i].Name)
		assert.Equal(t, want[i].Brand, got[i].Brand)
		assert.Equal(t, want[i].Stock, got[i].Stock)
		assert.True(t, want[i].CostPrice.Equal(got[i].CostPrice),
			"cost price of %d: want %s, got %s", want[i].ID, want[i].CostPrice, got[i].CostPrice)
		assert.Equal(t, want[i].Origin, got[i].Origin)
	}
}

func TestLoadSeedsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.txt")
	repo := NewFileRepository(path)

	products, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Vitamin C Serum", products[0].Name)
	assert.Equal(t, 200, products[0].Stock)
	assert.True(t, products[0].CostPrice.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, "Switzerland", products[1].Origin)
	assert.Equal(t, 3, products[2].ID)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1, Vitamin C Serum, Garnier, 200, 1000, France\n"+
		"2, Skin Cleanser, Cetaphil, 100, 280, Switzerland\n"+
		"3, Sunscreen, Aqualogica, 200, 700, India", string(data))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.txt")
	repo := NewFileRepository(path)
	ctx := context.Background()

	want := []*Product{
		{ID: 7, Name: "Night Cream", Brand: "Olay", Stock: 0, CostPrice: decimal.RequireFromString("12.5"), Origin: "USA"},
		{ID: 2, Name: "Toner", Brand: "Klairs", Stock: 41, CostPrice: decimal.NewFromInt(1000), Origin: "Korea"},
		{ID: 9, Name: "Lip Balm", Brand: "Nivea", Stock: 3, CostPrice: decimal.RequireFromString("0.05"), Origin: "Germany"},
	}
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assertSameProducts(t, want, got)
}

func TestSaveFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.txt")
	repo := NewFileRepository(path)

	err := repo.Save(context.Background(), []*Product{
		{ID: 1, Name: "Vitamin C Serum", Brand: "Garnier", Stock: 192, CostPrice: decimal.NewFromInt(1000), Origin: "France"},
		{ID: 4, Name: "Face Wash", Brand: "Himalaya", Stock: 50, CostPrice: decimal.RequireFromString("199.99"), Origin: "India"},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1, Vitamin C Serum, Garnier, 192, 1000.0, France\n"+
		"4, Face Wash, Himalaya, 50, 199.99, India\n", string(data))
}

func TestLoadSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n1, Toner, Klairs, 5, 10.0, Korea\n   \n\n2, Mask, Innisfree, 6, 3, Korea  \n"), 0o644))

	products, err := NewFileRepository(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Korea", products[1].Origin)
}

func TestLoadRejectsMalformedLines(t *testing.T) {
	cases := map[string]string{
		"too few fields":  "1, Toner, Klairs, 5, 10.0\n",
		"too many fields": "1, Toner, Cream, Klairs, 5, 10.0, Korea\n",
		"bad id":          "one, Toner, Klairs, 5, 10.0, Korea\n",
		"bad stock":       "1, Toner, Klairs, five, 10.0, Korea\n",
		"bad cost":        "1, Toner, Klairs, 5, ten, Korea\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "products.txt")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			_, err := NewFileRepository(path).Load(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedLine)
			assert.Contains(t, err.Error(), ":1:")
		})
	}
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "1000.0", formatCost(decimal.NewFromInt(1000)))
	assert.Equal(t, "0.0", formatCost(decimal.Zero))
	assert.Equal(t, "12.5", formatCost(decimal.RequireFromString("12.50")))
	assert.Equal(t, "280.0", formatCost(decimal.RequireFromString("280.0")))
}
