package catalog

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// seedCatalog is written when the catalog file does not exist yet.
var seedCatalog = []string{
	"1, Vitamin C Serum, Garnier, 200, 1000, France",
	"2, Skin Cleanser, Cetaphil, 100, 280, Switzerland",
	"3, Sunscreen, Aqualogica, 200, 700, India",
}

type fileRepository struct{ path string }

// NewFileRepository stores the catalog as one "id, name, brand, stock,
// cost_price, origin" line per product. Text fields must not contain ", ".
func NewFileRepository(path string) Repository { return &fileRepository{path: path} }

func (r *fileRepository) Load(ctx context.Context) ([]*Product, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(r.path, []byte(strings.Join(seedCatalog, "\n")), 0o644); err != nil {
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
		data, err = os.ReadFile(r.path)
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var products []*Product
	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		p, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", r.path, lineNo, err)
		}
		products = append(products, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return products, nil
}

func (r *fileRepository) Save(ctx context.Context, products []*Product) error {
	var buf bytes.Buffer
	for _, p := range products {
		buf.WriteString(formatLine(p))
		buf.WriteByte('\n')
	}
	if err := os.WriteFile(r.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}

func parseLine(line string) (*Product, error) {
	fields := strings.Split(line, FieldSeparator)
	if len(fields) != 6 {
		return nil, fmt.Errorf("%w: want 6 fields, got %d", ErrMalformedLine, len(fields))
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%w: id %q", ErrMalformedLine, fields[0])
	}
	stock, err := strconv.Atoi(fields[3])
	if err != nil {
		return nil, fmt.Errorf("%w: stock %q", ErrMalformedLine, fields[3])
	}
	cost, err := decimal.NewFromString(fields[4])
	if err != nil {
		return nil, fmt.Errorf("%w: cost price %q", ErrMalformedLine, fields[4])
	}
	return &Product{
		ID:        id,
		Name:      fields[1],
		Brand:     fields[2],
		Stock:     stock,
		CostPrice: cost,
		Origin:    fields[5],
	}, nil
}

func formatLine(p *Product) string {
	return strings.Join([]string{
		strconv.Itoa(p.ID),
		p.Name,
		p.Brand,
		strconv.Itoa(p.Stock),
		formatCost(p.CostPrice),
		p.Origin,
	}, FieldSeparator)
}

// formatCost always keeps a decimal point, so whole prices read "1000.0".
func formatCost(d decimal.Decimal) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		s = d.StringFixed(1)
	}
	return s
}
