package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"tireshop/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// CSVImporter reads tire catalog CSV exports and inserts/updates products.
// Expected columns: sku, name, description, season, size, type, price,
// currency, image_url. Price is in currency-major units.
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
}

func NewCSVImporter(r io.Reader, repo ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:      csvr,
		productRepo: repo,
	}
}

// Run parses CSV rows and upserts products keyed by SKU.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	var imported int
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		product, err := parseRow(record, index)
		if err != nil {
			return imported, err
		}
		if product == nil {
			continue
		}

		if _, err := i.productRepo.Upsert(ctx, *product); err != nil {
			return imported, fmt.Errorf("upsert product %s: %w", product.SKU, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return index
}

func parseRow(record []string, index map[string]int) (*domain.Product, error) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	sku := field("sku")
	if sku == "" {
		return nil, nil
	}

	priceRaw := field("price")
	price, err := strconv.ParseFloat(priceRaw, 64)
	if err != nil {
		return nil, fmt.Errorf("product %s: parse price %q: %w", sku, priceRaw, err)
	}
	if price <= 0 {
		return nil, fmt.Errorf("product %s: non-positive price %q", sku, priceRaw)
	}

	currency := field("currency")
	if currency == "" {
		currency = "rub"
	}

	return &domain.Product{
		SKU:         sku,
		Name:        field("name"),
		Description: field("description"),
		Season:      field("season"),
		Size:        field("size"),
		Type:        field("type"),
		PriceCents:  int64(math.Round(price * 100)),
		Currency:    strings.ToLower(currency),
		ImageURL:    field("image_url"),
	}, nil
}
