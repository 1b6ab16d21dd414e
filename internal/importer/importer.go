package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"shopwidget/internal/domain"
	"shopwidget/internal/money"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// CSVImporter loads catalog rows into a project.
//
// Expected header: key,sku,name,description,price,currency,image. Extra columns
// are ignored, description and image may be empty, price is a decimal amount.
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
	projectID   string
	defaultCur  string
}

func NewCSVImporter(r io.Reader, repo ProductWriter, projectID, defaultCurrency string) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	csvr.TrimLeadingSpace = true
	return &CSVImporter{
		reader:      csvr,
		productRepo: repo,
		projectID:   projectID,
		defaultCur:  strings.ToUpper(strings.TrimSpace(defaultCurrency)),
	}
}

var requiredColumns = []string{"key", "name", "price"}

// Run upserts every data row and returns the number of products written.
// It stops at the first invalid row; rows before it stay imported.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return 0, fmt.Errorf("missing column %q", col)
		}
	}

	imported := 0
	line := 1
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return imported, fmt.Errorf("read row %d: %w", line, err)
		}
		if blank(record) {
			continue
		}

		p, err := i.parseRow(record, index)
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", line, err)
		}
		if _, err := i.productRepo.Upsert(ctx, p); err != nil {
			return imported, fmt.Errorf("upsert product %q: %w", p.Key, err)
		}
		imported++
	}
	return imported, nil
}

func (i *CSVImporter) parseRow(record []string, index map[string]int) (domain.Product, error) {
	p := domain.Product{
		ProjectID:   i.projectID,
		Key:         pick(record, index, "key"),
		SKU:         pick(record, index, "sku"),
		Name:        pick(record, index, "name"),
		Description: pick(record, index, "description"),
		Currency:    strings.ToUpper(pick(record, index, "currency")),
		ImageURL:    pick(record, index, "image"),
	}
	if p.Key == "" || p.Name == "" {
		return domain.Product{}, fmt.Errorf("key and name required (key=%q)", p.Key)
	}
	cents, err := money.ParseCents(pick(record, index, "price"))
	if err != nil {
		return domain.Product{}, fmt.Errorf("product %q: %w", p.Key, err)
	}
	p.PriceCents = cents
	if p.SKU == "" {
		p.SKU = strings.ToUpper(p.Key)
	}
	if p.Currency == "" {
		p.Currency = i.defaultCur
	}
	return p, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
