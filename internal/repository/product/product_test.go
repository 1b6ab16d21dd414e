package product

import (
	"context"
	"errors"
	"testing"

	"shopwidget/internal/domain"
	"shopwidget/internal/testutil"
)

func TestPostgres_UpsertListAndGet(t *testing.T) {
	ctx := context.Background()
	pool := testutil.Pool(ctx, t)
	projectID := testutil.InsertProject(ctx, t, pool, "proj")

	repo := NewPostgres(pool, nil)

	p, err := repo.Upsert(ctx, domain.Product{
		ProjectID:  projectID,
		Key:        "p1",
		SKU:        "SKU1",
		Name:       "Prod 1",
		PriceCents: 1000,
		Currency:   "EUR",
		ImageURL:   "https://example.com/p1.jpg",
	})
	if err != nil {
		t.Fatalf("Upsert insert: %v", err)
	}
	if p.ID == "" {
		t.Fatalf("expected ID set")
	}

	updated, err := repo.Upsert(ctx, domain.Product{
		ProjectID:   projectID,
		Key:         "p1",
		SKU:         "SKU-NEW",
		Name:        "Prod 1 updated",
		Description: "new desc",
		PriceCents:  550,
		Currency:    "EUR",
	})
	if err != nil {
		t.Fatalf("Upsert update: %v", err)
	}
	if updated.ID != p.ID {
		t.Fatalf("expected same ID after update")
	}

	list, err := repo.ListByProject(ctx, projectID)
	if err != nil {
		t.Fatalf("ListByProject: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 product, got %d", len(list))
	}
	if list[0].SKU != "SKU-NEW" || list[0].PriceCents != 550 || list[0].ImageURL != "" {
		t.Fatalf("unexpected product %+v", list[0])
	}

	got, err := repo.GetByKey(ctx, projectID, "p1")
	if err != nil {
		t.Fatalf("GetByKey: %v", err)
	}
	if got.ID != p.ID || got.Description != "new desc" {
		t.Fatalf("unexpected product %+v", got)
	}
}

func TestPostgres_GetByKeyNotFound(t *testing.T) {
	ctx := context.Background()
	pool := testutil.Pool(ctx, t)
	projectID := testutil.InsertProject(ctx, t, pool, "proj")

	_, err := NewPostgres(pool, nil).GetByKey(ctx, projectID, "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
