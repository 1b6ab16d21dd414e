package seed

import (
	"context"
	"errors"
	"testing"

	"shopwidget/internal/catalog"
	"shopwidget/internal/domain"
)

type stubProjects struct {
	err error
}

func (s *stubProjects) Ensure(_ context.Context, key, name string) (*domain.Project, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Project{ID: "proj-" + key, Key: key, Name: name}, nil
}

type stubProducts struct {
	items []domain.Product
}

func (s *stubProducts) Upsert(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.items = append(s.items, p)
	return &p, nil
}

func TestApplyWritesDemoCatalog(t *testing.T) {
	products := &stubProducts{}
	n, err := Apply(context.Background(), &stubProjects{}, products, "demo")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if n != len(catalog.Demo()) || len(products.items) != n {
		t.Fatalf("expected %d products, got %d", len(catalog.Demo()), n)
	}
	for _, p := range products.items {
		if p.ProjectID != "proj-demo" {
			t.Fatalf("expected project id on %s, got %q", p.Key, p.ProjectID)
		}
	}
}

func TestApplyProjectError(t *testing.T) {
	_, err := Apply(context.Background(), &stubProjects{err: errors.New("boom")}, &stubProducts{}, "demo")
	if err == nil || err.Error() != "ensure project: boom" {
		t.Fatalf("expected wrapped project error, got %v", err)
	}
}
