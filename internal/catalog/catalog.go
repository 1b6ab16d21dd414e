// Package catalog provides the product listing that hosts the widget's controls.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"shopwidget/internal/domain"
	"shopwidget/internal/repository/product"
	"shopwidget/internal/repository/project"
)

// Source lists the products shown on the page, in display order.
type Source interface {
	List(ctx context.Context) ([]domain.Product, error)
}

// Static serves a fixed in-memory listing.
type Static struct {
	products []domain.Product
}

func NewStatic(products []domain.Product) *Static {
	return &Static{products: append([]domain.Product(nil), products...)}
}

func (s *Static) List(_ context.Context) ([]domain.Product, error) {
	return append([]domain.Product(nil), s.products...), nil
}

// Postgres serves the listing of one project from the products table.
type Postgres struct {
	projects   project.Repository
	products   product.Repository
	projectKey string
}

func NewPostgres(projects project.Repository, products product.Repository, projectKey string) *Postgres {
	return &Postgres{projects: projects, products: products, projectKey: projectKey}
}

func (p *Postgres) List(ctx context.Context) ([]domain.Product, error) {
	proj, err := p.projects.GetByKey(ctx, p.projectKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("catalog project %q: %w", p.projectKey, err)
		}
		return nil, err
	}
	return p.products.ListByProject(ctx, proj.ID)
}

// ToggleIDs returns the identifiers of the wishlist controls rendered for products.
func ToggleIDs(products []domain.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, ItemID(p))
	}
	return ids
}

// ItemID is the identifier a product carries into the cart and wishlist.
func ItemID(p domain.Product) string {
	if p.Key != "" {
		return p.Key
	}
	return p.ID
}
