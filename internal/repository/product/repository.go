package product

import (
	"context"

	"shopwidget/internal/domain"
)

type Repository interface {
	ListByProject(ctx context.Context, projectID string) ([]domain.Product, error)
	GetByKey(ctx context.Context, projectID, key string) (*domain.Product, error)
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}
