package project

import (
	"context"

	"shopwidget/internal/domain"
)

type Repository interface {
	GetByKey(ctx context.Context, key string) (*domain.Project, error)
	Ensure(ctx context.Context, key, name string) (*domain.Project, error)
}
