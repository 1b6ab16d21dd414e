package project

import (
	"context"
	"errors"
	"fmt"

	"shopwidget/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *zap.Logger) Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &postgresRepo{pool: pool, logger: logger.Named("project_repo")}
}

func (r *postgresRepo) GetByKey(ctx context.Context, key string) (*domain.Project, error) {
	rows, err := r.pool.Query(ctx, `SELECT id::text AS id, key, name, created_at FROM projects WHERE key = $1`, key)
	if err != nil {
		return nil, fmt.Errorf("query project %q: %w", key, err)
	}
	p, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[domain.Project])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan project %q: %w", key, err)
	}
	return p, nil
}

// Ensure upserts the catalog project by key; an existing project takes the new name.
func (r *postgresRepo) Ensure(ctx context.Context, key, name string) (*domain.Project, error) {
	rows, err := r.pool.Query(ctx, `
INSERT INTO projects (key, name) VALUES ($1, $2)
ON CONFLICT (key) DO UPDATE SET name = EXCLUDED.name
RETURNING id::text AS id, key, name, created_at`, key, name)
	if err != nil {
		return nil, fmt.Errorf("ensure project %q: %w", key, err)
	}
	p, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[domain.Project])
	if err != nil {
		return nil, fmt.Errorf("ensure project %q: %w", key, err)
	}
	r.logger.Debug("project ensured", zap.String("key", p.Key), zap.String("id", p.ID))
	return p, nil
}
