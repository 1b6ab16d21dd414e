package product

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
	return &postgresRepo{pool: pool, logger: logger.Named("product_repo")}
}

const productColumns = `id::text, project_id::text, key, sku, name, COALESCE(description, ''), price_cents, currency, COALESCE(image_url, ''), created_at`

func scanProduct(row pgx.Row, p *domain.Product) error {
	return row.Scan(&p.ID, &p.ProjectID, &p.Key, &p.SKU, &p.Name, &p.Description, &p.PriceCents, &p.Currency, &p.ImageURL, &p.CreatedAt)
}

// ListByProject returns the catalog in listing order (oldest first, then key).
func (r *postgresRepo) ListByProject(ctx context.Context, projectID string) ([]domain.Product, error) {
	q := `
SELECT ` + productColumns + `
FROM products
WHERE project_id = $1
ORDER BY created_at ASC, key ASC
`
	rows, err := r.pool.Query(ctx, q, projectID)
	if err != nil {
		r.logger.Error("list failed", zap.String("project_id", projectID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("list rows failed", zap.String("project_id", projectID), zap.Error(err))
		return nil, err
	}
	r.logger.Debug("listed products", zap.String("project_id", projectID), zap.Int("count", len(result)))
	return result, nil
}

func (r *postgresRepo) GetByKey(ctx context.Context, projectID, key string) (*domain.Product, error) {
	q := `
SELECT ` + productColumns + `
FROM products
WHERE project_id = $1 AND key = $2
`
	var p domain.Product
	if err := scanProduct(r.pool.QueryRow(ctx, q, projectID, key), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error("get failed", zap.String("project_id", projectID), zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, product domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (id, project_id, key, sku, name, description, price_cents, currency, image_url)
VALUES (COALESCE(NULLIF($1, '')::uuid, gen_random_uuid()), $2, $3, $4, $5, NULLIF($6, ''), $7, $8, NULLIF($9, ''))
ON CONFLICT (project_id, key) DO UPDATE SET
    sku = EXCLUDED.sku,
    name = EXCLUDED.name,
    description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents,
    currency = EXCLUDED.currency,
    image_url = EXCLUDED.image_url
RETURNING id::text, created_at
`
	res := product
	err := r.pool.QueryRow(ctx, q,
		product.ID,
		product.ProjectID,
		product.Key,
		product.SKU,
		product.Name,
		product.Description,
		product.PriceCents,
		product.Currency,
		product.ImageURL,
	).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		r.logger.Error("upsert failed", zap.String("key", product.Key), zap.String("project_id", product.ProjectID), zap.Error(err))
		return nil, err
	}
	if product.ID != "" && res.ID != product.ID {
		return nil, fmt.Errorf("product repo: id mismatch for key=%s project_id=%s existing_id=%s import_id=%s", product.Key, product.ProjectID, res.ID, product.ID)
	}
	r.logger.Debug("upserted product", zap.String("key", res.Key), zap.String("id", res.ID))
	return &res, nil
}
