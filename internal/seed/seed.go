package seed

import (
	"context"
	"fmt"

	"shopwidget/internal/catalog"
	"shopwidget/internal/domain"
)

type projectEnsurer interface {
	Ensure(ctx context.Context, key, name string) (*domain.Project, error)
}

type productWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// Apply writes the demo catalog into the given project. It is idempotent:
// products are upserted by key.
func Apply(ctx context.Context, projects projectEnsurer, products productWriter, projectKey string) (int, error) {
	proj, err := projects.Ensure(ctx, projectKey, "Demo catalog")
	if err != nil {
		return 0, fmt.Errorf("ensure project: %w", err)
	}

	n := 0
	for _, p := range catalog.Demo() {
		p.ProjectID = proj.ID
		if _, err := products.Upsert(ctx, p); err != nil {
			return n, fmt.Errorf("upsert product %s: %w", p.Key, err)
		}
		n++
	}
	return n, nil
}
