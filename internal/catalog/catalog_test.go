package catalog

import (
	"context"
	"errors"
	"testing"

	"shopwidget/internal/domain"

	"github.com/stretchr/testify/require"
)

type stubProjectRepo struct {
	project *domain.Project
	err     error
	lastKey string
}

func (s *stubProjectRepo) GetByKey(_ context.Context, key string) (*domain.Project, error) {
	s.lastKey = key
	return s.project, s.err
}

func (s *stubProjectRepo) Ensure(_ context.Context, key, name string) (*domain.Project, error) {
	return &domain.Project{ID: "p-" + key, Key: key, Name: name}, nil
}

type stubProductRepo struct {
	products      []domain.Product
	lastProjectID string
}

func (s *stubProductRepo) ListByProject(_ context.Context, projectID string) ([]domain.Product, error) {
	s.lastProjectID = projectID
	return s.products, nil
}

func (s *stubProductRepo) GetByKey(_ context.Context, _, _ string) (*domain.Product, error) {
	return nil, domain.ErrNotFound
}

func (s *stubProductRepo) Upsert(_ context.Context, p domain.Product) (*domain.Product, error) {
	return &p, nil
}

func TestStaticListIsCopied(t *testing.T) {
	src := NewStatic(Demo())
	list, err := src.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, len(Demo()))

	list[0].Name = "changed"
	again, err := src.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, Demo()[0].Name, again[0].Name)
}

func TestPostgresListsProjectProducts(t *testing.T) {
	projects := &stubProjectRepo{project: &domain.Project{ID: "proj-1", Key: "demo"}}
	products := &stubProductRepo{products: []domain.Product{{Key: "a"}, {Key: "b"}}}

	list, err := NewPostgres(projects, products, "demo").List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "demo", projects.lastKey)
	require.Equal(t, "proj-1", products.lastProjectID)
}

func TestPostgresMissingProject(t *testing.T) {
	projects := &stubProjectRepo{err: domain.ErrNotFound}
	_, err := NewPostgres(projects, &stubProductRepo{}, "demo").List(context.Background())
	require.ErrorIs(t, err, domain.ErrNotFound)

	projects.err = errors.New("boom")
	_, err = NewPostgres(projects, &stubProductRepo{}, "demo").List(context.Background())
	require.EqualError(t, err, "boom")
}

func TestToggleIDsPreferKey(t *testing.T) {
	ids := ToggleIDs([]domain.Product{{ID: "1", Key: "a"}, {ID: "2"}})
	require.Equal(t, []string{"a", "2"}, ids)
}

func TestDemoIdentifiersAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, id := range ToggleIDs(Demo()) {
		require.False(t, seen[id], id)
		seen[id] = true
	}
}
