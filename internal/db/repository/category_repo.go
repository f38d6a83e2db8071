package repository

import (
	"context"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

type categoryStore interface {
	ListCategories(ctx context.Context) ([]sqlcgen.Category, error)
	GetCategory(ctx context.Context, id int32) (sqlcgen.Category, error)
	GetCategoryByType(ctx context.Context, lower string) (sqlcgen.Category, error)
	CreateCategory(ctx context.Context, type_ string) (sqlcgen.Category, error)
}

// CategoryRepository exposes the read-mostly category table.
type CategoryRepository struct {
	store categoryStore
}

func NewCategoryRepository(store categoryStore) *CategoryRepository {
	return &CategoryRepository{store: store}
}

// List returns every category ordered by its display label.
func (r *CategoryRepository) List(ctx context.Context) ([]sqlcgen.Category, error) {
	return r.store.ListCategories(ctx)
}

// Get fetches a category by id, returning ErrNotFound when absent.
func (r *CategoryRepository) Get(ctx context.Context, id int32) (sqlcgen.Category, error) {
	c, err := r.store.GetCategory(ctx, id)
	return c, notFound(err)
}

// FindByType matches a display label case-insensitively.
func (r *CategoryRepository) FindByType(ctx context.Context, label string) (sqlcgen.Category, error) {
	c, err := r.store.GetCategoryByType(ctx, label)
	return c, notFound(err)
}

// Create inserts a new category label.
func (r *CategoryRepository) Create(ctx context.Context, label string) (sqlcgen.Category, error) {
	return r.store.CreateCategory(ctx, label)
}
