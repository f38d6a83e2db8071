package question

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/db/dbtest"
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

// newFixture seeds six categories and n questions spread round-robin over
// categories 1-3.
func newFixture(t *testing.T, n int) (*Service, *dbtest.Store) {
	t.Helper()
	store := dbtest.NewStore()
	for i, label := range []string{"Science", "Art", "Geography", "History", "Entertainment", "Sports"} {
		store.AddCategory(int32(i+1), label)
	}
	for i := 0; i < n; i++ {
		store.AddQuestion(fmt.Sprintf("Question number %d?", i+1), fmt.Sprintf("Answer %d", i+1), int32(i%3+1), int32(i%5+1))
	}
	svc := NewService(repository.NewQuestionRepository(store), repository.NewCategoryRepository(store), zerolog.Nop())
	return svc, store
}

type emptyCategories struct{}

func (emptyCategories) List(context.Context) ([]sqlcgen.Category, error) { return nil, nil }

func (emptyCategories) Get(context.Context, int32) (sqlcgen.Category, error) {
	return sqlcgen.Category{}, repository.ErrNotFound
}
