package question

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-api/internal/db/repository"
)

func TestServiceCategories(t *testing.T) {
	svc, _ := newFixture(t, 0)

	cats, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Len(t, cats, 6)
	assert.Equal(t, "Science", cats[1])
	assert.Equal(t, "Sports", cats[6])
}

func TestServiceListQuestions(t *testing.T) {
	svc, _ := newFixture(t, 23)
	ctx := context.Background()

	first, err := svc.ListQuestions(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 23, first.Total)
	assert.Len(t, first.Questions, 10)
	for i := 1; i < len(first.Questions); i++ {
		assert.LessOrEqual(t, first.Questions[i-1].Category, first.Questions[i].Category, "ordered by category")
	}

	last, err := svc.ListQuestions(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, last.Questions, 3)

	beyond, err := svc.ListQuestions(ctx, 4)
	require.NoError(t, err)
	assert.NotNil(t, beyond.Questions)
	assert.Empty(t, beyond.Questions)
	assert.Equal(t, 23, beyond.Total)
}

func TestServiceListByCategory(t *testing.T) {
	svc, _ := newFixture(t, 9)
	ctx := context.Background()

	cat, page, err := svc.ListByCategory(ctx, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, "Art", cat.Type)
	assert.Equal(t, 3, page.Total)
	for _, q := range page.Questions {
		assert.Equal(t, int32(2), q.Category)
	}

	_, _, err = svc.ListByCategory(ctx, 1000, 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestServiceSearchCaseInsensitive(t *testing.T) {
	svc, store := newFixture(t, 0)
	store.AddQuestion("Who was Tom Hanks?", "an actor", 5, 1)
	store.AddQuestion("What is atomic number 1?", "hydrogen", 1, 2)
	store.AddQuestion("Is a TOMATO a fruit?", "yes", 1, 1)
	store.AddQuestion("Capital of France?", "Paris", 3, 1)

	res, err := svc.Search(context.Background(), "tom", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	require.Len(t, res.Questions, 3)
	require.NotNil(t, res.CurrentCategory)
	assert.Equal(t, int32(5), *res.CurrentCategory, "first match on page")
}

func TestServiceSearchEmptyPage(t *testing.T) {
	svc, store := newFixture(t, 0)
	store.AddQuestion("Who was Tom Hanks?", "an actor", 5, 1)

	res, err := svc.Search(context.Background(), "tom", 2)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Empty(t, res.Questions)
	assert.Nil(t, res.CurrentCategory)

	res, err = svc.Search(context.Background(), "nothing like this", 1)
	require.NoError(t, err)
	assert.Zero(t, res.Total)
	assert.Nil(t, res.CurrentCategory)
}

func TestServiceSearchLiteralWildcards(t *testing.T) {
	svc, store := newFixture(t, 0)
	store.AddQuestion("Is 100% of the moon visible?", "no", 1, 1)
	store.AddQuestion("Is 1000 a big number?", "yes", 1, 1)

	res, err := svc.Search(context.Background(), "100%", 1)
	require.NoError(t, err)
	require.Len(t, res.Questions, 1)
	assert.Equal(t, "Is 100% of the moon visible?", res.Questions[0].Question)
}

func TestServiceCreateIncrementsTotal(t *testing.T) {
	svc, _ := newFixture(t, 5)
	ctx := context.Background()

	q, err := svc.Create(ctx, NewQuestion{Question: "2+2?", Answer: "4", Category: 1, Difficulty: 1})
	require.NoError(t, err)
	assert.NotZero(t, q.ID)

	page, err := svc.ListQuestions(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 6, page.Total)

	found, err := svc.Search(ctx, "2+2", 1)
	require.NoError(t, err)
	require.Len(t, found.Questions, 1)
	assert.Equal(t, q, found.Questions[0])
}

func TestServiceCreateRejectsBlank(t *testing.T) {
	svc, store := newFixture(t, 0)

	_, err := svc.Create(context.Background(), NewQuestion{Question: "  ", Answer: "4", Category: 1, Difficulty: 1})
	assert.ErrorIs(t, err, ErrInvalidQuestion)
	assert.Empty(t, store.Questions())
}

func TestServiceDelete(t *testing.T) {
	svc, store := newFixture(t, 4)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, 2))
	page, err := svc.ListQuestions(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	for _, q := range page.Questions {
		assert.NotEqual(t, int32(2), q.ID)
	}

	assert.ErrorIs(t, svc.Delete(ctx, 2), repository.ErrNotFound)

	store.Err = errors.New("connection refused")
	err = svc.Delete(ctx, 1)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
}
