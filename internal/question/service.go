package question

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

// ErrInvalidQuestion is returned when a new question is missing content.
var ErrInvalidQuestion = errors.New("question and answer are required")

// QuestionRepository is the storage the service reads and writes questions through.
type QuestionRepository interface {
	List(ctx context.Context) ([]sqlcgen.Question, error)
	ListByCategory(ctx context.Context, categoryID int32) ([]sqlcgen.Question, error)
	Search(ctx context.Context, term string) ([]sqlcgen.Question, error)
	Insert(ctx context.Context, params sqlcgen.CreateQuestionParams) (sqlcgen.Question, error)
	Delete(ctx context.Context, id int32) error
}

// CategoryRepository is the read side of the category table.
type CategoryRepository interface {
	List(ctx context.Context) ([]sqlcgen.Category, error)
	Get(ctx context.Context, id int32) (sqlcgen.Category, error)
}

// Service implements the question listing, search and mutation use cases.
type Service struct {
	questions  QuestionRepository
	categories CategoryRepository
	logger     zerolog.Logger
}

func NewService(questions QuestionRepository, categories CategoryRepository, logger zerolog.Logger) *Service {
	return &Service{
		questions:  questions,
		categories: categories,
		logger:     logger.With().Str("component", "question_service").Logger(),
	}
}

// Categories returns every category keyed by id.
func (s *Service) Categories(ctx context.Context) (CategoryMap, error) {
	rows, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	out := make(CategoryMap, len(rows))
	for _, row := range rows {
		out[row.ID] = row.Type
	}
	return out, nil
}

// ListQuestions returns one page of all questions ordered by category.
func (s *Service) ListQuestions(ctx context.Context, page int) (Page, error) {
	rows, err := s.questions.List(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("list questions: %w", err)
	}
	return paged(rows, page), nil
}

// ListByCategory returns one page of a category's questions along with the
// category itself. A missing category surfaces repository.ErrNotFound.
func (s *Service) ListByCategory(ctx context.Context, categoryID int32, page int) (Category, Page, error) {
	cat, err := s.categories.Get(ctx, categoryID)
	if err != nil {
		return Category{}, Page{}, fmt.Errorf("get category %d: %w", categoryID, err)
	}
	rows, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		return Category{}, Page{}, fmt.Errorf("list questions for category %d: %w", categoryID, err)
	}
	return Category{ID: cat.ID, Type: cat.Type}, paged(rows, page), nil
}

// SearchResult is a page of matches. CurrentCategory is the category of the
// first question on the page, nil when the page is empty.
type SearchResult struct {
	Page
	CurrentCategory *int32
}

// Search matches term case-insensitively anywhere in the question text.
func (s *Service) Search(ctx context.Context, term string, page int) (SearchResult, error) {
	rows, err := s.questions.Search(ctx, term)
	if err != nil {
		return SearchResult{}, fmt.Errorf("search questions: %w", err)
	}
	res := SearchResult{Page: paged(rows, page)}
	if len(res.Questions) > 0 {
		first := res.Questions[0].Category
		res.CurrentCategory = &first
	}
	return res, nil
}

// Create stores a new question. The category id is not checked against the
// category table.
func (s *Service) Create(ctx context.Context, in NewQuestion) (Question, error) {
	if strings.TrimSpace(in.Question) == "" || strings.TrimSpace(in.Answer) == "" {
		return Question{}, ErrInvalidQuestion
	}
	row, err := s.questions.Insert(ctx, sqlcgen.CreateQuestionParams{
		Question:   in.Question,
		Answer:     in.Answer,
		Category:   in.Category,
		Difficulty: in.Difficulty,
	})
	if err != nil {
		return Question{}, fmt.Errorf("insert question: %w", err)
	}
	s.logger.Info().Int32("question_id", row.ID).Int32("category", row.Category).Msg("question created")
	return FromRow(row), nil
}

// Delete removes a question. A missing id surfaces repository.ErrNotFound.
func (s *Service) Delete(ctx context.Context, id int32) error {
	if err := s.questions.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	s.logger.Info().Int32("question_id", id).Msg("question deleted")
	return nil
}

func paged(rows []sqlcgen.Question, page int) Page {
	return Page{
		Questions: FromRows(Paginate(rows, page)),
		Total:     len(rows),
	}
}
