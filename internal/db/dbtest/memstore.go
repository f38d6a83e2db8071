// Package dbtest provides an in-memory stand-in for the sqlc query set so
// services and handlers can be exercised without a Postgres instance.
package dbtest

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

// Store mirrors the query methods of sqlcgen.Queries over two slices.
type Store struct {
	mu         sync.Mutex
	categories []sqlcgen.Category
	questions  []sqlcgen.Question
	nextCat    int32
	nextQ      int32

	// Err, when set, is returned by every method.
	Err error
}

// NewStore returns an empty store. Ids start at 1.
func NewStore() *Store {
	return &Store{nextCat: 1, nextQ: 1}
}

// AddCategory seeds a category with an explicit id.
func (s *Store) AddCategory(id int32, label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append(s.categories, sqlcgen.Category{ID: id, Type: label})
	if id >= s.nextCat {
		s.nextCat = id + 1
	}
}

// AddQuestion seeds a question and returns its assigned id.
func (s *Store) AddQuestion(question, answer string, category, difficulty int32) int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := sqlcgen.Question{ID: s.nextQ, Question: question, Answer: answer, Category: category, Difficulty: difficulty}
	s.nextQ++
	s.questions = append(s.questions, q)
	return q.ID
}

// Questions returns a copy of every stored question in insertion order.
func (s *Store) Questions() []sqlcgen.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]sqlcgen.Question(nil), s.questions...)
}

func (s *Store) ListCategories(ctx context.Context) ([]sqlcgen.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := append([]sqlcgen.Category(nil), s.categories...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Type != out[j].Type {
			return out[i].Type < out[j].Type
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) GetCategory(ctx context.Context, id int32) (sqlcgen.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return sqlcgen.Category{}, s.Err
	}
	for _, c := range s.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return sqlcgen.Category{}, pgx.ErrNoRows
}

func (s *Store) GetCategoryByType(ctx context.Context, lower string) (sqlcgen.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return sqlcgen.Category{}, s.Err
	}
	for _, c := range s.categories {
		if strings.EqualFold(c.Type, lower) {
			return c, nil
		}
	}
	return sqlcgen.Category{}, pgx.ErrNoRows
}

func (s *Store) CreateCategory(ctx context.Context, type_ string) (sqlcgen.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return sqlcgen.Category{}, s.Err
	}
	c := sqlcgen.Category{ID: s.nextCat, Type: type_}
	s.nextCat++
	s.categories = append(s.categories, c)
	return c, nil
}

func (s *Store) ListQuestions(ctx context.Context) ([]sqlcgen.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := append([]sqlcgen.Question(nil), s.questions...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) ListQuestionsByCategory(ctx context.Context, category int32) ([]sqlcgen.Question, error) {
	return s.filter(func(q sqlcgen.Question) bool { return q.Category == category })
}

func (s *Store) SearchQuestions(ctx context.Context, pattern string) ([]sqlcgen.Question, error) {
	re, err := ilike(pattern)
	if err != nil {
		return nil, err
	}
	return s.filter(func(q sqlcgen.Question) bool { return re.MatchString(q.Question) })
}

func (s *Store) CreateQuestion(ctx context.Context, arg sqlcgen.CreateQuestionParams) (sqlcgen.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return sqlcgen.Question{}, s.Err
	}
	q := sqlcgen.Question{
		ID:         s.nextQ,
		Question:   arg.Question,
		Answer:     arg.Answer,
		Category:   arg.Category,
		Difficulty: arg.Difficulty,
	}
	s.nextQ++
	s.questions = append(s.questions, q)
	return q, nil
}

func (s *Store) DeleteQuestion(ctx context.Context, id int32) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	for i, q := range s.questions {
		if q.ID == id {
			s.questions = append(s.questions[:i], s.questions[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// filter returns matching questions ordered by id.
func (s *Store) filter(keep func(sqlcgen.Question) bool) ([]sqlcgen.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []sqlcgen.Question
	for _, q := range s.questions {
		if keep(q) {
			out = append(out, q)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ilike compiles a Postgres ILIKE pattern using backslash as the escape.
func ilike(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString(`(?is)^`)
	escaped := false
	for _, r := range pattern {
		switch {
		case escaped:
			b.WriteString(regexp.QuoteMeta(string(r)))
			escaped = false
		case r == '\\':
			escaped = true
		case r == '%':
			b.WriteString(`.*`)
		case r == '_':
			b.WriteString(`.`)
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString(`$`)
	return regexp.Compile(b.String())
}
