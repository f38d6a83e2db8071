// Package quiz hands out random questions a player has not seen yet.
// The player's history travels with every request; nothing is kept here.
package quiz

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
	"github.com/gokatarajesh/trivia-api/internal/metrics"
	"github.com/gokatarajesh/trivia-api/internal/question"
)

// AllCategories is the category id that selects from every question.
const AllCategories int32 = 0

type questionSource interface {
	List(ctx context.Context) ([]sqlcgen.Question, error)
	ListByCategory(ctx context.Context, categoryID int32) ([]sqlcgen.Question, error)
}

// Recorder receives quiz outcomes. *metrics.Metrics satisfies it.
type Recorder interface {
	QuestionServed(scope string)
	QuizCompleted()
}

// Service picks the next quiz question.
type Service struct {
	questions questionSource
	recorder  Recorder
	pick      func(n int) int
	logger    zerolog.Logger
}

// Option customises a Service.
type Option func(*Service)

// WithPicker replaces the random index source. pick(n) must return a value
// in [0, n).
func WithPicker(pick func(n int) int) Option {
	return func(s *Service) { s.pick = pick }
}

// WithRecorder reports served and completed quizzes.
func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

func NewService(questions questionSource, logger zerolog.Logger, opts ...Option) *Service {
	s := &Service{
		questions: questions,
		pick:      rand.IntN,
		logger:    logger.With().Str("component", "quiz_service").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Round is the outcome of one quiz request. Question is nil once every
// candidate has been asked. PreviousQuestions includes the chosen id.
type Round struct {
	Question          *question.Question
	PreviousQuestions []int32
}

// Next picks a question from categoryID (or every category for
// AllCategories) whose id is not in previous.
func (s *Service) Next(ctx context.Context, categoryID int32, previous []int32) (Round, error) {
	var (
		rows  []sqlcgen.Question
		err   error
		scope = metrics.ScopeCategory
	)
	if categoryID == AllCategories {
		scope = metrics.ScopeAll
		rows, err = s.questions.List(ctx)
	} else {
		rows, err = s.questions.ListByCategory(ctx, categoryID)
	}
	if err != nil {
		return Round{}, fmt.Errorf("load quiz candidates: %w", err)
	}

	history := make([]int32, len(previous), len(previous)+1)
	copy(history, previous)

	candidates := Remaining(rows, previous)
	if len(candidates) == 0 {
		s.logger.Debug().Int32("category", categoryID).Int("asked", len(previous)).Msg("quiz exhausted")
		if s.recorder != nil {
			s.recorder.QuizCompleted()
		}
		return Round{PreviousQuestions: history}, nil
	}

	chosen := question.FromRow(candidates[s.pick(len(candidates))])
	if s.recorder != nil {
		s.recorder.QuestionServed(scope)
	}
	return Round{
		Question:          &chosen,
		PreviousQuestions: append(history, chosen.ID),
	}, nil
}

// Remaining returns the rows whose id is not in asked, in input order.
func Remaining(rows []sqlcgen.Question, asked []int32) []sqlcgen.Question {
	seen := make(map[int32]struct{}, len(asked))
	for _, id := range asked {
		seen[id] = struct{}{}
	}
	out := make([]sqlcgen.Question, 0, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.ID]; !ok {
			out = append(out, row)
		}
	}
	return out
}
