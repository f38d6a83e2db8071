package question

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
	"github.com/gokatarajesh/trivia-api/internal/question/external"
)

type opentdbProvider interface {
	Fetch(ctx context.Context, r external.OpenTDBRequest) ([]external.OpenTDBQuestion, error)
}

type categoryWriter interface {
	FindByType(ctx context.Context, label string) (sqlcgen.Category, error)
	Create(ctx context.Context, label string) (sqlcgen.Category, error)
}

type questionWriter interface {
	Insert(ctx context.Context, params sqlcgen.CreateQuestionParams) (sqlcgen.Question, error)
}

// ImportResult summarises one import run.
type ImportResult struct {
	Imported          int
	CategoriesCreated int
}

// Importer copies questions from the Open Trivia DB into local storage,
// filing each under a local category derived from the upstream name.
type Importer struct {
	source     opentdbProvider
	categories categoryWriter
	questions  questionWriter
	logger     zerolog.Logger

	// pause between batches; the upstream allows one call per five seconds.
	pause time.Duration
	known map[string]int32
}

// ImporterOption customises an Importer.
type ImporterOption func(*Importer)

// WithBatchPause overrides the wait between upstream calls.
func WithBatchPause(d time.Duration) ImporterOption {
	return func(im *Importer) { im.pause = d }
}

func NewImporter(source opentdbProvider, categories categoryWriter, questions questionWriter, logger zerolog.Logger, opts ...ImporterOption) *Importer {
	im := &Importer{
		source:     source,
		categories: categories,
		questions:  questions,
		logger:     logger.With().Str("component", "opentdb_importer").Logger(),
		pause:      5 * time.Second,
		known:      map[string]int32{},
	}
	for _, opt := range opts {
		opt(im)
	}
	return im
}

// Import fetches amount questions in batches and stores them. A batch error
// stops the run; questions already stored are kept and counted.
func (im *Importer) Import(ctx context.Context, amount int, difficulty string) (ImportResult, error) {
	var res ImportResult
	for remaining := amount; remaining > 0; {
		if res.Imported > 0 {
			if err := im.wait(ctx); err != nil {
				return res, err
			}
		}
		batch := min(remaining, external.MaxBatch)
		items, err := im.source.Fetch(ctx, external.OpenTDBRequest{Amount: batch, Difficulty: difficulty})
		if err != nil {
			return res, fmt.Errorf("fetch batch of %d: %w", batch, err)
		}
		for _, item := range items {
			created, err := im.store(ctx, item)
			if err != nil {
				return res, err
			}
			if created {
				res.CategoriesCreated++
			}
			res.Imported++
		}
		im.logger.Debug().Int("batch", len(items)).Int("imported", res.Imported).Msg("batch stored")
		remaining -= batch
	}
	im.logger.Info().
		Int("imported", res.Imported).
		Int("categories_created", res.CategoriesCreated).
		Msg("import finished")
	return res, nil
}

func (im *Importer) wait(ctx context.Context) error {
	if im.pause <= 0 {
		return nil
	}
	t := time.NewTimer(im.pause)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (im *Importer) store(ctx context.Context, item external.OpenTDBQuestion) (bool, error) {
	catID, created, err := im.resolveCategory(ctx, LocalCategory(item.Category))
	if err != nil {
		return false, err
	}
	_, err = im.questions.Insert(ctx, sqlcgen.CreateQuestionParams{
		Question:   html.UnescapeString(item.Question),
		Answer:     html.UnescapeString(item.CorrectAnswer),
		Category:   catID,
		Difficulty: DifficultyScore(item.Difficulty),
	})
	if err != nil {
		return false, fmt.Errorf("insert imported question: %w", err)
	}
	return created, nil
}

func (im *Importer) resolveCategory(ctx context.Context, label string) (int32, bool, error) {
	key := strings.ToLower(label)
	if id, ok := im.known[key]; ok {
		return id, false, nil
	}
	cat, err := im.categories.FindByType(ctx, label)
	created := false
	if errors.Is(err, repository.ErrNotFound) {
		cat, err = im.categories.Create(ctx, label)
		created = true
	}
	if err != nil {
		return 0, false, fmt.Errorf("resolve category %q: %w", label, err)
	}
	if created {
		im.logger.Info().Str("category", label).Int32("id", cat.ID).Msg("category created")
	}
	im.known[key] = cat.ID
	return cat.ID, created, nil
}

// LocalCategory maps an upstream category name onto a local label:
// "Entertainment: Film" becomes "Entertainment" and "Science & Nature"
// becomes "Science".
func LocalCategory(upstream string) string {
	name := html.UnescapeString(upstream)
	if i := strings.Index(name, ":"); i >= 0 {
		name = name[:i]
	}
	if i := strings.Index(name, " & "); i >= 0 {
		name = name[:i]
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "General Knowledge"
	}
	return name
}

// DifficultyScore maps upstream difficulty names onto the 1-5 scale.
func DifficultyScore(level string) int32 {
	switch strings.ToLower(level) {
	case "easy":
		return 1
	case "hard":
		return 5
	default:
		return 3
	}
}
