package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

// QuestionsPerPage is the fixed page size for every paginated listing.
const QuestionsPerPage = 10

// Question is the JSON shape of a stored question.
type Question struct {
	ID         int32  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int32  `json:"category"`
	Difficulty int32  `json:"difficulty"`
}

// FromRow converts a database row.
func FromRow(row sqlcgen.Question) Question {
	return Question{
		ID:         row.ID,
		Question:   row.Question,
		Answer:     row.Answer,
		Category:   row.Category,
		Difficulty: row.Difficulty,
	}
}

// FromRows converts rows, never returning nil.
func FromRows(rows []sqlcgen.Question) []Question {
	out := make([]Question, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromRow(row))
	}
	return out
}

// Category is a display label keyed by id.
type Category struct {
	ID   int32  `json:"id"`
	Type string `json:"type"`
}

// CategoryMap renders as {"<id>": "<type>"}.
type CategoryMap map[int32]string

// Page is one page of a listing plus the size of the full listing.
type Page struct {
	Questions []Question
	Total     int
}

// NewQuestion carries the fields required to store a question.
type NewQuestion struct {
	Question   string
	Answer     string
	Category   int32
	Difficulty int32
}

// FlexInt accepts a JSON number or a numeric string. The web client sends
// select values as strings.
type FlexInt int32

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("expected integer, got null")
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(s)
	}
	n, err := strconv.ParseInt(string(data), 10, 32)
	if err != nil {
		return fmt.Errorf("expected integer: %w", err)
	}
	*f = FlexInt(n)
	return nil
}
