package external

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// MaxBatch is the largest amount the Open Trivia DB serves per call.
const MaxBatch = 50

var (
	// ErrNoResults means the database has fewer questions than requested
	// for the given filters.
	ErrNoResults = errors.New("opentdb: not enough questions for query")
	// ErrRateLimited means more than one request per five seconds was made.
	ErrRateLimited = errors.New("opentdb: rate limited")
)

// OpenTDBClient fetches questions from the Open Trivia DB (no API key).
type OpenTDBClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewOpenTDBClient(baseURL string, httpClient *http.Client) *OpenTDBClient {
	if baseURL == "" {
		baseURL = "https://opentdb.com"
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &OpenTDBClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// OpenTDBQuestion is one result as served. Text fields are HTML-escaped.
type OpenTDBQuestion struct {
	Category        string   `json:"category"`
	Type            string   `json:"type"`
	Difficulty      string   `json:"difficulty"`
	Question        string   `json:"question"`
	CorrectAnswer   string   `json:"correct_answer"`
	IncorrectAnswer []string `json:"incorrect_answers"`
}

// OpenTDBRequest filters a fetch. Zero values mean any.
type OpenTDBRequest struct {
	Amount     int
	Category   int
	Difficulty string
	Type       string
}

type openTDBResponse struct {
	ResponseCode int               `json:"response_code"`
	Results      []OpenTDBQuestion `json:"results"`
}

// Fetch requests up to MaxBatch questions.
func (c *OpenTDBClient) Fetch(ctx context.Context, r OpenTDBRequest) ([]OpenTDBQuestion, error) {
	if r.Amount < 1 || r.Amount > MaxBatch {
		return nil, fmt.Errorf("opentdb: amount must be between 1 and %d, got %d", MaxBatch, r.Amount)
	}
	values := url.Values{}
	values.Set("amount", strconv.Itoa(r.Amount))
	if r.Category > 0 {
		values.Set("category", strconv.Itoa(r.Category))
	}
	if r.Difficulty != "" {
		values.Set("difficulty", r.Difficulty)
	}
	if r.Type != "" {
		values.Set("type", r.Type)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/api.php?%s", c.baseURL, values.Encode()), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("opentdb non-200: %d", resp.StatusCode)
	}

	var payload openTDBResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode opentdb response: %w", err)
	}
	switch payload.ResponseCode {
	case 0:
		return payload.Results, nil
	case 1:
		return nil, ErrNoResults
	case 5:
		return nil, ErrRateLimited
	default:
		return nil, fmt.Errorf("opentdb response code %d", payload.ResponseCode)
	}
}
