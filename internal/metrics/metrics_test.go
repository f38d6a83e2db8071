package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	m := New()
	m.ObserveRequest(http.MethodGet, "/questions", http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/questions", http.StatusOK, 10*time.Millisecond)
	m.ObserveRequest(http.MethodDelete, "/questions/:id", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.requests.WithLabelValues("GET", "/questions", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requests.WithLabelValues("DELETE", "/questions/:id", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))
}

func TestQuizCounters(t *testing.T) {
	m := New()
	m.QuestionServed(ScopeAll)
	m.QuestionServed(ScopeCategory)
	m.QuestionServed(ScopeCategory)
	m.QuizCompleted()

	assert.Equal(t, float64(1), testutil.ToFloat64(m.quizServed.WithLabelValues(ScopeAll)))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.quizServed.WithLabelValues(ScopeCategory)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.quizCompleted))
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.QuizCompleted()

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(raw), "trivia_quiz_completed_total 1")
	assert.Contains(t, string(raw), "go_goroutines")
}
