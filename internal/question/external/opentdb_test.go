package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenTDBFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api.php", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("amount"))
		assert.Equal(t, "hard", r.URL.Query().Get("difficulty"))
		assert.Empty(t, r.URL.Query().Get("category"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response_code":0,"results":[
			{"category":"Science &amp; Nature","type":"multiple","difficulty":"hard","question":"Q1","correct_answer":"A1","incorrect_answers":["x","y","z"]},
			{"category":"History","type":"boolean","difficulty":"hard","question":"Q2","correct_answer":"True","incorrect_answers":["False"]}
		]}`))
	}))
	defer srv.Close()

	client := NewOpenTDBClient(srv.URL, srv.Client())
	got, err := client.Fetch(context.Background(), OpenTDBRequest{Amount: 2, Difficulty: "hard"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Science &amp; Nature", got[0].Category)
	assert.Equal(t, []string{"False"}, got[1].IncorrectAnswer)
}

func TestOpenTDBResponseCodes(t *testing.T) {
	cases := map[string]error{
		`{"response_code":1,"results":[]}`: ErrNoResults,
		`{"response_code":5,"results":[]}`: ErrRateLimited,
	}
	for body, want := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))
		_, err := NewOpenTDBClient(srv.URL, srv.Client()).Fetch(context.Background(), OpenTDBRequest{Amount: 1})
		assert.ErrorIs(t, err, want)
		srv.Close()
	}
}

func TestOpenTDBRejectsAmount(t *testing.T) {
	client := NewOpenTDBClient("http://127.0.0.1:0", nil)
	_, err := client.Fetch(context.Background(), OpenTDBRequest{Amount: MaxBatch + 1})
	assert.Error(t, err)
}
