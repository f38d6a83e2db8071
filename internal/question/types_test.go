package question

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt(t *testing.T) {
	var body struct {
		A FlexInt `json:"a"`
		B FlexInt `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 4, "b": "2"}`), &body))
	assert.Equal(t, FlexInt(4), body.A)
	assert.Equal(t, FlexInt(2), body.B)

	var f FlexInt
	assert.Error(t, json.Unmarshal([]byte(`"two"`), &f))
	assert.Error(t, json.Unmarshal([]byte(`1.5`), &f))
	assert.Error(t, json.Unmarshal([]byte(`null`), &f))
	assert.Error(t, json.Unmarshal([]byte(`true`), &f))
}

func TestCategoryMapJSON(t *testing.T) {
	raw, err := json.Marshal(CategoryMap{1: "Science", 2: "Art"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"1":"Science","2":"Art"}`, string(raw))
}
