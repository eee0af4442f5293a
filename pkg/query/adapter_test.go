package query_test

import (
	"encoding/json"
	"testing"

	"github.com/soundprediction/triplo/pkg/factstore"
	"github.com/soundprediction/triplo/pkg/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter() *query.Adapter {
	store := factstore.NewStore()
	store.AddFact("Hypertension", "treated_by", "ACE Inhibitor")
	store.AddFact("Hypertension", "treated_by", "Diuretic")
	store.AddFact("ACE Inhibitor", "class_of", "Lisinopril")
	return query.NewAdapter(store)
}

func TestProcessJSONForward(t *testing.T) {
	a := newTestAdapter()

	out := a.ProcessJSON([]byte(`{"queryType":"retrieve_fact","subject":"Hypertension","relation":"treated_by"}`))

	var resp query.Response
	require.NoError(t, json.Unmarshal(out, &resp))
	assert.Equal(t, []string{"ACE Inhibitor", "Diuretic"}, resp.Response)
}

func TestProcessJSONReverse(t *testing.T) {
	a := newTestAdapter()

	out := a.ProcessJSON([]byte(`{"queryType":"retrieve_fact_reverse","object":"ACE Inhibitor","relation":"treated_by"}`))

	var resp query.Response
	require.NoError(t, json.Unmarshal(out, &resp))
	assert.Equal(t, []string{"Hypertension"}, resp.Response)
}

func TestProcessJSONNoMatchIsEmptyResponse(t *testing.T) {
	a := newTestAdapter()

	out := a.ProcessJSON([]byte(`{"queryType":"retrieve_fact","subject":"Unknown","relation":"treated_by"}`))

	var resp query.Response
	require.NoError(t, json.Unmarshal(out, &resp))
	assert.Empty(t, resp.Response)
	assert.NotContains(t, string(out), "error")
}

func TestProcessJSONMissingFields(t *testing.T) {
	a := newTestAdapter()

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "forward missing relation",
			input:   `{"queryType":"retrieve_fact","subject":"Hypertension"}`,
			wantErr: query.ErrForwardFieldsReqd,
		},
		{
			name:    "forward missing subject",
			input:   `{"queryType":"retrieve_fact","relation":"treated_by"}`,
			wantErr: query.ErrForwardFieldsReqd,
		},
		{
			name:    "reverse missing relation",
			input:   `{"queryType":"retrieve_fact_reverse","object":"Diuretic"}`,
			wantErr: query.ErrReverseFieldsReqd,
		},
		{
			name:    "reverse missing object",
			input:   `{"queryType":"retrieve_fact_reverse","relation":"treated_by"}`,
			wantErr: query.ErrReverseFieldsReqd,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errResp query.ErrorResponse
			require.NoError(t, json.Unmarshal(a.ProcessJSON([]byte(tt.input)), &errResp))
			assert.Equal(t, tt.wantErr, errResp.Error)
			assert.Empty(t, errResp.Details)
		})
	}
}

func TestProcessJSONUnsupportedQueryType(t *testing.T) {
	a := newTestAdapter()

	for _, input := range []string{
		`{"queryType":"delete_fact","subject":"A","relation":"r"}`,
		`{"subject":"A","relation":"r"}`,
		`{}`,
	} {
		var errResp query.ErrorResponse
		require.NoError(t, json.Unmarshal(a.ProcessJSON([]byte(input)), &errResp))
		assert.Equal(t, query.ErrUnsupportedType, errResp.Error)
	}
}

func TestProcessJSONMalformedInput(t *testing.T) {
	a := newTestAdapter()

	for _, input := range []string{
		`{"queryType":"retrieve_fact",`,
		`not json at all`,
		``,
	} {
		out := a.ProcessJSON([]byte(input))

		var errResp query.ErrorResponse
		require.NoError(t, json.Unmarshal(out, &errResp), "error document must itself be valid JSON")
		assert.Equal(t, query.ErrInvalidJSON, errResp.Error)
		assert.NotEmpty(t, errResp.Details, "decoder message expected in details")
	}
}

func TestTypedForwardReverse(t *testing.T) {
	a := newTestAdapter()

	resp, errResp := a.Forward("ACE Inhibitor", "class_of")
	require.Nil(t, errResp)
	assert.Equal(t, []string{"Lisinopril"}, resp.Response)

	resp, errResp = a.Reverse("Lisinopril", "class_of")
	require.Nil(t, errResp)
	assert.Equal(t, []string{"ACE Inhibitor"}, resp.Response)

	_, errResp = a.Forward("", "class_of")
	require.NotNil(t, errResp)
	assert.Equal(t, query.ErrForwardFieldsReqd, errResp.Error)
}
