package decision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/QuantumPodLabs/quantumpod/internal/policy"
)

func TestParseRouteRequest_Defaults(t *testing.T) {
	in, err := ParseRouteRequest([]byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, DefaultTask, in.Task)
	assert.Equal(t, DefaultComplexity, in.Complexity)
}

func TestParseRouteRequest_FullPayload(t *testing.T) {
	in, err := ParseRouteRequest([]byte(`{"task":"portfolio_optimisation","complexity":0.7}`))
	require.NoError(t, err)
	assert.Equal(t, "portfolio_optimisation", in.Task)
	assert.Equal(t, 0.7, in.Complexity)
}

func TestParseRouteRequest_NumericString(t *testing.T) {
	in, err := ParseRouteRequest([]byte(`{"complexity":"0.7"}`))
	require.NoError(t, err)
	assert.Equal(t, 0.7, in.Complexity)
}

func TestParseRouteRequest_MalformedComplexity(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"non-numeric string", `{"complexity":"abc"}`},
		{"null", `{"complexity":null}`},
		{"bool", `{"complexity":true}`},
		{"object", `{"complexity":{"v":1}}`},
		{"array", `{"complexity":[0.5]}`},
		{"nan string", `{"complexity":"NaN"}`},
		{"inf string", `{"complexity":"Inf"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRouteRequest([]byte(tt.body))
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestParseRouteRequest_MalformedBody(t *testing.T) {
	_, err := ParseRouteRequest([]byte(`not json`))
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseRouteRequest_ClampsOutOfRange(t *testing.T) {
	tests := []struct {
		body string
		want float64
	}{
		{`{"complexity":1.5}`, 1.0},
		{`{"complexity":-5}`, 0.0},
		{`{"complexity":2.3}`, 1.0},
		{`{"complexity":0.0}`, 0.0},
		{`{"complexity":1.0}`, 1.0},
	}
	for _, tt := range tests {
		in, err := ParseRouteRequest([]byte(tt.body))
		require.NoError(t, err, tt.body)
		assert.Equal(t, tt.want, in.Complexity, tt.body)
	}
}

func TestParseRouteRequest_NullTaskDefaults(t *testing.T) {
	in, err := ParseRouteRequest([]byte(`{"task":null,"complexity":0.3}`))
	require.NoError(t, err)
	assert.Equal(t, DefaultTask, in.Task)
}

func TestParseRouteRequest_NonStringTaskCoerced(t *testing.T) {
	in, err := ParseRouteRequest([]byte(`{"task":42}`))
	require.NoError(t, err)
	assert.Equal(t, "42", in.Task)
}

func TestNewRecord_StampsIdentityAndDecision(t *testing.T) {
	in := Input{Task: "portfolio_optimisation", Complexity: 0.7}
	prov := Provenance{ClientIP: "10.0.0.1", UserAgent: "curl/8.0", Path: "/route"}

	rec := NewRecord(in, prov)

	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.Timestamp.IsZero())
	assert.Equal(t, rec.Timestamp.UTC(), rec.Timestamp)
	assert.Equal(t, policy.Hybrid, rec.Decision)
	assert.Equal(t, "10.0.0.1", rec.ClientIP)
	assert.Equal(t, "curl/8.0", rec.UserAgent)
	assert.Equal(t, "/route", rec.Path)

	other := NewRecord(in, prov)
	assert.NotEqual(t, rec.ID, other.ID)
}
