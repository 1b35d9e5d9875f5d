package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"machsight/pkg/utils"
)

func TestParseResponse_FencedJSON(t *testing.T) {
	raw := "Sure! ```json\n{\"isValid\":true,\"healthScore\":72,\"riskLevel\":\"HIGH\",\"executiveSummary\":\"Bearing wear detected.\",\"maintenancePlan\":{\"immediateActions\":[\"Replace bearing\"]}}\n```"

	analysis, rejection, err := ParseResponse(raw)
	require.NoError(t, err)
	require.Nil(t, rejection)
	require.NotNil(t, analysis)

	assert.Equal(t, 72, analysis.HealthScore)
	assert.Equal(t, "HIGH", analysis.RiskLevel)
	assert.Equal(t, "Bearing wear detected.", analysis.ExecutiveSummary)
	assert.Equal(t, []string{"Replace bearing"}, analysis.ImmediateActions)
	assert.JSONEq(t, `{"isValid":true,"healthScore":72,"riskLevel":"HIGH","executiveSummary":"Bearing wear detected.","maintenancePlan":{"immediateActions":["Replace bearing"]}}`, string(analysis.Raw))
}

func TestParseResponse_Rejection(t *testing.T) {
	raw := `{"isValid": false, "reason": "The document appears to be a Resume."}`

	analysis, rejection, err := ParseResponse(raw)
	require.NoError(t, err)
	assert.Nil(t, analysis)
	require.NotNil(t, rejection)
	assert.Equal(t, "The document appears to be a Resume.", rejection.Reason)
}

func TestParseResponse_RejectionWithoutReason(t *testing.T) {
	analysis, rejection, err := ParseResponse(`{"isValid": false}`)
	require.NoError(t, err)
	assert.Nil(t, analysis)
	require.NotNil(t, rejection)
	assert.Equal(t, "The document does not appear to be machine maintenance data.", rejection.Reason)
}

func TestParseResponse_FieldFallbacks(t *testing.T) {
	analysis, rejection, err := ParseResponse(`{"isValid": true}`)
	require.NoError(t, err)
	require.Nil(t, rejection)
	require.NotNil(t, analysis)

	assert.Equal(t, 0, analysis.HealthScore)
	assert.Equal(t, "MODERATE", analysis.RiskLevel)
	assert.Equal(t, "Analysis completed.", analysis.ExecutiveSummary)
	assert.Equal(t, []string{"See details."}, analysis.ImmediateActions)
}

func TestParseResponse_MissingIsValidTreatedAsAccepted(t *testing.T) {
	analysis, rejection, err := ParseResponse(`{"healthScore": 40, "riskLevel": "CRITICAL"}`)
	require.NoError(t, err)
	require.Nil(t, rejection)
	require.NotNil(t, analysis)
	assert.Equal(t, 40, analysis.HealthScore)
	assert.Equal(t, "CRITICAL", analysis.RiskLevel)
}

func TestParseResponse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no braces", "the model refused to answer"},
		{"only opening brace", "result: {"},
		{"only closing brace", "} done"},
		{"braces out of order", "} nothing here {"},
		{"unparseable candidate", "{not json at all}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis, rejection, err := ParseResponse(tt.raw)
			assert.Nil(t, analysis)
			assert.Nil(t, rejection)
			assert.ErrorIs(t, err, utils.ErrMalformedResponse)
		})
	}
}
