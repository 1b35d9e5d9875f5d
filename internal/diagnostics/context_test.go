package diagnostics

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildManualContext_AllDefaults(t *testing.T) {
	ctx := BuildManualContext(ManualFields{})

	assert.Equal(t, ManualEntry, ctx.Type)
	assert.Nil(t, ctx.Attachment)

	want := []string{
		"- Primary Metric: N/A",
		"- Secondary Metric: N/A",
		"- Operational Load: Unknown",
		"- Runtime: Unknown",
		"- Error Codes: None",
		"- Acoustic: Normal",
		"- Environment: Standard",
		"- Visual Signs: None",
		"- User Notes: None",
	}

	lines := strings.Split(strings.TrimSpace(ctx.Text), "\n")
	require.Len(t, lines, len(want)+1) // header line first
	assert.Equal(t, "UNIVERSAL DIAGNOSTIC DATA:", lines[0])
	for i, sentinel := range want {
		assert.Equal(t, sentinel, lines[i+1])
	}
}

func TestBuildManualContext_ProvidedFieldsKept(t *testing.T) {
	ctx := BuildManualContext(ManualFields{
		PrimaryMetric: "82C bearing temp",
		ErrorCodes:    "E204, E301",
		Notes:         "grinding noise on startup",
	})

	assert.Contains(t, ctx.Text, "- Primary Metric: 82C bearing temp")
	assert.Contains(t, ctx.Text, "- Error Codes: E204, E301")
	assert.Contains(t, ctx.Text, "- User Notes: grinding noise on startup")
	// untouched fields still fall back
	assert.Contains(t, ctx.Text, "- Secondary Metric: N/A")
	assert.Contains(t, ctx.Text, "- Acoustic: Normal")
}

func TestBuildManualContext_WhitespaceTreatedAsMissing(t *testing.T) {
	ctx := BuildManualContext(ManualFields{Runtime: "   "})
	assert.Contains(t, ctx.Text, "- Runtime: Unknown")
}

func TestBuildUploadContext(t *testing.T) {
	data := []byte{0x89, 0x50, 0x4e, 0x47}
	ctx := BuildUploadContext(data, "image/png")

	assert.Equal(t, FileUpload, ctx.Type)
	assert.Empty(t, ctx.Text)
	require.NotNil(t, ctx.Attachment)
	assert.Equal(t, "image/png", ctx.Attachment.MIMEType)
	assert.Equal(t, base64.StdEncoding.EncodeToString(data), ctx.Attachment.Data)
}

func TestParseSubmissionType(t *testing.T) {
	tests := []struct {
		in   string
		want SubmissionType
		ok   bool
	}{
		{"MANUAL_ENTRY", ManualEntry, true},
		{"FILE_UPLOAD", FileUpload, true},
		{"manual_entry", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseSubmissionType(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
