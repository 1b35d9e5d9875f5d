// Package diagnostics builds the model-facing context bundle and prompt for
// a machine analysis, and parses the model's reply.
package diagnostics

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// SubmissionType discriminates manual form submissions from file uploads.
type SubmissionType string

const (
	ManualEntry SubmissionType = "MANUAL_ENTRY"
	FileUpload  SubmissionType = "FILE_UPLOAD"
)

func ParseSubmissionType(s string) (SubmissionType, bool) {
	switch SubmissionType(s) {
	case ManualEntry, FileUpload:
		return SubmissionType(s), true
	}
	return "", false
}

// ManualFields holds the nine optional scalar readings from the manual form.
// Empty fields are substituted from the defaults table, never left blank.
type ManualFields struct {
	PrimaryMetric   string
	SecondaryMetric string
	OperatingLoad   string
	Runtime         string
	ErrorCodes      string
	NoiseProfile    string
	EnvCondition    string
	VisualSigns     string
	Notes           string
}

// Attachment is a base64-encoded upload paired with its declared MIME type.
// No size or type validation happens here; the model sees whatever the
// caller sent.
type Attachment struct {
	MIMEType string
	Data     string // base64
}

// Context is the normalized bundle handed to the prompt composer.
type Context struct {
	Type       SubmissionType
	Text       string // labeled block for MANUAL_ENTRY, empty otherwise
	Attachment *Attachment
}

// manualDefaults keeps every recognized field, its label, and its fallback
// sentinel in one auditable place. Order is the render order.
var manualDefaults = []struct {
	label    string
	fallback string
	value    func(m ManualFields) string
}{
	{"Primary Metric", "N/A", func(m ManualFields) string { return m.PrimaryMetric }},
	{"Secondary Metric", "N/A", func(m ManualFields) string { return m.SecondaryMetric }},
	{"Operational Load", "Unknown", func(m ManualFields) string { return m.OperatingLoad }},
	{"Runtime", "Unknown", func(m ManualFields) string { return m.Runtime }},
	{"Error Codes", "None", func(m ManualFields) string { return m.ErrorCodes }},
	{"Acoustic", "Normal", func(m ManualFields) string { return m.NoiseProfile }},
	{"Environment", "Standard", func(m ManualFields) string { return m.EnvCondition }},
	{"Visual Signs", "None", func(m ManualFields) string { return m.VisualSigns }},
	{"User Notes", "None", func(m ManualFields) string { return m.Notes }},
}

// BuildManualContext renders the nine fields into one labeled block,
// substituting the per-field sentinel for anything missing.
func BuildManualContext(fields ManualFields) Context {
	var b strings.Builder
	b.WriteString("UNIVERSAL DIAGNOSTIC DATA:\n")
	for _, f := range manualDefaults {
		v := strings.TrimSpace(f.value(fields))
		if v == "" {
			v = f.fallback
		}
		fmt.Fprintf(&b, "- %s: %s\n", f.label, v)
	}
	return Context{Type: ManualEntry, Text: b.String()}
}

// BuildUploadContext base64-encodes the raw bytes in memory and pairs them
// with the declared MIME type.
func BuildUploadContext(data []byte, mimeType string) Context {
	return Context{
		Type: FileUpload,
		Attachment: &Attachment{
			MIMEType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(data),
		},
	}
}
