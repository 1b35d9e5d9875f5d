package diagnostics

import (
	"encoding/json"
	"fmt"
	"strings"

	"machsight/pkg/utils"
)

const (
	fallbackReason  = "The document does not appear to be machine maintenance data."
	fallbackSummary = "Analysis completed."
)

var fallbackActions = []string{"See details."}

// Analysis is the accepted result extracted from the model's reply, with
// field-level fallbacks already applied. Raw carries the full parsed blob
// for storage.
type Analysis struct {
	HealthScore      int
	RiskLevel        string
	ExecutiveSummary string
	ImmediateActions []string
	Raw              json.RawMessage
}

// Rejection is the model's own negative classification of the input. It is a
// business outcome: nothing gets persisted, no credits move.
type Rejection struct {
	Reason string
}

type rawAnalysis struct {
	IsValid          *bool  `json:"isValid"`
	Reason           string `json:"reason"`
	HealthScore      int    `json:"healthScore"`
	RiskLevel        string `json:"riskLevel"`
	ExecutiveSummary string `json:"executiveSummary"`
	MaintenancePlan  struct {
		ImmediateActions []string `json:"immediateActions"`
	} `json:"maintenancePlan"`
}

// ParseResponse locates the first balanced {...} span in the raw model text
// (tolerating surrounding prose and markdown fences), parses it, and splits
// on the isValid gate. Exactly one of Analysis/Rejection is non-nil on
// success.
func ParseResponse(raw string) (*Analysis, *Rejection, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return nil, nil, fmt.Errorf("%w: no JSON object in response", utils.ErrMalformedResponse)
	}

	candidate := raw[start : end+1]

	var parsed rawAnalysis
	if err := json.Unmarshal([]byte(candidate), &parsed); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", utils.ErrMalformedResponse, err)
	}

	if parsed.IsValid != nil && !*parsed.IsValid {
		reason := parsed.Reason
		if reason == "" {
			reason = fallbackReason
		}
		return nil, &Rejection{Reason: reason}, nil
	}

	a := &Analysis{
		HealthScore:      parsed.HealthScore,
		RiskLevel:        parsed.RiskLevel,
		ExecutiveSummary: parsed.ExecutiveSummary,
		ImmediateActions: parsed.MaintenancePlan.ImmediateActions,
		Raw:              json.RawMessage(candidate),
	}
	if a.RiskLevel == "" {
		a.RiskLevel = "MODERATE"
	}
	if a.ExecutiveSummary == "" {
		a.ExecutiveSummary = fallbackSummary
	}
	if len(a.ImmediateActions) == 0 {
		a.ImmediateActions = fallbackActions
	}

	return a, nil, nil
}
