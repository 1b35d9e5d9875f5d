package diagnostics

import (
	"fmt"
	"strings"
)

// AssetProfile is the slice of the machine record the model needs.
type AssetProfile struct {
	Name string
	Type string
}

const (
	personaElevated = "You are a Chief Reliability Engineer (CMRP Certified) producing a formal reliability assessment."
	personaStandard = "You are a Shift Maintenance Technician writing up a practical inspection report."

	depthElevated = "Analyze specifically for complex failure modes, degradation trends, and compounding risks across subsystems."
	depthStandard = "Identify the most obvious failure mode and the simplest corrective action."
)

// ComposePrompt deterministically renders the instruction document sent to
// the model: persona, depth instruction, asset profile, input data, the
// validation gate, and the strict output schema. Pure function of its inputs.
func ComposePrompt(asset AssetProfile, elevated bool, dctx Context) string {

	persona := personaStandard
	depth := depthStandard
	if elevated {
		persona = personaElevated
		depth = depthElevated
	}

	assetType := asset.Type
	if assetType == "" {
		assetType = "General Asset"
	}

	inputData := dctx.Text
	if dctx.Type == FileUpload {
		inputData = "See attached document."
	}

	var b strings.Builder
	b.WriteString(persona)
	b.WriteString("\n")
	b.WriteString(depth)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "ASSET PROFILE:\n- Name: %s\n- Type: %s\n\n", asset.Name, assetType)
	fmt.Fprintf(&b, "INPUT DATA: %s\n\n", inputData)

	b.WriteString(`*** CRITICAL INSTRUCTION: VALIDATION GATE ***
Before analyzing, you must verify if the INPUT DATA is actually related to industrial machinery, technical maintenance, or engineering logs.

IF THE INPUT IS IRRELEVANT (e.g., a Certificate, Resume, Generic Article, Generic Invoice, Cooking Recipe, or Empty/Gibberish):
- Return ONLY this JSON: { "isValid": false, "reason": "The uploaded document appears to be a [Detected Type] and not a technical maintenance log." }

IF THE INPUT IS VALID TECHNICAL DATA (e.g., sensor readings, dated maintenance logs, machine-specific error codes, physical damage descriptions):
- Proceed with the analysis and output the full report JSON.

OUTPUT JSON STRUCTURE (Strictly JSON):
{
  "isValid": true,
  "healthScore": (Integer 0-100),
  "riskLevel": ("LOW" | "MODERATE" | "HIGH" | "CRITICAL"),
  "executiveSummary": "Summary of asset health.",
  "technicalAnalysis": {
      "rootCauseHypothesis": "Technical explanation.",
      "potentialFailureModes": ["Mode 1", "Mode 2"],
      "symptomsAnalyzed": ["Symptom 1", "Symptom 2"]
  },
  "riskAssessment": {
      "safetyHazards": "Safety risks.",
      "operationalImpact": "Production impact.",
      "probabilityOfFailure": "Probability estimate."
  },
  "maintenancePlan": {
      "immediateActions": ["Step 1", "Step 2"],
      "preventiveMeasures": ["Prevention 1"],
      "sparePartsRequired": ["Parts needed"]
  }
}
`)

	return b.String()
}
