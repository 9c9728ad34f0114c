package compare

import (
	"encoding/json"
)

// JSONFormatter formats comparison results as JSON
type JSONFormatter struct {
	Pretty         bool // Indent output
	IncludeReports bool // Embed the full tax report of every declaration
}

// Format generates JSON output for comparison results
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	payload := compSet
	if !jf.IncludeReports {
		payload = stripReports(compSet)
	}

	var data []byte
	var err error
	if jf.Pretty {
		data, err = json.MarshalIndent(payload, "", "  ")
	} else {
		data, err = json.Marshal(payload)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// stripReports returns a shallow copy without the embedded reports
func stripReports(compSet *ComparisonSet) *ComparisonSet {
	out := *compSet
	if compSet.BaseResult != nil {
		base := *compSet.BaseResult
		base.Report = nil
		out.BaseResult = &base
	}
	out.AlternativeResults = make([]ComparisonResult, len(compSet.AlternativeResults))
	for i, alt := range compSet.AlternativeResults {
		alt.Report = nil
		out.AlternativeResults[i] = alt
	}
	return &out
}
