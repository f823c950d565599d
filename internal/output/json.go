package output

import (
	"encoding/json"
	"io"

	"github.com/jokarl/gitunjam/internal/types"
)

// JSONRenderer renders output in JSON format
type JSONRenderer struct{}

// jsonOutput is the structure for JSON output
type jsonOutput struct {
	Version string `json:"version"`
	*types.Report
	Result string `json:"result"`
}

// Render writes the report in JSON format
func (r *JSONRenderer) Render(w io.Writer, report *types.Report) error {
	output := jsonOutput{
		Version: "1.0",
		Report:  report,
		Result:  result(report),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// result summarises the report as CLEAN or ISSUES
func result(report *types.Report) string {
	if report.Clean() {
		return "CLEAN"
	}
	return "ISSUES"
}
