package render

import (
	"encoding/json"

	"gopaired/domain/ttest"
)

// JSON renders the full report, including the numeric result bundle
func JSON(report ttest.AnalysisReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
