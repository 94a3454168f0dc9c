package models

import (
	"time"

	"github.com/bandcheck/bandcheck/internal/bands"
)

// AnalysisRecord is one stored band analysis: the device model, the bands
// extracted from its spec text, and the per-carrier compatibility reports
// computed at analysis time. Records are immutable once written.
type AnalysisRecord struct {
	ID        string                  `json:"id" doc:"Analysis unique identifier"`
	Model     string                  `json:"model" doc:"Device model name"`
	CreatedAt time.Time               `json:"created_at" doc:"When the analysis ran"`
	LTEBands  []int                   `json:"lte_bands" doc:"Extracted LTE bands, ascending"`
	NRBands   []int                   `json:"nr_bands" doc:"Extracted 5G NR bands, ascending"`
	Reports   map[string]bands.Report `json:"reports" doc:"Compatibility report per carrier"`
}

// ComparisonRow is one device/carrier pairing in a multi-device
// comparison, mirroring one row of the comparison table.
type ComparisonRow struct {
	Model          string  `json:"model" doc:"Device model name"`
	Carrier        string  `json:"carrier" doc:"Carrier name"`
	Score          float64 `json:"score" doc:"Compatibility score"`
	SupportedLTE   []int   `json:"supported_lte" doc:"Supported LTE bands"`
	SupportedNR    []int   `json:"supported_nr" doc:"Supported 5G bands"`
	MissingCoreLTE []int   `json:"missing_core_lte" doc:"Missing mandatory LTE bands"`
	Status         string  `json:"status" enum:"Excellent,Good,Limited" doc:"Coverage status derived from missing core bands"`
}

// DeviceMetrics summarizes one device across every carrier in a
// comparison.
type DeviceMetrics struct {
	Model               string `json:"model" doc:"Device model name"`
	DetectedLTECount    int    `json:"detected_lte_count" doc:"Number of LTE bands extracted"`
	DetectedNRCount     int    `json:"detected_nr_count" doc:"Number of NR bands extracted"`
	OverallSupportedLTE []int  `json:"overall_supported_lte" doc:"LTE bands supported on at least one carrier"`
	OverallSupportedNR  []int  `json:"overall_supported_nr" doc:"NR bands supported on at least one carrier"`
	TotalMissingCore    int    `json:"total_missing_core" doc:"Missing core LTE bands summed across carriers"`
}

// Comparison is the result of comparing two or more stored analyses.
// The Best* slices list every model tied at the best value, in the order
// the devices were selected.
type Comparison struct {
	Rows         []ComparisonRow `json:"rows" doc:"Per-device per-carrier results"`
	Metrics      []DeviceMetrics `json:"metrics" doc:"Per-device overall metrics"`
	BestLTE      []string        `json:"best_lte" doc:"Models with the most overall supported LTE bands"`
	BestNR       []string        `json:"best_nr" doc:"Models with the most overall supported 5G bands"`
	BestCoverage []string        `json:"best_coverage" doc:"Models with the fewest missing core LTE bands"`
}

// DeviceScore pairs a model with its score for one carrier.
type DeviceScore struct {
	Model string  `json:"model" doc:"Device model name"`
	Score float64 `json:"score" doc:"Compatibility score"`
}

// BestDevice names the strongest device in history for one carrier.
type BestDevice struct {
	Carrier  string          `json:"carrier" doc:"Carrier name"`
	Analysis *AnalysisRecord `json:"analysis" doc:"Best device's analysis record"`
	Score    float64         `json:"score" doc:"Best device's compatibility score"`
	Ranking  []DeviceScore   `json:"ranking" doc:"Top devices for this carrier, best first"`
}
