package models

import (
	"time"

	"github.com/bandcheck/bandcheck/internal/bands"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status  string    `json:"status" example:"healthy" doc:"Service health status"`
		Version string    `json:"version" example:"1.0.0" doc:"API version"`
		Time    time.Time `json:"time" doc:"Current server time"`
	}
}

// CreateAnalysisRequest represents a request to analyze a device's band text
type CreateAnalysisRequest struct {
	Body struct {
		Model    string `json:"model" maxLength:"100" doc:"Device model name; blank becomes 'Unknown Model'"`
		BandText string `json:"band_text" minLength:"1" maxLength:"16384" required:"true" doc:"Spec-sheet text to extract bands from"`
	}
}

// CreateAnalysisResponseBody is the body of the create analysis response
type CreateAnalysisResponseBody struct {
	Analysis  *AnalysisRecord       `json:"analysis" doc:"The stored (or matching existing) analysis"`
	Duplicate bool                  `json:"duplicate" doc:"True when an identical model/band combination already existed"`
	Ranking   []bands.RankedCarrier `json:"ranking" doc:"Carriers ordered by compatibility score"`
}

// CreateAnalysisResponse represents the response from creating an analysis
type CreateAnalysisResponse struct {
	Body CreateAnalysisResponseBody
}

// GetAnalysisRequest represents a request to fetch one stored analysis
type GetAnalysisRequest struct {
	ID string `path:"id" doc:"Analysis ID"`
}

// GetAnalysisResponse returns one stored analysis with its carrier ranking
type GetAnalysisResponse struct {
	Body CreateAnalysisResponseBody
}

// ListAnalysesResponse returns the stored history, oldest first
type ListAnalysesResponse struct {
	Body struct {
		Analyses []*AnalysisRecord `json:"analyses" doc:"Stored analyses, oldest first"`
	}
}

// DeleteAnalysisRequest represents a request to delete a stored analysis
type DeleteAnalysisRequest struct {
	ID string `path:"id" doc:"Analysis ID"`
}

// DeleteAnalysisResponse confirms a deletion
type DeleteAnalysisResponse struct {
	Body struct {
		Message string `json:"message" doc:"Confirmation message"`
	}
}

// CompareRequest represents a request to compare stored analyses
type CompareRequest struct {
	Body struct {
		IDs []string `json:"ids" minItems:"2" required:"true" doc:"IDs of the analyses to compare, at least two"`
	}
}

// CompareResponse represents the multi-device comparison result
type CompareResponse struct {
	Body Comparison
}

// ListCarriersResponse returns the carrier requirement table
type ListCarriersResponse struct {
	Body struct {
		Carriers []bands.Carrier `json:"carriers" doc:"Carrier profiles in display order"`
	}
}

// BestDeviceRequest represents a request for the best device on a carrier
type BestDeviceRequest struct {
	Name string `path:"name" doc:"Carrier name"`
}

// BestDeviceResponse returns the best stored device for a carrier
type BestDeviceResponse struct {
	Body BestDevice
}
