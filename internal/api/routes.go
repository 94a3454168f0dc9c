package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"

	"github.com/bandcheck/bandcheck/internal/analysis"
	"github.com/bandcheck/bandcheck/internal/api/handlers"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(router *chi.Mux, api huma.API, svc analysis.Service) {
	analysisHandler := handlers.NewAnalysisHandler(svc)

	huma.Register(api, huma.Operation{
		OperationID: "createAnalysis",
		Method:      http.MethodPost,
		Path:        "/api/analyses",
		Summary:     "Analyze device band text",
		Description: "Extracts LTE/NR bands from the submitted text, evaluates carrier compatibility, and stores the result",
		Tags:        []string{"Analysis"},
	}, analysisHandler.CreateAnalysis)

	huma.Register(api, huma.Operation{
		OperationID: "listAnalyses",
		Method:      http.MethodGet,
		Path:        "/api/analyses",
		Summary:     "List analysis history",
		Description: "Returns all stored analyses, oldest first",
		Tags:        []string{"Analysis"},
	}, analysisHandler.ListAnalyses)

	huma.Register(api, huma.Operation{
		OperationID: "getAnalysis",
		Method:      http.MethodGet,
		Path:        "/api/analyses/{id}",
		Summary:     "Get a stored analysis",
		Description: "Returns one stored analysis with its carrier ranking",
		Tags:        []string{"Analysis"},
	}, analysisHandler.GetAnalysis)

	huma.Register(api, huma.Operation{
		OperationID: "deleteAnalysis",
		Method:      http.MethodDelete,
		Path:        "/api/analyses/{id}",
		Summary:     "Delete a stored analysis",
		Tags:        []string{"Analysis"},
	}, analysisHandler.DeleteAnalysis)

	huma.Register(api, huma.Operation{
		OperationID: "compareAnalyses",
		Method:      http.MethodPost,
		Path:        "/api/analyses/compare",
		Summary:     "Compare stored analyses",
		Description: "Builds a per-device per-carrier comparison for two or more stored analyses",
		Tags:        []string{"Analysis"},
	}, analysisHandler.CompareAnalyses)

	huma.Register(api, huma.Operation{
		OperationID: "listCarriers",
		Method:      http.MethodGet,
		Path:        "/api/carriers",
		Summary:     "List carrier profiles",
		Tags:        []string{"Carriers"},
	}, analysisHandler.ListCarriers)

	huma.Register(api, huma.Operation{
		OperationID: "bestDevice",
		Method:      http.MethodGet,
		Path:        "/api/carriers/{name}/best-device",
		Summary:     "Best device for a carrier",
		Description: "Returns the highest-scoring analyzed device for the carrier, with a top-5 ranking",
		Tags:        []string{"Carriers"},
	}, analysisHandler.BestDevice)

	// CSV download is a raw route; huma would wrap it in a JSON schema.
	router.Get("/api/analyses/compare/export", analysisHandler.ExportComparisonCSV)
}
