package handlers

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/bandcheck/bandcheck/internal/analysis"
	"github.com/bandcheck/bandcheck/internal/export"
	"github.com/bandcheck/bandcheck/pkg/models"
)

// AnalysisHandler handles analysis-related HTTP requests
type AnalysisHandler struct {
	svc analysis.Service
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(svc analysis.Service) *AnalysisHandler {
	return &AnalysisHandler{svc: svc}
}

// CreateAnalysis runs a band analysis and stores it in history
func (h *AnalysisHandler) CreateAnalysis(ctx context.Context, req *models.CreateAnalysisRequest) (*models.CreateAnalysisResponse, error) {
	log.Info().Str("model", req.Body.Model).Int("textLen", len(req.Body.BandText)).Msg("Analysis request received")

	if strings.TrimSpace(req.Body.BandText) == "" {
		return nil, huma.Error400BadRequest("Band text is empty. Paste the device's band information.", nil)
	}

	record, duplicate, err := h.svc.Analyze(ctx, req.Body.Model, req.Body.BandText)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to run analysis", err)
	}

	return &models.CreateAnalysisResponse{
		Body: models.CreateAnalysisResponseBody{
			Analysis:  record,
			Duplicate: duplicate,
			Ranking:   h.svc.Rank(record),
		},
	}, nil
}

// GetAnalysis returns one stored analysis
func (h *AnalysisHandler) GetAnalysis(ctx context.Context, req *models.GetAnalysisRequest) (*models.GetAnalysisResponse, error) {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid analysis ID", err)
	}

	record, err := h.svc.Get(ctx, id)
	if err != nil {
		return nil, huma.Error404NotFound("Analysis not found", err)
	}

	return &models.GetAnalysisResponse{
		Body: models.CreateAnalysisResponseBody{
			Analysis: record,
			Ranking:  h.svc.Rank(record),
		},
	}, nil
}

// ListAnalyses returns the stored history
func (h *AnalysisHandler) ListAnalyses(ctx context.Context, req *struct{}) (*models.ListAnalysesResponse, error) {
	records, err := h.svc.History(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load history", err)
	}

	resp := &models.ListAnalysesResponse{}
	resp.Body.Analyses = records
	return resp, nil
}

// DeleteAnalysis removes a stored analysis
func (h *AnalysisHandler) DeleteAnalysis(ctx context.Context, req *models.DeleteAnalysisRequest) (*models.DeleteAnalysisResponse, error) {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid analysis ID", err)
	}

	if err := h.svc.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, huma.Error404NotFound("Analysis not found", err)
		}
		return nil, huma.Error500InternalServerError("Failed to delete analysis", err)
	}

	resp := &models.DeleteAnalysisResponse{}
	resp.Body.Message = "Analysis deleted"
	return resp, nil
}

// CompareAnalyses compares two or more stored analyses
func (h *AnalysisHandler) CompareAnalyses(ctx context.Context, req *models.CompareRequest) (*models.CompareResponse, error) {
	ids, err := parseIDs(req.Body.IDs)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid analysis ID", err)
	}

	cmp, err := h.svc.Compare(ctx, ids)
	if err != nil {
		switch {
		case errors.Is(err, analysis.ErrNotEnoughEntries):
			return nil, huma.Error400BadRequest("Select at least two analyses to compare", err)
		case errors.Is(err, sql.ErrNoRows):
			return nil, huma.Error404NotFound("Analysis not found", err)
		}
		return nil, huma.Error500InternalServerError("Failed to compare analyses", err)
	}

	return &models.CompareResponse{Body: *cmp}, nil
}

// ListCarriers returns the carrier requirement table
func (h *AnalysisHandler) ListCarriers(ctx context.Context, req *struct{}) (*models.ListCarriersResponse, error) {
	resp := &models.ListCarriersResponse{}
	resp.Body.Carriers = h.svc.Carriers()
	return resp, nil
}

// BestDevice returns the best stored device for a carrier
func (h *AnalysisHandler) BestDevice(ctx context.Context, req *models.BestDeviceRequest) (*models.BestDeviceResponse, error) {
	best, err := h.svc.BestDevice(ctx, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, analysis.ErrUnknownCarrier):
			return nil, huma.Error404NotFound("Carrier not found", err)
		case errors.Is(err, analysis.ErrNoDevices):
			return nil, huma.Error404NotFound("No analyzed devices in history", err)
		}
		return nil, huma.Error500InternalServerError("Failed to find best device", err)
	}

	return &models.BestDeviceResponse{Body: *best}, nil
}

// ExportComparisonCSV streams a comparison as CSV. Registered as a raw
// chi route because the response is a file download, not a JSON body.
func (h *AnalysisHandler) ExportComparisonCSV(w http.ResponseWriter, r *http.Request) {
	rawIDs := strings.Split(r.URL.Query().Get("ids"), ",")
	ids, err := parseIDs(rawIDs)
	if err != nil {
		http.Error(w, "invalid analysis ID", http.StatusBadRequest)
		return
	}

	cmp, err := h.svc.Compare(r.Context(), ids)
	if err != nil {
		switch {
		case errors.Is(err, analysis.ErrNotEnoughEntries):
			http.Error(w, "select at least two analyses to compare", http.StatusBadRequest)
		case errors.Is(err, sql.ErrNoRows):
			http.Error(w, "analysis not found", http.StatusNotFound)
		default:
			log.Error().Err(err).Msg("CSV export failed")
			http.Error(w, "export failed", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="device_comparison.csv"`)
	if err := export.WriteComparison(w, cmp); err != nil {
		log.Error().Err(err).Msg("CSV export write failed")
	}
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
