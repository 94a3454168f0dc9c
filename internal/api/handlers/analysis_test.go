package handlers

import (
	"context"
	"database/sql"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bandcheck/bandcheck/internal/analysis"
	"github.com/bandcheck/bandcheck/internal/bands"
	"github.com/bandcheck/bandcheck/pkg/models"
)

// MockService implements analysis.Service for testing
type MockService struct {
	mock.Mock
}

func (m *MockService) Analyze(ctx context.Context, model, text string) (*models.AnalysisRecord, bool, error) {
	args := m.Called(ctx, model, text)
	return args.Get(0).(*models.AnalysisRecord), args.Bool(1), args.Error(2)
}

func (m *MockService) Get(ctx context.Context, id uuid.UUID) (*models.AnalysisRecord, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*models.AnalysisRecord), args.Error(1)
}

func (m *MockService) History(ctx context.Context) ([]*models.AnalysisRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.AnalysisRecord), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockService) Compare(ctx context.Context, ids []uuid.UUID) (*models.Comparison, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(*models.Comparison), args.Error(1)
}

func (m *MockService) BestDevice(ctx context.Context, carrier string) (*models.BestDevice, error) {
	args := m.Called(ctx, carrier)
	return args.Get(0).(*models.BestDevice), args.Error(1)
}

func (m *MockService) Carriers() bands.CarrierTable {
	args := m.Called()
	return args.Get(0).(bands.CarrierTable)
}

func (m *MockService) Rank(record *models.AnalysisRecord) []bands.RankedCarrier {
	args := m.Called(record)
	return args.Get(0).([]bands.RankedCarrier)
}

func sampleRecord() *models.AnalysisRecord {
	lte := []int{2, 4}
	nr := []int{77}
	return &models.AnalysisRecord{
		ID:        uuid.New().String(),
		Model:     "Pixel 9",
		CreatedAt: time.Now().UTC(),
		LTEBands:  lte,
		NRBands:   nr,
		Reports:   bands.Evaluate(lte, nr, bands.DefaultCarriers()),
	}
}

func assertStatus(t *testing.T, err error, want int) {
	t.Helper()
	var herr huma.StatusError
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, want, herr.GetStatus())
}

func TestCreateAnalysis(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		record := sampleRecord()
		svc := new(MockService)
		svc.On("Analyze", mock.Anything, "Pixel 9", "4G B2, B4\n5G n77").Return(record, false, nil)
		svc.On("Rank", record).Return(bands.Rank(bands.DefaultCarriers(), record.Reports))
		handler := NewAnalysisHandler(svc)

		req := &models.CreateAnalysisRequest{}
		req.Body.Model = "Pixel 9"
		req.Body.BandText = "4G B2, B4\n5G n77"

		resp, err := handler.CreateAnalysis(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, record.ID, resp.Body.Analysis.ID)
		assert.False(t, resp.Body.Duplicate)
		assert.Len(t, resp.Body.Ranking, 3)
		svc.AssertExpectations(t)
	})

	t.Run("blank band text rejected", func(t *testing.T) {
		svc := new(MockService)
		handler := NewAnalysisHandler(svc)

		req := &models.CreateAnalysisRequest{}
		req.Body.BandText = "   \n  "

		_, err := handler.CreateAnalysis(context.Background(), req)

		assertStatus(t, err, 400)
		svc.AssertNotCalled(t, "Analyze", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("service failure", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Analyze", mock.Anything, mock.Anything, mock.Anything).Return((*models.AnalysisRecord)(nil), false, assert.AnError)
		handler := NewAnalysisHandler(svc)

		req := &models.CreateAnalysisRequest{}
		req.Body.BandText = "LTE B2"

		_, err := handler.CreateAnalysis(context.Background(), req)

		assertStatus(t, err, 500)
	})
}

func TestGetAnalysis(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		record := sampleRecord()
		svc := new(MockService)
		svc.On("Get", mock.Anything, uuid.MustParse(record.ID)).Return(record, nil)
		svc.On("Rank", record).Return(bands.Rank(bands.DefaultCarriers(), record.Reports))
		handler := NewAnalysisHandler(svc)

		resp, err := handler.GetAnalysis(context.Background(), &models.GetAnalysisRequest{ID: record.ID})

		require.NoError(t, err)
		assert.Equal(t, record.Model, resp.Body.Analysis.Model)
	})

	t.Run("malformed id", func(t *testing.T) {
		handler := NewAnalysisHandler(new(MockService))

		_, err := handler.GetAnalysis(context.Background(), &models.GetAnalysisRequest{ID: "not-a-uuid"})

		assertStatus(t, err, 400)
	})

	t.Run("not found", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Get", mock.Anything, mock.Anything).Return((*models.AnalysisRecord)(nil), sql.ErrNoRows)
		handler := NewAnalysisHandler(svc)

		_, err := handler.GetAnalysis(context.Background(), &models.GetAnalysisRequest{ID: uuid.New().String()})

		assertStatus(t, err, 404)
	})
}

func TestListAnalyses(t *testing.T) {
	record := sampleRecord()
	svc := new(MockService)
	svc.On("History", mock.Anything).Return([]*models.AnalysisRecord{record}, nil)
	handler := NewAnalysisHandler(svc)

	resp, err := handler.ListAnalyses(context.Background(), &struct{}{})

	require.NoError(t, err)
	require.Len(t, resp.Body.Analyses, 1)
	assert.Equal(t, record.ID, resp.Body.Analyses[0].ID)
}

func TestDeleteAnalysis(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		id := uuid.New()
		svc := new(MockService)
		svc.On("Delete", mock.Anything, id).Return(nil)
		handler := NewAnalysisHandler(svc)

		resp, err := handler.DeleteAnalysis(context.Background(), &models.DeleteAnalysisRequest{ID: id.String()})

		require.NoError(t, err)
		assert.Equal(t, "Analysis deleted", resp.Body.Message)
	})

	t.Run("malformed id", func(t *testing.T) {
		handler := NewAnalysisHandler(new(MockService))

		_, err := handler.DeleteAnalysis(context.Background(), &models.DeleteAnalysisRequest{ID: "xyz"})

		assertStatus(t, err, 400)
	})

	t.Run("not found", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Delete", mock.Anything, mock.Anything).Return(sql.ErrNoRows)
		handler := NewAnalysisHandler(svc)

		_, err := handler.DeleteAnalysis(context.Background(), &models.DeleteAnalysisRequest{ID: uuid.New().String()})

		assertStatus(t, err, 404)
	})
}

func TestCompareAnalyses(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		a, b := uuid.New(), uuid.New()
		cmp := &models.Comparison{BestLTE: []string{"Pixel 9"}}
		svc := new(MockService)
		svc.On("Compare", mock.Anything, []uuid.UUID{a, b}).Return(cmp, nil)
		handler := NewAnalysisHandler(svc)

		req := &models.CompareRequest{}
		req.Body.IDs = []string{a.String(), b.String()}

		resp, err := handler.CompareAnalyses(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, []string{"Pixel 9"}, resp.Body.BestLTE)
	})

	t.Run("malformed id", func(t *testing.T) {
		handler := NewAnalysisHandler(new(MockService))

		req := &models.CompareRequest{}
		req.Body.IDs = []string{"nope", uuid.New().String()}

		_, err := handler.CompareAnalyses(context.Background(), req)

		assertStatus(t, err, 400)
	})

	t.Run("not enough entries", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Compare", mock.Anything, mock.Anything).Return((*models.Comparison)(nil), analysis.ErrNotEnoughEntries)
		handler := NewAnalysisHandler(svc)

		req := &models.CompareRequest{}
		req.Body.IDs = []string{uuid.New().String()}

		_, err := handler.CompareAnalyses(context.Background(), req)

		assertStatus(t, err, 400)
	})

	t.Run("missing analysis", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Compare", mock.Anything, mock.Anything).Return((*models.Comparison)(nil), sql.ErrNoRows)
		handler := NewAnalysisHandler(svc)

		req := &models.CompareRequest{}
		req.Body.IDs = []string{uuid.New().String(), uuid.New().String()}

		_, err := handler.CompareAnalyses(context.Background(), req)

		assertStatus(t, err, 404)
	})
}

func TestListCarriers(t *testing.T) {
	svc := new(MockService)
	svc.On("Carriers").Return(bands.DefaultCarriers())
	handler := NewAnalysisHandler(svc)

	resp, err := handler.ListCarriers(context.Background(), &struct{}{})

	require.NoError(t, err)
	require.Len(t, resp.Body.Carriers, 3)
	assert.Equal(t, "Verizon", resp.Body.Carriers[0].Name)
}

func TestBestDevice(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		record := sampleRecord()
		best := &models.BestDevice{
			Carrier:  "Verizon",
			Analysis: record,
			Score:    5,
			Ranking:  []models.DeviceScore{{Model: record.Model, Score: 5}},
		}
		svc := new(MockService)
		svc.On("BestDevice", mock.Anything, "Verizon").Return(best, nil)
		handler := NewAnalysisHandler(svc)

		resp, err := handler.BestDevice(context.Background(), &models.BestDeviceRequest{Name: "Verizon"})

		require.NoError(t, err)
		assert.Equal(t, record.Model, resp.Body.Analysis.Model)
		assert.Equal(t, 5.0, resp.Body.Score)
	})

	t.Run("unknown carrier", func(t *testing.T) {
		svc := new(MockService)
		svc.On("BestDevice", mock.Anything, "Sprint").Return((*models.BestDevice)(nil), analysis.ErrUnknownCarrier)
		handler := NewAnalysisHandler(svc)

		_, err := handler.BestDevice(context.Background(), &models.BestDeviceRequest{Name: "Sprint"})

		assertStatus(t, err, 404)
	})

	t.Run("empty history", func(t *testing.T) {
		svc := new(MockService)
		svc.On("BestDevice", mock.Anything, "Verizon").Return((*models.BestDevice)(nil), analysis.ErrNoDevices)
		handler := NewAnalysisHandler(svc)

		_, err := handler.BestDevice(context.Background(), &models.BestDeviceRequest{Name: "Verizon"})

		assertStatus(t, err, 404)
	})
}

func TestExportComparisonCSV(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		a, b := uuid.New(), uuid.New()
		cmp := &models.Comparison{
			Rows: []models.ComparisonRow{
				{
					Model:          "Pixel 9",
					Carrier:        "Verizon",
					Score:          8,
					SupportedLTE:   []int{2, 4, 13, 66},
					SupportedNR:    []int{},
					MissingCoreLTE: []int{},
					Status:         "Excellent",
				},
			},
		}
		svc := new(MockService)
		svc.On("Compare", mock.Anything, []uuid.UUID{a, b}).Return(cmp, nil)
		handler := NewAnalysisHandler(svc)

		req := httptest.NewRequest("GET", "/api/analyses/compare/export?ids="+a.String()+","+b.String(), nil)
		rec := httptest.NewRecorder()

		handler.ExportComparisonCSV(rec, req)

		assert.Equal(t, 200, rec.Code)
		assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "device_comparison.csv")

		lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], "Compatibility Score")
		assert.Contains(t, lines[1], "Pixel 9")
	})

	t.Run("malformed id", func(t *testing.T) {
		handler := NewAnalysisHandler(new(MockService))

		req := httptest.NewRequest("GET", "/api/analyses/compare/export?ids=nope", nil)
		rec := httptest.NewRecorder()

		handler.ExportComparisonCSV(rec, req)

		assert.Equal(t, 400, rec.Code)
	})

	t.Run("not enough entries", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Compare", mock.Anything, mock.Anything).Return((*models.Comparison)(nil), analysis.ErrNotEnoughEntries)
		handler := NewAnalysisHandler(svc)

		req := httptest.NewRequest("GET", "/api/analyses/compare/export?ids="+uuid.New().String(), nil)
		rec := httptest.NewRecorder()

		handler.ExportComparisonCSV(rec, req)

		assert.Equal(t, 400, rec.Code)
	})
}
