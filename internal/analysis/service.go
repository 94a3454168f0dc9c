// Package analysis runs band extraction and carrier evaluation over the
// stored history: analyzing new devices, comparing saved ones, and
// picking the best device for a carrier.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/bandcheck/bandcheck/internal/bands"
	"github.com/bandcheck/bandcheck/internal/repository"
	"github.com/bandcheck/bandcheck/pkg/models"
)

var (
	// ErrNotEnoughEntries is returned by Compare with fewer than two IDs.
	ErrNotEnoughEntries = errors.New("at least two analyses are required to compare")
	// ErrUnknownCarrier is returned for carrier names not in the table.
	ErrUnknownCarrier = errors.New("unknown carrier")
	// ErrNoDevices is returned by BestDevice when history is empty.
	ErrNoDevices = errors.New("no analyzed devices in history")
)

// How many devices the best-device ranking lists.
const rankingLimit = 5

type Service interface {
	Analyze(ctx context.Context, model, text string) (*models.AnalysisRecord, bool, error)
	Get(ctx context.Context, id uuid.UUID) (*models.AnalysisRecord, error)
	History(ctx context.Context) ([]*models.AnalysisRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Compare(ctx context.Context, ids []uuid.UUID) (*models.Comparison, error)
	BestDevice(ctx context.Context, carrier string) (*models.BestDevice, error)
	Carriers() bands.CarrierTable
	Rank(record *models.AnalysisRecord) []bands.RankedCarrier
}

type service struct {
	repo     repository.AnalysisRepository
	carriers bands.CarrierTable
}

// NewService builds a Service evaluating against the given carrier table.
func NewService(repo repository.AnalysisRepository, carriers bands.CarrierTable) Service {
	return &service{
		repo:     repo,
		carriers: carriers,
	}
}

// Analyze extracts bands from text, evaluates them against every carrier,
// and stores the result. If an identical model/band combination is
// already in history the existing record is returned instead, flagged as
// a duplicate, and nothing new is stored.
func (s *service) Analyze(ctx context.Context, model, text string) (*models.AnalysisRecord, bool, error) {
	model = strings.TrimSpace(model)
	if model == "" {
		model = "Unknown Model"
	}

	lte, nr := bands.Extract(text)

	history, err := s.repo.List(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load history: %w", err)
	}
	for _, existing := range history {
		if existing.Model == model && equalBands(existing.LTEBands, lte) && equalBands(existing.NRBands, nr) {
			log.Info().Str("model", model).Str("analysisID", existing.ID).Msg("Duplicate analysis, returning existing record")
			return existing, true, nil
		}
	}

	record := &models.AnalysisRecord{
		ID:        uuid.New().String(),
		Model:     model,
		CreatedAt: time.Now().UTC(),
		LTEBands:  lte,
		NRBands:   nr,
		Reports:   bands.Evaluate(lte, nr, s.carriers),
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, false, fmt.Errorf("failed to store analysis: %w", err)
	}

	log.Info().
		Str("model", model).
		Str("analysisID", record.ID).
		Ints("lteBands", lte).
		Ints("nrBands", nr).
		Msg("Analysis stored")
	return record, false, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.AnalysisRecord, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) History(ctx context.Context) ([]*models.AnalysisRecord, error) {
	return s.repo.List(ctx)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) Carriers() bands.CarrierTable {
	return s.carriers
}

// Rank orders the record's per-carrier reports by descending score.
func (s *service) Rank(record *models.AnalysisRecord) []bands.RankedCarrier {
	return bands.Rank(s.carriers, record.Reports)
}

// Compare builds the multi-device comparison for the given analyses, in
// the order the IDs were supplied.
func (s *service) Compare(ctx context.Context, ids []uuid.UUID) (*models.Comparison, error) {
	if len(ids) < 2 {
		return nil, ErrNotEnoughEntries
	}

	records := make([]*models.AnalysisRecord, 0, len(ids))
	for _, id := range ids {
		record, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to load analysis %s: %w", id, err)
		}
		records = append(records, record)
	}

	cmp := &models.Comparison{
		Rows:    make([]models.ComparisonRow, 0, len(records)*len(s.carriers)),
		Metrics: make([]models.DeviceMetrics, 0, len(records)),
	}

	for _, record := range records {
		supportedLTE := make(map[int]struct{})
		supportedNR := make(map[int]struct{})
		totalMissingCore := 0

		for _, carrier := range s.carriers {
			report, ok := record.Reports[carrier.Name]
			if !ok {
				continue
			}
			cmp.Rows = append(cmp.Rows, models.ComparisonRow{
				Model:          record.Model,
				Carrier:        carrier.Name,
				Score:          report.Score(),
				SupportedLTE:   report.SupportedLTE,
				SupportedNR:    report.SupportedNR,
				MissingCoreLTE: report.MissingCoreLTE,
				Status:         coverageStatus(report),
			})
			for _, b := range report.SupportedLTE {
				supportedLTE[b] = struct{}{}
			}
			for _, b := range report.SupportedNR {
				supportedNR[b] = struct{}{}
			}
			totalMissingCore += len(report.MissingCoreLTE)
		}

		cmp.Metrics = append(cmp.Metrics, models.DeviceMetrics{
			Model:               record.Model,
			DetectedLTECount:    len(record.LTEBands),
			DetectedNRCount:     len(record.NRBands),
			OverallSupportedLTE: sortedKeys(supportedLTE),
			OverallSupportedNR:  sortedKeys(supportedNR),
			TotalMissingCore:    totalMissingCore,
		})
	}

	cmp.BestLTE = bestModels(cmp.Metrics, func(m models.DeviceMetrics) int { return len(m.OverallSupportedLTE) }, true)
	cmp.BestNR = bestModels(cmp.Metrics, func(m models.DeviceMetrics) int { return len(m.OverallSupportedNR) }, true)
	cmp.BestCoverage = bestModels(cmp.Metrics, func(m models.DeviceMetrics) int { return m.TotalMissingCore }, false)

	return cmp, nil
}

// BestDevice returns the highest-scoring device in history for the named
// carrier. The first device analyzed wins exact score ties.
func (s *service) BestDevice(ctx context.Context, carrier string) (*models.BestDevice, error) {
	if _, ok := s.carriers.Get(carrier); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCarrier, carrier)
	}

	history, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	if len(history) == 0 {
		return nil, ErrNoDevices
	}

	best := &models.BestDevice{Carrier: carrier, Score: -1}
	scores := make([]models.DeviceScore, 0, len(history))
	for _, record := range history {
		report, ok := record.Reports[carrier]
		if !ok {
			continue
		}
		score := report.Score()
		scores = append(scores, models.DeviceScore{Model: record.Model, Score: score})
		if score > best.Score {
			best.Score = score
			best.Analysis = record
		}
	}
	if best.Analysis == nil {
		return nil, ErrNoDevices
	}

	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Score > scores[j].Score })
	if len(scores) > rankingLimit {
		scores = scores[:rankingLimit]
	}
	best.Ranking = scores

	return best, nil
}

// coverageStatus grades a report by its missing core bands alone: missing
// core bands hurt service far more than any count of extras helps.
func coverageStatus(report bands.Report) string {
	switch {
	case len(report.MissingCoreLTE) == 0:
		return "Excellent"
	case len(report.MissingCoreLTE) == 1:
		return "Good"
	default:
		return "Limited"
	}
}

// bestModels returns every model tied at the best value, first-seen
// order. higher selects between max-wins and min-wins metrics.
func bestModels(metrics []models.DeviceMetrics, value func(models.DeviceMetrics) int, higher bool) []string {
	if len(metrics) == 0 {
		return nil
	}
	best := value(metrics[0])
	for _, m := range metrics[1:] {
		v := value(m)
		if (higher && v > best) || (!higher && v < best) {
			best = v
		}
	}
	var winners []string
	for _, m := range metrics {
		if value(m) == best {
			winners = append(winners, m.Model)
		}
	}
	return winners
}

func equalBands(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
