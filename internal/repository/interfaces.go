package repository

import (
	"context"

	"github.com/bandcheck/bandcheck/pkg/models"
	"github.com/google/uuid"
)

// AnalysisRepository defines the interface for analysis history storage
type AnalysisRepository interface {
	Create(ctx context.Context, record *models.AnalysisRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.AnalysisRecord, error)
	List(ctx context.Context) ([]*models.AnalysisRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
