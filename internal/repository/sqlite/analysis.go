package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/bandcheck/bandcheck/internal/bands"
	"github.com/bandcheck/bandcheck/internal/repository"
	"github.com/bandcheck/bandcheck/pkg/models"
)

// Open opens (or creates) the history database at path and ensures the
// schema exists.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS analyses (
			id TEXT PRIMARY KEY,
			model TEXT NOT NULL,
			lte_bands TEXT NOT NULL,
			nr_bands TEXT NOT NULL,
			reports TEXT NOT NULL,
			created_at TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// SQLiteAnalysisRepository implements AnalysisRepository on a local
// SQLite file. Band lists and the report map are stored as JSON columns.
type SQLiteAnalysisRepository struct {
	db *sql.DB
}

// NewSQLiteAnalysisRepository creates a new SQLite analysis repository
func NewSQLiteAnalysisRepository(db *sql.DB) repository.AnalysisRepository {
	return &SQLiteAnalysisRepository{db: db}
}

// Create inserts a new analysis record
func (r *SQLiteAnalysisRepository) Create(ctx context.Context, record *models.AnalysisRecord) error {
	lteJSON, err := json.Marshal(record.LTEBands)
	if err != nil {
		return fmt.Errorf("failed to marshal lte bands: %w", err)
	}
	nrJSON, err := json.Marshal(record.NRBands)
	if err != nil {
		return fmt.Errorf("failed to marshal nr bands: %w", err)
	}
	reportsJSON, err := json.Marshal(record.Reports)
	if err != nil {
		return fmt.Errorf("failed to marshal reports: %w", err)
	}

	query := `
		INSERT INTO analyses (id, model, lte_bands, nr_bands, reports, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err = r.db.ExecContext(ctx, query,
		record.ID,
		record.Model,
		string(lteJSON),
		string(nrJSON),
		string(reportsJSON),
		record.CreatedAt.UTC().Format(time.RFC3339Nano))

	return err
}

// GetByID retrieves an analysis record by ID
func (r *SQLiteAnalysisRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AnalysisRecord, error) {
	query := `
		SELECT id, model, lte_bands, nr_bands, reports, created_at
		FROM analyses
		WHERE id = ?`

	return scanRecord(r.db.QueryRowContext(ctx, query, id.String()))
}

// List retrieves all analysis records, oldest first. The stored order is
// the order analyses ran, which downstream tie-breaking relies on.
func (r *SQLiteAnalysisRepository) List(ctx context.Context) ([]*models.AnalysisRecord, error) {
	query := `
		SELECT id, model, lte_bands, nr_bands, reports, created_at
		FROM analyses
		ORDER BY created_at, rowid`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.AnalysisRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// Delete removes an analysis record
func (r *SQLiteAnalysisRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM analyses WHERE id = ?`, id.String())
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*models.AnalysisRecord, error) {
	var record models.AnalysisRecord
	var lteJSON, nrJSON, reportsJSON, createdAt string

	err := row.Scan(
		&record.ID,
		&record.Model,
		&lteJSON,
		&nrJSON,
		&reportsJSON,
		&createdAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(lteJSON), &record.LTEBands); err != nil {
		return nil, fmt.Errorf("failed to unmarshal lte bands: %w", err)
	}
	if err := json.Unmarshal([]byte(nrJSON), &record.NRBands); err != nil {
		return nil, fmt.Errorf("failed to unmarshal nr bands: %w", err)
	}
	record.Reports = make(map[string]bands.Report)
	if err := json.Unmarshal([]byte(reportsJSON), &record.Reports); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reports: %w", err)
	}
	record.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &record, nil
}
