package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-screener/internal/types"
)

// BatchSummary is a lightweight view of a stored batch for listing
type BatchSummary struct {
	ID          uuid.UUID `json:"id"`
	ResumeCount int       `json:"resume_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// SaveBatch stores a batch report and all of its per-resume results
// in one transaction.
func (db *DB) SaveBatch(ctx context.Context, batch *types.BatchReport) error {
	profileJSON, err := json.Marshal(batch.JDProfile)
	if err != nil {
		return fmt.Errorf("failed to marshal jd profile: %w", err)
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx,
		`INSERT INTO screening_batches (id, jd_profile) VALUES ($1, $2)`,
		batch.ID, profileJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save batch: %w", err)
	}

	for _, report := range batch.Results {
		var detailsJSON []byte
		if report.Details != nil {
			detailsJSON, err = json.Marshal(report.Details)
			if err != nil {
				return fmt.Errorf("failed to marshal report details: %w", err)
			}
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO screening_reports (id, batch_id, filename, rank, final_score, details, error)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			report.ID, batch.ID, report.Filename, report.Rank, report.FinalScore, detailsJSON, nullIfEmpty(report.Error),
		)
		if err != nil {
			return fmt.Errorf("failed to save report %s: %w", report.Filename, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}
	return nil
}

// GetBatch retrieves a stored batch with its ranked results, or nil if absent.
func (db *DB) GetBatch(ctx context.Context, batchID uuid.UUID) (*types.BatchReport, error) {
	var profileJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT jd_profile FROM screening_batches WHERE id = $1`,
		batchID,
	).Scan(&profileJSON)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get batch: %w", err)
	}

	batch := &types.BatchReport{ID: batchID}
	if err := json.Unmarshal(profileJSON, &batch.JDProfile); err != nil {
		return nil, fmt.Errorf("failed to parse jd profile: %w", err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, filename, rank, final_score, details, error
		 FROM screening_reports WHERE batch_id = $1 ORDER BY rank ASC`,
		batchID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var report types.Report
		var detailsJSON []byte
		var errText *string
		if err := rows.Scan(&report.ID, &report.Filename, &report.Rank, &report.FinalScore, &detailsJSON, &errText); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		if len(detailsJSON) > 0 {
			if err := json.Unmarshal(detailsJSON, &report.Details); err != nil {
				return nil, fmt.Errorf("failed to parse report details: %w", err)
			}
		}
		if errText != nil {
			report.Error = *errText
		}
		batch.Results = append(batch.Results, &report)
	}
	return batch, nil
}

// ListBatches retrieves recent batches, newest first.
func (db *DB) ListBatches(ctx context.Context, limit int) ([]BatchSummary, error) {
	if limit == 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT b.id, COUNT(r.id), b.created_at
		 FROM screening_batches b
		 LEFT JOIN screening_reports r ON r.batch_id = b.id
		 GROUP BY b.id, b.created_at
		 ORDER BY b.created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list batches: %w", err)
	}
	defer rows.Close()

	var batches []BatchSummary
	for rows.Next() {
		var b BatchSummary
		if err := rows.Scan(&b.ID, &b.ResumeCount, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan batch: %w", err)
		}
		batches = append(batches, b)
	}
	return batches, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
