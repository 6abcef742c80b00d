package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-matcher/internal/types"
)

// SaveRecord upserts an extraction record keyed by its unique ID.
func (db *DB) SaveRecord(ctx context.Context, record *types.ExtractionRecord) error {
	id, err := uuid.Parse(record.UniqueID)
	if err != nil {
		return fmt.Errorf("invalid record id %q: %w", record.UniqueID, err)
	}

	jsonBytes, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO extraction_records (id, doc_type, raw_text, record)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE SET doc_type = $2, raw_text = $3, record = $4`,
		id, string(record.DocType), record.RawText, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save record %s: %w", record.UniqueID, err)
	}
	return nil
}

// GetRecord retrieves one record by unique ID, or nil when absent.
func (db *DB) GetRecord(ctx context.Context, uniqueID string) (*types.ExtractionRecord, error) {
	id, err := uuid.Parse(uniqueID)
	if err != nil {
		return nil, fmt.Errorf("invalid record id %q: %w", uniqueID, err)
	}

	var jsonBytes []byte
	err = db.pool.QueryRow(ctx,
		`SELECT record FROM extraction_records WHERE id = $1`, id,
	).Scan(&jsonBytes)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get record %s: %w", uniqueID, err)
	}

	return unmarshalRecord(jsonBytes)
}

// ListRecords returns every stored record of one document type, newest
// first.
func (db *DB) ListRecords(ctx context.Context, docType types.DocumentType) ([]*types.ExtractionRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT record FROM extraction_records WHERE doc_type = $1 ORDER BY created_at DESC`,
		string(docType),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	var records []*types.ExtractionRecord
	for rows.Next() {
		var jsonBytes []byte
		if err := rows.Scan(&jsonBytes); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		record, err := unmarshalRecord(jsonBytes)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}
	return records, nil
}

// SaveMatch upserts a computed match score for a resume/job pair.
func (db *DB) SaveMatch(ctx context.Context, match types.MatchResult) error {
	resumeID, err := uuid.Parse(match.ResumeID)
	if err != nil {
		return fmt.Errorf("invalid resume id %q: %w", match.ResumeID, err)
	}
	jobID, err := uuid.Parse(match.JobID)
	if err != nil {
		return fmt.Errorf("invalid job id %q: %w", match.JobID, err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO match_scores (resume_id, job_id, score)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (resume_id, job_id) DO UPDATE SET score = $3, created_at = NOW()`,
		resumeID, jobID, match.Score,
	)
	if err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}
	return nil
}

// TopMatches returns the highest scoring resumes for a job.
func (db *DB) TopMatches(ctx context.Context, jobID string, limit int) ([]types.MatchResult, error) {
	id, err := uuid.Parse(jobID)
	if err != nil {
		return nil, fmt.Errorf("invalid job id %q: %w", jobID, err)
	}
	if limit <= 0 {
		limit = 10
	}

	rows, err := db.pool.Query(ctx,
		`SELECT resume_id, job_id, score FROM match_scores
		 WHERE job_id = $1 ORDER BY score DESC LIMIT $2`,
		id, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var matches []types.MatchResult
	for rows.Next() {
		var resumeID, matchJobID uuid.UUID
		var match types.MatchResult
		if err := rows.Scan(&resumeID, &matchJobID, &match.Score); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		match.ResumeID = resumeID.String()
		match.JobID = matchJobID.String()
		matches = append(matches, match)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate matches: %w", err)
	}
	return matches, nil
}

func unmarshalRecord(jsonBytes []byte) (*types.ExtractionRecord, error) {
	var record types.ExtractionRecord
	if err := json.Unmarshal(jsonBytes, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}
	return &record, nil
}
