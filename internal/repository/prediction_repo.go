package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"edgenudge/internal/models"

	"github.com/google/uuid"
)

type PredictionSQLite struct {
	db *sql.DB
}

func NewPredictionSQLite(db *sql.DB) *PredictionSQLite { return &PredictionSQLite{db: db} }

var _ PredictionRepo = (*PredictionSQLite)(nil)

const (
	insertPredictionSQL = `
		INSERT INTO prediction_log (id, occurred_at, source, label, latency_ms, reading, estimate)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	selectPredictionsSQL = `SELECT id, occurred_at, source, label, latency_ms, reading, estimate FROM prediction_log`
)

// sqliteTimestamp is the TIMESTAMP column format.
const sqliteTimestamp = "2006-01-02 15:04:05"

// Append inserts one record. ID and OccurredAt are filled when empty.
func (r *PredictionSQLite) Append(ctx context.Context, rec models.PredictionRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.OccurredAt.IsZero() {
		rec.OccurredAt = time.Now().UTC()
	} else {
		rec.OccurredAt = rec.OccurredAt.UTC()
	}

	readingJSON, err := json.Marshal(rec.Reading)
	if err != nil {
		return fmt.Errorf("marshal reading: %w", err)
	}

	var estimatePtr *string
	if rec.Estimate != nil {
		b, err := json.Marshal(rec.Estimate)
		if err != nil {
			return fmt.Errorf("marshal estimate: %w", err)
		}
		s := string(b)
		estimatePtr = &s
	}

	_, err = r.db.ExecContext(ctx, insertPredictionSQL,
		rec.ID,
		rec.OccurredAt.Format(sqliteTimestamp),
		rec.Source,
		string(rec.Label),
		rec.LatencyMs,
		string(readingJSON),
		estimatePtr,
	)
	return err
}

// List returns records filtered by [from, to] (inclusive) and/or label,
// ordered by time ascending.
func (r *PredictionSQLite) List(ctx context.Context, from, to time.Time, label string) ([]models.PredictionRecord, error) {
	var (
		conds []string
		args  []any
	)

	// Bounds must be bound in the same text layout Append writes, or
	// the comparison degrades to mismatched-string ordering and the
	// inclusive boundaries misfilter.
	if !from.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, from.UTC().Format(sqliteTimestamp))
	}
	if !to.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, to.UTC().Format(sqliteTimestamp))
	}
	if label = strings.ToUpper(strings.TrimSpace(label)); label != "" {
		conds = append(conds, "label = ?")
		args = append(args, label)
	}

	q := selectPredictionsSQL
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY occurred_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.PredictionRecord, 0, 64)
	for rows.Next() {
		var (
			rec         models.PredictionRecord
			label       string
			readingStr  string
			estimateStr sql.NullString
		)
		if err := rows.Scan(&rec.ID, &rec.OccurredAt, &rec.Source, &label, &rec.LatencyMs, &readingStr, &estimateStr); err != nil {
			return nil, err
		}
		rec.OccurredAt = rec.OccurredAt.UTC()
		rec.Label = models.Label(label)

		if err := json.Unmarshal([]byte(readingStr), &rec.Reading); err != nil {
			return nil, fmt.Errorf("unmarshal reading for record %s: %w", rec.ID, err)
		}
		if estimateStr.Valid && estimateStr.String != "" {
			var est models.SavingsEstimate
			if err := json.Unmarshal([]byte(estimateStr.String), &est); err == nil {
				rec.Estimate = &est
			}
			// malformed estimate JSON is dropped, the record itself stays
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
