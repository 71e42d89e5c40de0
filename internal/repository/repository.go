package repository

import (
	"context"
	"database/sql"
	"time"

	"edgenudge/internal/models"
)

// PredictionRepo is the append-only prediction audit log.
type PredictionRepo interface {
	Append(ctx context.Context, rec models.PredictionRecord) error
	List(ctx context.Context, from, to time.Time, label string) ([]models.PredictionRecord, error)
}

// Operators stores accounts allowed to drive the demo API.
type Operators interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.Operator, error)
}

type Repository struct {
	Predictions PredictionRepo
	Operators   Operators
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Predictions: NewPredictionSQLite(db),
		Operators:   NewOperatorSQLite(db),
	}
}
