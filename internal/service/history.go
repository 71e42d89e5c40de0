package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"edgenudge/internal/models"
	"edgenudge/internal/repository"
)

// HistoryFilter narrows the prediction log query.
type HistoryFilter struct {
	From  time.Time // inclusive; zero means no lower bound
	To    time.Time // inclusive; zero means no upper bound
	Label string    // "", "EMPTY", "OCCUPIED"
}

var errInvalidTimeRange = errors.New("invalid time range: From must be <= To")

type HistoryService struct {
	records repository.PredictionRepo
}

func NewHistoryService(records repository.PredictionRepo) *HistoryService {
	return &HistoryService{records: records}
}

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

func (s *HistoryService) List(ctx context.Context, f HistoryFilter) ([]models.PredictionRecord, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)

	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return nil, errInvalidTimeRange
	}

	label := strings.TrimSpace(strings.ToUpper(f.Label))
	return s.records.List(ctx, from, to, label)
}
