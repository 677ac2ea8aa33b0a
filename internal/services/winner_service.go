package services

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"github.com/vytor/lotto/internal/errors"
	"github.com/vytor/lotto/internal/logger"
	"github.com/vytor/lotto/internal/matching"
	"github.com/vytor/lotto/internal/models"
	"github.com/vytor/lotto/internal/recurrence"
	"github.com/vytor/lotto/internal/repository"
)

// WinnerService compares played rows with the jackpot draw of a date
type WinnerService interface {
	FindWinners(ctx context.Context, date time.Time) ([]models.RowComparison, error)
}

type winnerService struct {
	drawRepo repository.DrawRepository
	rowRepo  repository.RowRepository
}

// NewWinnerService creates a new WinnerService
func NewWinnerService(drawRepo repository.DrawRepository, rowRepo repository.RowRepository) WinnerService {
	return &winnerService{drawRepo: drawRepo, rowRepo: rowRepo}
}

func (s *winnerService) FindWinners(ctx context.Context, date time.Time) ([]models.RowComparison, error) {
	day := recurrence.Day(date)
	log := logger.FromContext(ctx).WithField("date", day.Format(time.DateOnly))
	log.Debug("finding winners")

	draw, err := s.drawRepo.GetByDate(ctx, day)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NewNotFoundError("draw on date", day.Format(time.DateOnly))
		}
		log.Error("failed to get draw: %v", err)
		return nil, errors.NewInternalError(err)
	}

	rows, err := s.rowRepo.List(ctx, models.RowFilter{Date: &day})
	if err != nil {
		log.Error("failed to list rows: %v", err)
		return nil, errors.NewInternalError(err)
	}

	results := matching.Compare(rows, *draw)
	log.Debug("compared %d rows against draw id=%d", len(results), draw.ID)
	return results, nil
}
