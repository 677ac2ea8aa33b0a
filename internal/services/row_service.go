package services

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/vytor/lotto/internal/errors"
	"github.com/vytor/lotto/internal/logger"
	"github.com/vytor/lotto/internal/models"
	"github.com/vytor/lotto/internal/recurrence"
	"github.com/vytor/lotto/internal/repository"
)

// RowService handles the user's played rows
type RowService interface {
	CreateRow(ctx context.Context, row models.Row) (*models.Row, error)
	ListRows(ctx context.Context, filter models.RowFilter) ([]models.Row, error)
	DeleteRow(ctx context.Context, id int64) error
}

type rowService struct {
	rowRepo repository.RowRepository
}

// NewRowService creates a new RowService
func NewRowService(rowRepo repository.RowRepository) RowService {
	return &rowService{rowRepo: rowRepo}
}

func (s *rowService) CreateRow(ctx context.Context, row models.Row) (*models.Row, error) {
	log := logger.FromContext(ctx)
	log.Debug("creating row: numbers=%v", row.Numbers)

	if err := validateDate("row_date", row.RowDate); err != nil {
		return nil, err
	}
	if err := validateNumbers("numbers", row.Numbers[:]); err != nil {
		return nil, err
	}
	row.RowDate = recurrence.Day(row.RowDate)
	row.WeekNumber = WeekNumber(row.RowDate)

	id, err := s.rowRepo.Insert(ctx, row)
	if err != nil {
		log.Error("failed to insert row: %v", err)
		return nil, errors.NewInternalError(err)
	}
	row.ID = id
	return &row, nil
}

func (s *rowService) ListRows(ctx context.Context, filter models.RowFilter) ([]models.Row, error) {
	log := logger.FromContext(ctx)

	if filter.Date != nil {
		d := recurrence.Day(*filter.Date)
		filter.Date = &d
	}
	rows, err := s.rowRepo.List(ctx, filter)
	if err != nil {
		log.Error("failed to list rows: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if rows == nil {
		rows = []models.Row{}
	}
	return rows, nil
}

func (s *rowService) DeleteRow(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)
	log.Debug("deleting row: id=%d", id)

	if err := s.rowRepo.Delete(ctx, id); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return errors.NewNotFoundError("row", id)
		}
		log.Error("failed to delete row: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}
