package services

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"github.com/vytor/lotto/internal/errors"
	"github.com/vytor/lotto/internal/logger"
	"github.com/vytor/lotto/internal/models"
	"github.com/vytor/lotto/internal/recurrence"
	"github.com/vytor/lotto/internal/repository"
)

// DrawService handles jackpot draw business logic
type DrawService interface {
	CreateDraw(ctx context.Context, draw models.Draw) (*models.Draw, error)
	GetDraw(ctx context.Context, id int64) (*models.Draw, error)
	ListDraws(ctx context.Context, filter models.DrawFilter) ([]models.Draw, int, error)
	DeleteDraw(ctx context.Context, id int64) error
	DeleteAllDraws(ctx context.Context) (int64, error)
	CountDraws(ctx context.Context) (int, error)
}

type drawService struct {
	drawRepo        repository.DrawRepository
	enforceSaturday bool
}

// NewDrawService creates a new DrawService. With enforceSaturday set, new
// draws must fall on a Saturday.
func NewDrawService(drawRepo repository.DrawRepository, enforceSaturday bool) DrawService {
	return &drawService{
		drawRepo:        drawRepo,
		enforceSaturday: enforceSaturday,
	}
}

func (s *drawService) CreateDraw(ctx context.Context, draw models.Draw) (*models.Draw, error) {
	log := logger.FromContext(ctx)
	log.Debug("creating draw: date=%s, numbers=%v", draw.DrawDate.Format(time.DateOnly), draw.Numbers)

	if err := validateDate("draw_date", draw.DrawDate); err != nil {
		return nil, err
	}
	draw.DrawDate = recurrence.Day(draw.DrawDate)
	if s.enforceSaturday && draw.DrawDate.Weekday() != time.Saturday {
		return nil, errors.NewValidationError("draw_date", "draws take place on Saturdays, got "+draw.DrawDate.Weekday().String())
	}
	if err := validateNumbers("numbers", draw.Numbers[:]); err != nil {
		return nil, err
	}
	draw.WeekNumber = WeekNumber(draw.DrawDate)

	id, err := s.drawRepo.Insert(ctx, draw)
	if err != nil {
		log.Error("failed to insert draw: %v", err)
		return nil, errors.NewInternalError(err)
	}

	created, err := s.drawRepo.Get(ctx, id)
	if err != nil {
		log.Error("failed to reload draw: %v", err)
		return nil, errors.NewInternalError(err)
	}
	log.Info("draw created: id=%d, week=%d", created.ID, created.WeekNumber)
	return created, nil
}

func (s *drawService) GetDraw(ctx context.Context, id int64) (*models.Draw, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting draw: id=%d", id)

	draw, err := s.drawRepo.Get(ctx, id)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NewNotFoundError("draw", id)
		}
		log.Error("failed to get draw: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return draw, nil
}

func (s *drawService) ListDraws(ctx context.Context, filter models.DrawFilter) ([]models.Draw, int, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing draws: week=%d", filter.WeekNumber)

	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, 0, errors.NewValidationError("to", "must not be before from")
	}

	draws, err := s.drawRepo.List(ctx, filter)
	if err != nil {
		log.Error("failed to list draws: %v", err)
		return nil, 0, errors.NewInternalError(err)
	}

	total, err := s.drawRepo.Count(ctx, filter)
	if err != nil {
		log.Error("failed to count draws: %v", err)
		return nil, 0, errors.NewInternalError(err)
	}

	if draws == nil {
		draws = []models.Draw{}
	}
	return draws, total, nil
}

func (s *drawService) DeleteDraw(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)
	log.Debug("deleting draw: id=%d", id)

	if err := s.drawRepo.Delete(ctx, id); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return errors.NewNotFoundError("draw", id)
		}
		log.Error("failed to delete draw: %v", err)
		return errors.NewInternalError(err)
	}
	log.Info("draw deleted: id=%d", id)
	return nil
}

func (s *drawService) DeleteAllDraws(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	n, err := s.drawRepo.DeleteAll(ctx)
	if err != nil {
		log.Error("failed to delete draws: %v", err)
		return 0, errors.NewInternalError(err)
	}
	log.Info("all draws deleted: count=%d", n)
	return n, nil
}

func (s *drawService) CountDraws(ctx context.Context) (int, error) {
	n, err := s.drawRepo.Count(ctx, models.DrawFilter{})
	if err != nil {
		logger.FromContext(ctx).Error("failed to count draws: %v", err)
		return 0, errors.NewInternalError(err)
	}
	return n, nil
}
