package services

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/vytor/lotto/internal/errors"
	"github.com/vytor/lotto/internal/logger"
	"github.com/vytor/lotto/internal/models"
	"github.com/vytor/lotto/internal/recurrence"
	"github.com/vytor/lotto/internal/repository"
)

// StatsService runs the recurrence engine over the stored draw history
type StatsService interface {
	Frequencies(ctx context.Context) ([]models.FrequencyStat, error)
	NumberStats(ctx context.Context) ([]models.NumberStat, error)
	// Predictions lists the numbers expected within tolerance of target. A nil
	// tolerance uses the stored setting.
	Predictions(ctx context.Context, target time.Time, tolerance *float64) (*models.PredictionResult, error)
}

type statsService struct {
	drawRepo repository.DrawRepository
	settings SettingsService
}

// NewStatsService creates a new StatsService
func NewStatsService(drawRepo repository.DrawRepository, settings SettingsService) StatsService {
	return &statsService{drawRepo: drawRepo, settings: settings}
}

func (s *statsService) Frequencies(ctx context.Context) ([]models.FrequencyStat, error) {
	log := logger.FromContext(ctx)

	draws, err := s.history(ctx)
	if err != nil {
		return nil, err
	}
	ranked := recurrence.RankByFrequency(recurrence.Frequencies(draws))
	log.Debug("frequency report over %d draws: %d numbers", len(draws), len(ranked))
	return ranked, nil
}

func (s *statsService) NumberStats(ctx context.Context) ([]models.NumberStat, error) {
	stats, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.NumberStat, 0, len(stats))
	for _, n := range recurrence.SortedNumbers(stats) {
		out = append(out, stats[n])
	}
	return out, nil
}

func (s *statsService) Predictions(ctx context.Context, target time.Time, tolerance *float64) (*models.PredictionResult, error) {
	log := logger.FromContext(ctx)

	if target.IsZero() {
		return nil, errors.NewValidationError("date", "target date is required")
	}

	var toleranceDays float64
	if tolerance != nil {
		toleranceDays = *tolerance
	} else {
		settings, err := s.settings.GetSettings(ctx)
		if err != nil {
			return nil, err
		}
		toleranceDays = settings.ToleranceDays
	}

	stats, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}
	predictions := recurrence.Predict(stats)

	day := recurrence.Day(target)
	numbers, err := recurrence.WithinTolerance(predictions, day, toleranceDays)
	if err != nil {
		if stderrors.Is(err, recurrence.ErrInvalidTolerance) {
			return nil, errors.NewValidationError("tolerance", err.Error())
		}
		log.Error("tolerance filter failed: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Debug("predictions for %s tol=%v: %d of %d candidates",
		day.Format(time.DateOnly), toleranceDays, len(numbers), len(predictions))
	return &models.PredictionResult{
		TargetDate:    day,
		ToleranceDays: toleranceDays,
		Numbers:       numbers,
		Candidates:    len(predictions),
	}, nil
}

func (s *statsService) compute(ctx context.Context) (map[int]models.NumberStat, error) {
	draws, err := s.history(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := recurrence.Compute(draws)
	if err != nil {
		return nil, engineError(ctx, err)
	}
	return stats, nil
}

func (s *statsService) history(ctx context.Context) ([]models.Draw, error) {
	draws, err := s.drawRepo.History(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to load draw history: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return draws, nil
}

func engineError(ctx context.Context, err error) error {
	log := logger.FromContext(ctx)
	switch {
	case stderrors.Is(err, recurrence.ErrNegativeGap), stderrors.Is(err, recurrence.ErrMissingDate):
		log.Warn("draw history rejected: %v", err)
		return errors.NewDataIntegrityError(err)
	default:
		log.Error("statistics computation failed: %v", err)
		return errors.NewInternalError(err)
	}
}
