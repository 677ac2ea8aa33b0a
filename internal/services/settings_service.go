package services

import (
	"context"
	"math"
	"strconv"

	"github.com/vytor/lotto/internal/errors"
	"github.com/vytor/lotto/internal/logger"
	"github.com/vytor/lotto/internal/models"
	"github.com/vytor/lotto/internal/repository"
)

const toleranceKey = "tolerance_days"

// SettingsService reads and updates user settings
type SettingsService interface {
	GetSettings(ctx context.Context) (models.Settings, error)
	UpdateSettings(ctx context.Context, settings models.Settings) (models.Settings, error)
}

type settingsService struct {
	settingsRepo     repository.SettingsRepository
	defaultTolerance float64
}

// NewSettingsService creates a new SettingsService. defaultTolerance is used
// until a tolerance has been stored.
func NewSettingsService(settingsRepo repository.SettingsRepository, defaultTolerance float64) SettingsService {
	return &settingsService{
		settingsRepo:     settingsRepo,
		defaultTolerance: defaultTolerance,
	}
}

func (s *settingsService) GetSettings(ctx context.Context) (models.Settings, error) {
	log := logger.FromContext(ctx)

	raw, ok, err := s.settingsRepo.Get(ctx, toleranceKey)
	if err != nil {
		log.Error("failed to load settings: %v", err)
		return models.Settings{}, errors.NewInternalError(err)
	}
	if !ok {
		return models.Settings{ToleranceDays: s.defaultTolerance}, nil
	}

	tolerance, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Warn("stored tolerance %q is not a number, using default %v", raw, s.defaultTolerance)
		return models.Settings{ToleranceDays: s.defaultTolerance}, nil
	}
	return models.Settings{ToleranceDays: tolerance}, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, settings models.Settings) (models.Settings, error) {
	log := logger.FromContext(ctx)
	log.Debug("updating settings: tolerance_days=%v", settings.ToleranceDays)

	if math.IsNaN(settings.ToleranceDays) || math.IsInf(settings.ToleranceDays, 0) || settings.ToleranceDays < 0 {
		return models.Settings{}, errors.NewValidationError("tolerance_days", "must be a non-negative number of days")
	}

	value := strconv.FormatFloat(settings.ToleranceDays, 'f', -1, 64)
	if err := s.settingsRepo.Set(ctx, toleranceKey, value); err != nil {
		log.Error("failed to store settings: %v", err)
		return models.Settings{}, errors.NewInternalError(err)
	}
	log.Info("settings updated: tolerance_days=%s", value)
	return settings, nil
}
