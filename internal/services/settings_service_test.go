package services_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vytor/lotto/internal/errors"
	"github.com/vytor/lotto/internal/models"
	"github.com/vytor/lotto/internal/services"
	"github.com/vytor/lotto/internal/testutil/mocks"
)

func TestSettingsService_GetSettings(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		found  bool
		want   float64
	}{
		{"default when unset", "", false, 3},
		{"stored value", "1.5", true, 1.5},
		{"default when unparsable", "soon", true, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := new(mocks.MockSettingsRepository)
			repo.On("Get", ctx, "tolerance_days").Return(tt.stored, tt.found, nil)

			settings, err := services.NewSettingsService(repo, 3).GetSettings(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, settings.ToleranceDays)
		})
	}
}

func TestSettingsService_UpdateSettings(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockSettingsRepository)
	repo.On("Set", ctx, "tolerance_days", "2.5").Return(nil)
	svc := services.NewSettingsService(repo, 3)

	updated, err := svc.UpdateSettings(ctx, models.Settings{ToleranceDays: 2.5})
	require.NoError(t, err)
	assert.Equal(t, 2.5, updated.ToleranceDays)
	repo.AssertExpectations(t)
}

func TestSettingsService_UpdateSettings_Rejects(t *testing.T) {
	for _, v := range []float64{-0.5, math.NaN(), math.Inf(1)} {
		repo := new(mocks.MockSettingsRepository)
		svc := services.NewSettingsService(repo, 3)

		_, err := svc.UpdateSettings(context.Background(), models.Settings{ToleranceDays: v})
		requireAppError(t, err, errors.ErrCodeValidation)
		repo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
	}
}
