package services_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/lotto/internal/errors"
	"github.com/vytor/lotto/internal/models"
	"github.com/vytor/lotto/internal/services"
	"github.com/vytor/lotto/internal/testutil/mocks"
)

func TestWinnerService_FindWinners(t *testing.T) {
	ctx := context.Background()
	day := date(t, "2026-01-03")
	draws := new(mocks.MockDrawRepository)
	rows := new(mocks.MockRowRepository)

	draw := newDraw(t, "2026-01-03", 1, 2, 3, 4, 5, 6, 7, 8)
	draws.On("GetByDate", ctx, day).Return(&draw, nil)
	rows.On("List", ctx, models.RowFilter{Date: &day}).Return([]models.Row{
		{ID: 1, RowDate: day, Numbers: [models.RowSize]int{10, 11, 12, 13, 14, 15, 16}},
		{ID: 2, RowDate: day, Numbers: [models.RowSize]int{1, 2, 3, 8, 20, 21, 22}},
	}, nil)

	results, err := services.NewWinnerService(draws, rows).FindWinners(ctx, day)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, int64(2), results[0].Row.ID)
	assert.Equal(t, []int{1, 2, 3}, results[0].MatchedNumbers)
	require.NotNil(t, results[0].MatchedExtraNumber)
	assert.Equal(t, 8, *results[0].MatchedExtraNumber)
	assert.Equal(t, 0, results[1].MatchCount)
}

func TestWinnerService_NoDraw(t *testing.T) {
	ctx := context.Background()
	day := date(t, "2026-01-10")
	draws := new(mocks.MockDrawRepository)
	draws.On("GetByDate", ctx, day).Return(nil, sql.ErrNoRows)

	_, err := services.NewWinnerService(draws, new(mocks.MockRowRepository)).FindWinners(ctx, day)
	requireAppError(t, err, errors.ErrCodeNotFound)
}
