package services_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vytor/lotto/internal/errors"
	"github.com/vytor/lotto/internal/models"
	"github.com/vytor/lotto/internal/services"
	"github.com/vytor/lotto/internal/testutil/mocks"
)

func TestRowService_CreateRow(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockRowRepository)
	repo.On("Insert", ctx, mock.MatchedBy(func(r models.Row) bool {
		return r.WeekNumber == 2
	})).Return(int64(5), nil)

	row, err := services.NewRowService(repo).CreateRow(ctx, models.Row{
		RowDate: date(t, "2026-01-10"),
		Numbers: [models.RowSize]int{1, 2, 3, 4, 5, 6, 34},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), row.ID)
	assert.Equal(t, 2, row.WeekNumber)
}

func TestRowService_CreateRow_OutOfRange(t *testing.T) {
	repo := new(mocks.MockRowRepository)

	_, err := services.NewRowService(repo).CreateRow(context.Background(), models.Row{
		RowDate: date(t, "2026-01-10"),
		Numbers: [models.RowSize]int{1, 2, 3, 4, 5, 6, 40},
	})
	requireAppError(t, err, errors.ErrCodeValidation)
}

func TestRowService_ListRows_Empty(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockRowRepository)
	repo.On("List", ctx, models.RowFilter{}).Return(nil, nil)

	rows, err := services.NewRowService(repo).ListRows(ctx, models.RowFilter{})
	require.NoError(t, err)
	assert.NotNil(t, rows)
}

func TestRowService_DeleteRow_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockRowRepository)
	repo.On("Delete", ctx, int64(9)).Return(sql.ErrNoRows)

	err := services.NewRowService(repo).DeleteRow(ctx, 9)
	requireAppError(t, err, errors.ErrCodeNotFound)
}
