package services_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vytor/lotto/internal/errors"
	"github.com/vytor/lotto/internal/models"
	"github.com/vytor/lotto/internal/services"
	"github.com/vytor/lotto/internal/testutil/mocks"
)

const seedDoc = `[
  {"dato": "02.01.2016", "nr1": 3, "nr2": 9, "nr3": 12, "nr4": 17, "nr5": 21, "nr6": 28, "nr7": 33, "nr8": 5},
  {"dato": "09.01.2016", "nr1": 1, "nr2": 4, "nr3": 11, "nr4": 19, "nr5": 22, "nr6": 30, "nr7": 34, "nr8": 7}
]`

func TestParseSeed(t *testing.T) {
	draws, err := services.ParseSeed(strings.NewReader(seedDoc))
	require.NoError(t, err)
	require.Len(t, draws, 2)

	assert.Equal(t, date(t, "2016-01-02"), draws[0].DrawDate)
	assert.Equal(t, [models.DrawSize]int{3, 9, 12, 17, 21, 28, 33, 5}, draws[0].Numbers)
	assert.Equal(t, 53, draws[0].WeekNumber)
	assert.Equal(t, 1, draws[1].WeekNumber)
}

func TestParseSeed_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad date", `[{"dato": "2016-01-02", "nr1":1,"nr2":2,"nr3":3,"nr4":4,"nr5":5,"nr6":6,"nr7":7,"nr8":8}]`},
		{"missing number", `[{"dato": "02.01.2016", "nr1":1,"nr2":2,"nr3":3,"nr4":4,"nr5":5,"nr6":6,"nr7":7}]`},
		{"not an array", `{"dato": "02.01.2016"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := services.ParseSeed(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestImportService_ImportDraws(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockDrawRepository)
	repo.On("InsertBatch", ctx, mock.MatchedBy(func(d []models.Draw) bool { return len(d) == 2 })).
		Return([]int64{1, 2}, nil)

	n, err := services.NewImportService(repo).ImportDraws(ctx, strings.NewReader(seedDoc))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestImportService_ImportDraws_BadDocumentStoresNothing(t *testing.T) {
	repo := new(mocks.MockDrawRepository)

	_, err := services.NewImportService(repo).ImportDraws(context.Background(), strings.NewReader(`[{"dato":"x"}]`))
	requireAppError(t, err, errors.ErrCodeBadRequest)
	repo.AssertNotCalled(t, "InsertBatch", mock.Anything, mock.Anything)
}

func TestImportService_ImportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lotto.json")
	require.NoError(t, os.WriteFile(path, []byte(seedDoc), 0o600))

	repo := new(mocks.MockDrawRepository)
	repo.On("InsertBatch", mock.Anything, mock.Anything).Return([]int64{1, 2}, nil)

	n, err := services.NewImportService(repo).ImportFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = services.NewImportService(repo).ImportFile(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	requireAppError(t, err, errors.ErrCodeInternal)
}
