package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/lotto/internal/repository/sqlite"
	"github.com/vytor/lotto/internal/services"
	"github.com/vytor/lotto/internal/testutil"
	"github.com/vytor/lotto/internal/testutil/mocks"
)

func TestEnqueueSeedImport(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	defer testutil.MustClose(t, database)
	draws := services.NewDrawService(sqlite.NewDrawRepository(database), false)

	queue := new(mocks.MockJobQueue)
	queue.On("EnqueueSeedImport", "lotto.json").Return(nil).Once()

	assert.NoError(t, enqueueSeedImport(ctx, "", draws, queue), "no seed path configured")
	assert.NoError(t, enqueueSeedImport(ctx, "lotto.json", draws, queue))
	queue.AssertExpectations(t)

	_, err := database.Exec(`INSERT INTO draws (draw_date, week_number, nr1, nr2, nr3, nr4, nr5, nr6, nr7, nr8)
		VALUES ('2026-01-03', 1, 1, 2, 3, 4, 5, 6, 7, 8)`)
	assert.NoError(t, err)
	assert.NoError(t, enqueueSeedImport(ctx, "lotto.json", draws, queue))
	queue.AssertNumberOfCalls(t, "EnqueueSeedImport", 1)
}

func TestEnqueueSeedImport_QueueError(t *testing.T) {
	database := testutil.NewTestDB(t)
	defer testutil.MustClose(t, database)
	draws := services.NewDrawService(sqlite.NewDrawRepository(database), false)

	queue := new(mocks.MockJobQueue)
	queue.On("EnqueueSeedImport", "lotto.json").Return(errors.New("worker queue full"))

	assert.Error(t, enqueueSeedImport(context.Background(), "lotto.json", draws, queue))
}
