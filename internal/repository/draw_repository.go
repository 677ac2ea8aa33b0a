package repository

import (
	"context"
	"time"

	"github.com/vytor/lotto/internal/models"
)

// DrawRepository handles jackpot draw data access
type DrawRepository interface {
	Get(ctx context.Context, id int64) (*models.Draw, error)
	GetByDate(ctx context.Context, date time.Time) (*models.Draw, error)
	List(ctx context.Context, filter models.DrawFilter) ([]models.Draw, error)
	Count(ctx context.Context, filter models.DrawFilter) (int, error)
	History(ctx context.Context) ([]models.Draw, error)
	Insert(ctx context.Context, draw models.Draw) (int64, error)
	InsertBatch(ctx context.Context, draws []models.Draw) ([]int64, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) (int64, error)
}
