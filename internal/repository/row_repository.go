package repository

import (
	"context"

	"github.com/vytor/lotto/internal/models"
)

// RowRepository handles the user's played rows
type RowRepository interface {
	Insert(ctx context.Context, row models.Row) (int64, error)
	List(ctx context.Context, filter models.RowFilter) ([]models.Row, error)
	Delete(ctx context.Context, id int64) error
}
