package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/lotto/internal/logger"
	"github.com/vytor/lotto/internal/models"
	"github.com/vytor/lotto/internal/repository"
)

var rowColumns = []string{
	"id", "row_date", "week_number",
	"nr1", "nr2", "nr3", "nr4", "nr5", "nr6", "nr7",
	"created_at",
}

type rowRepository struct {
	db *sql.DB
}

// NewRowRepository creates a new RowRepository implementation
func NewRowRepository(db *sql.DB) repository.RowRepository {
	return &rowRepository{db: db}
}

func (r *rowRepository) Insert(ctx context.Context, row models.Row) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("row_repo")
	log.Debug("inserting row: date=%s, numbers=%v", formatDate(row.RowDate), row.Numbers)

	args := make([]any, 0, 2+models.RowSize)
	args = append(args, formatDate(row.RowDate), row.WeekNumber)
	for _, n := range row.Numbers {
		args = append(args, n)
	}

	res, err := r.db.ExecContext(ctx, `
INSERT INTO played_rows (row_date, week_number, nr1, nr2, nr3, nr4, nr5, nr6, nr7)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`, args...)
	if err != nil {
		log.Error("failed to insert row: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get row id: %v", err)
		return 0, err
	}
	log.Debug("row inserted: id=%d", id)
	return id, nil
}

// List returns rows in the order they were entered. A Date filter restricts
// the result to that calendar day.
func (r *rowRepository) List(ctx context.Context, filter models.RowFilter) ([]models.Row, error) {
	log := logger.FromContext(ctx).WithPrefix("row_repo")

	query := sqlBuilder.Select(rowColumns...).From("played_rows")
	if filter.Date != nil {
		log.Debug("listing rows for %s", formatDate(*filter.Date))
		query = query.Where(squirrel.Eq{"row_date": formatDate(*filter.Date)})
	}
	limit, offset := pagination(filter.Limit, filter.Offset, 500)
	query = query.OrderBy("row_date DESC", "id ASC").Limit(limit).Offset(offset)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list rows: %v", err)
		return nil, err
	}
	defer rows.Close()

	var out []models.Row
	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			log.Error("failed to scan row: %v", err)
			return nil, err
		}
		out = append(out, *row)
	}
	log.Debug("found %d rows", len(out))
	return out, rows.Err()
}

func (r *rowRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx).WithPrefix("row_repo")
	log.Debug("deleting row: id=%d", id)

	res, err := r.db.ExecContext(ctx, `DELETE FROM played_rows WHERE id = ?`, id)
	if err != nil {
		log.Error("failed to delete row: %v", err)
		return err
	}
	return affectedOrNotFound(res)
}

func scanRow(s scanner) (*models.Row, error) {
	var (
		row     models.Row
		rawDate string
	)
	n := &row.Numbers
	err := s.Scan(&row.ID, &rawDate, &row.WeekNumber,
		&n[0], &n[1], &n[2], &n[3], &n[4], &n[5], &n[6],
		&row.CreatedAt)
	if err != nil {
		return nil, err
	}
	if row.RowDate, err = parseDate(rawDate); err != nil {
		return nil, err
	}
	return &row, nil
}
