package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/lotto/internal/logger"
	"github.com/vytor/lotto/internal/models"
	"github.com/vytor/lotto/internal/repository"
)

var drawColumns = []string{
	"id", "draw_date", "week_number",
	"nr1", "nr2", "nr3", "nr4", "nr5", "nr6", "nr7", "nr8",
	"created_at",
}

const insertDrawSQL = `
INSERT INTO draws (draw_date, week_number, nr1, nr2, nr3, nr4, nr5, nr6, nr7, nr8)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type drawRepository struct {
	db *sql.DB
}

// NewDrawRepository creates a new DrawRepository implementation
func NewDrawRepository(db *sql.DB) repository.DrawRepository {
	return &drawRepository{db: db}
}

func (r *drawRepository) Get(ctx context.Context, id int64) (*models.Draw, error) {
	log := logger.FromContext(ctx).WithPrefix("draw_repo")
	log.Debug("getting draw: id=%d", id)

	query, args, err := sqlBuilder.Select(drawColumns...).From("draws").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	d, err := scanDraw(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("draw not found: id=%d", id)
		} else {
			log.Error("failed to get draw: %v", err)
		}
		return nil, err
	}
	return d, nil
}

// GetByDate returns the most recently entered draw for the calendar date.
func (r *drawRepository) GetByDate(ctx context.Context, date time.Time) (*models.Draw, error) {
	log := logger.FromContext(ctx).WithPrefix("draw_repo")
	log.Debug("getting draw by date: %s", formatDate(date))

	query, args, err := sqlBuilder.Select(drawColumns...).From("draws").
		Where(squirrel.Eq{"draw_date": formatDate(date)}).
		OrderBy("id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	d, err := scanDraw(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("no draw on %s", formatDate(date))
		} else {
			log.Error("failed to get draw by date: %v", err)
		}
		return nil, err
	}
	return d, nil
}

func (r *drawRepository) List(ctx context.Context, filter models.DrawFilter) ([]models.Draw, error) {
	log := logger.FromContext(ctx).WithPrefix("draw_repo")
	log.Debug("listing draws: week=%d, limit=%d, offset=%d, order=%s",
		filter.WeekNumber, filter.Limit, filter.Offset, filter.OrderDir)

	query := applyDrawFilter(sqlBuilder.Select(drawColumns...).From("draws"), filter)

	orderDir := "DESC"
	if filter.OrderDir == "ASC" {
		orderDir = "ASC"
	}
	query = query.OrderBy("draw_date "+orderDir, "id "+orderDir)

	limit, offset := pagination(filter.Limit, filter.Offset, 200)
	query = query.Limit(limit).Offset(offset)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	draws, err := r.queryDraws(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list draws: %v", err)
		return nil, err
	}
	log.Debug("found %d draws", len(draws))
	return draws, nil
}

func (r *drawRepository) Count(ctx context.Context, filter models.DrawFilter) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("draw_repo")

	sqlStr, args, err := applyDrawFilter(sqlBuilder.Select("COUNT(*)").From("draws"), filter).ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return 0, err
	}

	var count int
	if err := r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&count); err != nil {
		log.Error("failed to count draws: %v", err)
		return 0, err
	}
	return count, nil
}

// History returns every stored draw, oldest first.
func (r *drawRepository) History(ctx context.Context) ([]models.Draw, error) {
	log := logger.FromContext(ctx).WithPrefix("draw_repo")

	sqlStr, args, err := sqlBuilder.Select(drawColumns...).From("draws").OrderBy("draw_date ASC", "id ASC").ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	draws, err := r.queryDraws(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to load draw history: %v", err)
		return nil, err
	}
	log.Debug("loaded %d draws", len(draws))
	return draws, nil
}

func (r *drawRepository) Insert(ctx context.Context, d models.Draw) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("draw_repo")
	log.Debug("inserting draw: date=%s, numbers=%v", formatDate(d.DrawDate), d.Numbers)

	res, err := r.db.ExecContext(ctx, insertDrawSQL, drawArgs(d)...)
	if err != nil {
		log.Error("failed to insert draw: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get draw id: %v", err)
		return 0, err
	}
	log.Debug("draw inserted: id=%d", id)
	return id, nil
}

// InsertBatch stores all draws in one transaction. Nothing is stored if any
// insert fails.
func (r *drawRepository) InsertBatch(ctx context.Context, draws []models.Draw) ([]int64, error) {
	log := logger.FromContext(ctx).WithPrefix("draw_repo")
	log.Debug("batch inserting %d draws", len(draws))

	if len(draws) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(draws))
	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, insertDrawSQL)
		if err != nil {
			log.Error("failed to prepare batch insert: %v", err)
			return err
		}
		defer stmt.Close()

		for _, d := range draws {
			res, err := stmt.ExecContext(ctx, drawArgs(d)...)
			if err != nil {
				log.Error("failed to insert draw date=%s: %v", formatDate(d.DrawDate), err)
				return err
			}
			id, err := res.LastInsertId()
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debug("batch insert completed, %d draws inserted", len(ids))
	return ids, nil
}

func (r *drawRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx).WithPrefix("draw_repo")
	log.Debug("deleting draw: id=%d", id)

	res, err := r.db.ExecContext(ctx, `DELETE FROM draws WHERE id = ?`, id)
	if err != nil {
		log.Error("failed to delete draw: %v", err)
		return err
	}
	return affectedOrNotFound(res)
}

func (r *drawRepository) DeleteAll(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("draw_repo")

	res, err := r.db.ExecContext(ctx, `DELETE FROM draws`)
	if err != nil {
		log.Error("failed to delete draws: %v", err)
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	log.Info("deleted %d draws", n)
	return n, nil
}

func (r *drawRepository) queryDraws(ctx context.Context, query string, args ...any) ([]models.Draw, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var draws []models.Draw
	for rows.Next() {
		d, err := scanDraw(rows)
		if err != nil {
			return nil, err
		}
		draws = append(draws, *d)
	}
	return draws, rows.Err()
}

func applyDrawFilter(query squirrel.SelectBuilder, filter models.DrawFilter) squirrel.SelectBuilder {
	if filter.From != nil {
		query = query.Where(squirrel.GtOrEq{"draw_date": formatDate(*filter.From)})
	}
	if filter.To != nil {
		query = query.Where(squirrel.LtOrEq{"draw_date": formatDate(*filter.To)})
	}
	if filter.WeekNumber != 0 {
		query = query.Where(squirrel.Eq{"week_number": filter.WeekNumber})
	}
	return query
}

func drawArgs(d models.Draw) []any {
	args := make([]any, 0, 2+models.DrawSize)
	args = append(args, formatDate(d.DrawDate), d.WeekNumber)
	for _, n := range d.Numbers {
		args = append(args, n)
	}
	return args
}

func scanDraw(s scanner) (*models.Draw, error) {
	var (
		d       models.Draw
		rawDate string
	)
	n := &d.Numbers
	err := s.Scan(&d.ID, &rawDate, &d.WeekNumber,
		&n[0], &n[1], &n[2], &n[3], &n[4], &n[5], &n[6], &n[7],
		&d.CreatedAt)
	if err != nil {
		return nil, err
	}
	if d.DrawDate, err = parseDate(rawDate); err != nil {
		return nil, err
	}
	return &d, nil
}
