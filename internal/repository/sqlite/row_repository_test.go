package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/lotto/internal/models"
	"github.com/vytor/lotto/internal/repository"
	"github.com/vytor/lotto/internal/repository/sqlite"
	"github.com/vytor/lotto/internal/testutil"
)

type RowRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.RowRepository
}

func (s *RowRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewRowRepository(s.db)
}

func (s *RowRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *RowRepositorySuite) insert(date string, numbers ...int) int64 {
	row := models.Row{RowDate: testutil.Date(s.T(), date), WeekNumber: 1}
	copy(row.Numbers[:], numbers)
	id, err := s.repo.Insert(context.Background(), row)
	s.Require().NoError(err)
	return id
}

func (s *RowRepositorySuite) TestInsertAndList() {
	first := s.insert("2026-01-03", 1, 2, 3, 4, 5, 6, 7)
	second := s.insert("2026-01-03", 8, 9, 10, 11, 12, 13, 14)
	s.insert("2026-01-10", 1, 2, 3, 4, 5, 6, 7)

	all, err := s.repo.List(context.Background(), models.RowFilter{})
	s.Require().NoError(err)
	s.Assert().Len(all, 3)

	day := testutil.Date(s.T(), "2026-01-03")
	rows, err := s.repo.List(context.Background(), models.RowFilter{Date: &day})
	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Assert().Equal(first, rows[0].ID)
	s.Assert().Equal(second, rows[1].ID)
	s.Assert().Equal([models.RowSize]int{8, 9, 10, 11, 12, 13, 14}, rows[1].Numbers)
	s.Assert().Equal(day, rows[1].RowDate)
}

func (s *RowRepositorySuite) TestDelete() {
	id := s.insert("2026-01-03", 1, 2, 3, 4, 5, 6, 7)

	s.Require().NoError(s.repo.Delete(context.Background(), id))
	s.Assert().ErrorIs(s.repo.Delete(context.Background(), id), sql.ErrNoRows)
}

func TestRowRepositorySuite(t *testing.T) {
	suite.Run(t, new(RowRepositorySuite))
}
