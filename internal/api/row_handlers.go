package api

import (
	"fmt"
	"net/http"

	"github.com/vytor/lotto/internal/errors"
	"github.com/vytor/lotto/internal/models"
)

type rowRequest struct {
	RowDate string `json:"row_date"`
	Numbers []int  `json:"numbers"`
}

func (s *Server) handleListRows(w http.ResponseWriter, r *http.Request) {
	day, err := optionalDate(r, "date")
	if err != nil {
		handleError(w, r, err)
		return
	}
	rows, err := s.RowService.ListRows(r.Context(), models.RowFilter{Date: day})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"rows": rows})
}

func (s *Server) handleCreateRow(w http.ResponseWriter, r *http.Request) {
	var req rowRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if len(req.Numbers) != models.RowSize {
		handleError(w, r, errors.NewValidationError("numbers", fmt.Sprintf("expected %d numbers, got %d", models.RowSize, len(req.Numbers))))
		return
	}
	rowDate, err := parseDate("row_date", req.RowDate)
	if err != nil {
		handleError(w, r, err)
		return
	}

	row := models.Row{RowDate: rowDate}
	copy(row.Numbers[:], req.Numbers)

	created, err := s.RowService.CreateRow(r.Context(), row)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, created)
}

func (s *Server) handleDeleteRow(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if err := s.RowService.DeleteRow(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
