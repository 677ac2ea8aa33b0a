package api

import (
	"net/http"

	"github.com/vytor/lotto/internal/errors"
)

func (s *Server) handleWinners(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		handleError(w, r, errors.NewBadRequestError("date is required"))
		return
	}
	day, err := parseDate("date", raw)
	if err != nil {
		handleError(w, r, err)
		return
	}

	results, err := s.WinnerService.FindWinners(r.Context(), day)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{
		"date":    raw,
		"results": results,
	})
}
