package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/vytor/lotto/internal/errors"
	"github.com/vytor/lotto/internal/logger"
	"github.com/vytor/lotto/internal/models"
)

type drawRequest struct {
	DrawDate string `json:"draw_date"`
	Numbers  []int  `json:"numbers"`
}

type drawListResponse struct {
	Draws []models.Draw `json:"draws"`
	Total int           `json:"total"`
}

func (s *Server) handleListDraws(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("listing draws")

	from, err := optionalDate(r, "from")
	if err != nil {
		handleError(w, r, err)
		return
	}
	to, err := optionalDate(r, "to")
	if err != nil {
		handleError(w, r, err)
		return
	}
	week, err := optionalInt(r, "week")
	if err != nil {
		handleError(w, r, err)
		return
	}
	limit, err := optionalInt(r, "limit")
	if err != nil {
		handleError(w, r, err)
		return
	}
	offset, err := optionalInt(r, "offset")
	if err != nil {
		handleError(w, r, err)
		return
	}

	filter := models.DrawFilter{
		From:       from,
		To:         to,
		WeekNumber: week,
		Limit:      limit,
		Offset:     offset,
		OrderDir:   strings.ToUpper(r.URL.Query().Get("order_dir")),
	}

	draws, total, err := s.DrawService.ListDraws(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, drawListResponse{Draws: draws, Total: total})
}

func (s *Server) handleCreateDraw(w http.ResponseWriter, r *http.Request) {
	var req drawRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if len(req.Numbers) != models.DrawSize {
		handleError(w, r, errors.NewValidationError("numbers", fmt.Sprintf("expected %d numbers, got %d", models.DrawSize, len(req.Numbers))))
		return
	}
	drawDate, err := parseDate("draw_date", req.DrawDate)
	if err != nil {
		handleError(w, r, err)
		return
	}

	draw := models.Draw{DrawDate: drawDate}
	copy(draw.Numbers[:], req.Numbers)

	created, err := s.DrawService.CreateDraw(r.Context(), draw)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, created)
}

func (s *Server) handleGetDraw(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	draw, err := s.DrawService.GetDraw(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, draw)
}

func (s *Server) handleDeleteDraw(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if err := s.DrawService.DeleteDraw(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteAllDraws(w http.ResponseWriter, r *http.Request) {
	n, err := s.DrawService.DeleteAllDraws(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]int64{"deleted": n})
}

func (s *Server) handleImportDraws(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Info("importing draws from request body")

	n, err := s.ImportService.ImportDraws(r.Context(), http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, map[string]int{"imported": n})
}
