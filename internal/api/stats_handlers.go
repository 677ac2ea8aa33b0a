package api

import (
	"bytes"
	"net/http"

	"github.com/vytor/lotto/internal/charts"
	"github.com/vytor/lotto/internal/errors"
	"github.com/vytor/lotto/internal/logger"
	"github.com/vytor/lotto/internal/models"
)

func (s *Server) handleFrequencies(w http.ResponseWriter, r *http.Request) {
	freqs, err := s.StatsService.Frequencies(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string][]models.FrequencyStat{"frequencies": freqs})
}

func (s *Server) handleNumberStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.StatsService.NumberStats(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string][]models.NumberStat{"numbers": stats})
}

func (s *Server) handlePredictions(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		handleError(w, r, errors.NewBadRequestError("date is required"))
		return
	}
	target, err := parseDate("date", raw)
	if err != nil {
		handleError(w, r, err)
		return
	}
	tolerance, err := optionalFloat(r, "tolerance")
	if err != nil {
		handleError(w, r, err)
		return
	}

	result, err := s.StatsService.Predictions(r.Context(), target, tolerance)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)
	log.Debug("rendering statistics chart")

	freqs, err := s.StatsService.Frequencies(ctx)
	if err != nil {
		handleError(w, r, err)
		return
	}
	stats, err := s.StatsService.NumberStats(ctx)
	if err != nil {
		handleError(w, r, err)
		return
	}
	draws, err := s.DrawService.CountDraws(ctx)
	if err != nil {
		handleError(w, r, err)
		return
	}

	// Render into a buffer so a failure can still produce a JSON error.
	var buf bytes.Buffer
	if err := charts.RenderStatsPage(&buf, freqs, stats, draws, s.ChartConfig); err != nil {
		handleError(w, r, errors.NewInternalError(err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
