package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"uptime-report/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

// Helper functions
func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, errorResponse{Error: message})
}

func parseID(r *http.Request, param string) (int64, error) {
	idStr := chi.URLParam(r, param)
	return strconv.ParseInt(idStr, 10, 64)
}

// @Summary List monitors
// @Description Get all monitors known to the heartbeat source
// @Tags monitors
// @Produce json
// @Success 200 {array} domain.Monitor
// @Router /monitors [get]
func (s *Server) apiGetMonitors(w http.ResponseWriter, r *http.Request) {
	monitors, err := s.reports.ListMonitors(r.Context())
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, monitors)
}

// @Summary Get a monitor's uptime report
// @Description Analyze a monitor's heartbeat history over the current calendar period
// @Tags reports
// @Produce json
// @Param id path int true "Monitor ID"
// @Param period query string false "Period kind: day, week, month, quarter, year" default(month)
// @Success 200 {object} domain.MonitorReport
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /monitors/{id}/report [get]
func (s *Server) apiGetMonitorReport(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid monitor ID")
		return
	}

	period, err := periodParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	monitor, err := s.reports.GetMonitor(r.Context(), id)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if monitor == nil {
		s.respondError(w, http.StatusNotFound, "monitor not found")
		return
	}

	now := time.Now()
	hours, err := domain.HoursSincePeriodStart(period, s.loc, now)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if hours < 1 {
		hours = 1
	}

	report, err := s.reports.AnalyzeMonitor(r.Context(), monitor, hours, now)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, report)
}

// @Summary Get uptime reports for all monitors
// @Description Analyze every non-group monitor over the current calendar period
// @Tags reports
// @Produce json
// @Param period query string false "Period kind: day, week, month, quarter, year" default(month)
// @Success 200 {array} domain.MonitorReport
// @Failure 400 {object} errorResponse
// @Router /report [get]
func (s *Server) apiGetReport(w http.ResponseWriter, r *http.Request) {
	period, err := periodParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	reports, err := s.reports.GenerateReport(r.Context(), nil, period, s.loc, time.Now())
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, reports)
}

// periodParam reads the period query parameter, defaulting to month.
func periodParam(r *http.Request) (domain.Period, error) {
	raw := r.URL.Query().Get("period")
	if raw == "" {
		return domain.PeriodMonth, nil
	}
	return domain.NewPeriod(raw)
}
