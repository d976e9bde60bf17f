package popular_activities

import (
	"errors"
	"net/http"
	"time"

	"github.com/travelparadise/TP-VisitService/internal/api/handlers"
	"github.com/travelparadise/TP-VisitService/internal/domain"
	"github.com/travelparadise/TP-VisitService/internal/service/statistics"
)

const (
	msgInvalidDates = "параметры startDate и endDate обязательны в формате YYYY-MM-DD"
	msgInvalidRange = "дата начала периода позже даты окончания"
)

type Handler struct {
	service StatisticsService
	logger  Logger
}

func NewHandler(service StatisticsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/statistics/popular-activities?startDate=2026-06-01&endDate=2026-06-30
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	start, err := time.Parse(domain.DateFormat, query.Get("startDate"))
	if err != nil {
		h.logger.Warn("GET /statistics/popular-activities - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	end, err := time.Parse(domain.DateFormat, query.Get("endDate"))
	if err != nil {
		h.logger.Warn("GET /statistics/popular-activities - Invalid end date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	result, err := h.service.PopularActivities(r.Context(), start, end)
	if err != nil {
		switch {
		case errors.Is(err, statistics.ErrInvalidRange):
			h.logger.Warn("GET /statistics/popular-activities - Invalid range: start=%s, end=%s",
				query.Get("startDate"), query.Get("endDate"))
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /statistics/popular-activities - Failed to get activities: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /statistics/popular-activities - Activities retrieved: count=%d",
		len(result.Activities))
	handlers.RespondJSON(w, http.StatusOK, result)
}
