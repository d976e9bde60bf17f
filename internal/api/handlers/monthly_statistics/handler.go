package monthly_statistics

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/travelparadise/TP-VisitService/internal/api/handlers"
	"github.com/travelparadise/TP-VisitService/internal/service/statistics"
)

const (
	msgInvalidYear  = "некорректный параметр year"
	msgInvalidMonth = "некорректный параметр month, ожидается 1-12"
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

// Handle GET /api/v1/statistics/monthly?year=2026&month=6
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	year, err := strconv.Atoi(query.Get("year"))
	if err != nil {
		h.logger.Warn("GET /statistics/monthly - Invalid year: %q", query.Get("year"))
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(query.Get("month"))
	if err != nil {
		h.logger.Warn("GET /statistics/monthly - Invalid month: %q", query.Get("month"))
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.service.MonthlyOverview(r.Context(), year, month)
	if err != nil {
		switch {
		case errors.Is(err, statistics.ErrInvalidInput):
			h.logger.Warn("GET /statistics/monthly - Invalid period: year=%d, month=%d", year, month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /statistics/monthly - Failed to get overview: year=%d, month=%d, error=%v",
				year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /statistics/monthly - Overview retrieved: year=%d, month=%d, visits=%d",
		year, month, result.TotalVisits)
	handlers.RespondJSON(w, http.StatusOK, result)
}
