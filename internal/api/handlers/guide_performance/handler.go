package guide_performance

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/travelparadise/TP-VisitService/internal/api/handlers"
	"github.com/travelparadise/TP-VisitService/internal/domain"
	"github.com/travelparadise/TP-VisitService/internal/service/statistics"
)

const (
	msgInvalidGuideID = "некорректный ID гида"
	msgInvalidDates   = "параметры startDate и endDate обязательны в формате YYYY-MM-DD"
	msgInvalidRange   = "дата начала периода позже даты окончания"
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

// Handle GET /api/v1/guides/{guideId}/performance?startDate=YYYY-MM-DD&endDate=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	guideID, err := strconv.ParseInt(vars["guideId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /guides/{id}/performance - Invalid guide ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGuideID)
		return
	}

	query := r.URL.Query()
	start, err := time.Parse(domain.DateFormat, query.Get("startDate"))
	if err != nil {
		h.logger.Warn("GET /guides/{id}/performance - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}
	end, err := time.Parse(domain.DateFormat, query.Get("endDate"))
	if err != nil {
		h.logger.Warn("GET /guides/{id}/performance - Invalid end date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	result, err := h.service.GuidePerformance(r.Context(), guideID, start, end)
	if err != nil {
		switch {
		case errors.Is(err, statistics.ErrInvalidRange), errors.Is(err, statistics.ErrInvalidInput):
			h.logger.Warn("GET /guides/{id}/performance - Invalid range: guide_id=%d, error=%v", guideID, err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /guides/{id}/performance - Failed to get performance: guide_id=%d, error=%v",
				guideID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /guides/{id}/performance - Performance retrieved: guide_id=%d, visits=%d",
		guideID, result.TotalVisits)
	handlers.RespondJSON(w, http.StatusOK, result)
}
