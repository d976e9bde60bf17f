package guide_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/travelparadise/TP-VisitService/internal/api/handlers"
	"github.com/travelparadise/TP-VisitService/internal/domain"
	"github.com/travelparadise/TP-VisitService/internal/service/availability"
)

const (
	msgInvalidGuideID = "некорректный ID гида"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateRequired   = "параметр date обязателен"
	msgGuideNotFound  = "гид не найден"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/guides/{guideId}/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	guideID, err := strconv.ParseInt(vars["guideId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /guides/{id}/availability - Invalid guide ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGuideID)
		return
	}

	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		h.logger.Warn("GET /guides/{id}/availability - Missing date: guide_id=%d", guideID)
		handlers.RespondBadRequest(w, msgDateRequired)
		return
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /guides/{id}/availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetDayAvailability(r.Context(), guideID, date)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrGuideNotFound):
			h.logger.Warn("GET /guides/{id}/availability - Guide not found: guide_id=%d", guideID)
			handlers.RespondNotFound(w, msgGuideNotFound)

		default:
			h.logger.Error("GET /guides/{id}/availability - Failed to get availability: guide_id=%d, error=%v",
				guideID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /guides/{id}/availability - Availability retrieved: guide_id=%d, date=%s, available=%t",
		guideID, rawDate, result.Available)
	handlers.RespondJSON(w, http.StatusOK, result)
}
