package update_guide_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/travelparadise/TP-VisitService/internal/api/handlers"
	"github.com/travelparadise/TP-VisitService/internal/service/availability"
	"github.com/travelparadise/TP-VisitService/internal/service/availability/models"
)

const (
	msgInvalidGuideID     = "некорректный ID гида"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgGuideNotFound      = "гид не найден"
	msgConflictingVisits  = "у гида есть запланированные визиты в этот день"
	msgInvalidInput       = "некорректные данные запроса"
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

// Handle PUT /api/v1/guides/{guideId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	guideID, err := strconv.ParseInt(vars["guideId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /guides/{id}/schedule - Invalid guide ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGuideID)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /guides/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, date, err := req.ToServiceRequest(guideID)
	if err != nil {
		h.logger.Warn("PUT /guides/{id}/schedule - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var result *models.ScheduleUpdateResponse
	if req.Available {
		result, err = h.service.SetAvailable(r.Context(), guideID, date)
	} else {
		result, err = h.service.SetUnavailable(r.Context(), serviceReq)
	}
	if err != nil {
		h.respondError(w, guideID, req.Date, err)
		return
	}

	h.logger.Info("PUT /guides/{id}/schedule - Schedule updated: guide_id=%d, date=%s, available=%t",
		guideID, req.Date, req.Available)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondError(w http.ResponseWriter, guideID int64, date string, err error) {
	switch {
	case errors.Is(err, availability.ErrGuideNotFound):
		h.logger.Warn("PUT /guides/{id}/schedule - Guide not found: guide_id=%d", guideID)
		handlers.RespondNotFound(w, msgGuideNotFound)

	case errors.Is(err, availability.ErrConflictingSchedule):
		h.logger.Warn("PUT /guides/{id}/schedule - Conflicting visits: guide_id=%d, date=%s", guideID, date)
		handlers.RespondError(w, http.StatusConflict, msgConflictingVisits)

	case errors.Is(err, availability.ErrInvalidInput):
		h.logger.Warn("PUT /guides/{id}/schedule - Invalid input: guide_id=%d, error=%v", guideID, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("PUT /guides/{id}/schedule - Failed to update schedule: guide_id=%d, date=%s, error=%v",
			guideID, date, err)
		handlers.RespondInternalError(w)
	}
}
