package schedule_visit

import (
	"errors"
	"net/http"

	"github.com/travelparadise/TP-VisitService/internal/api/handlers"
	scheduleVisit "github.com/travelparadise/TP-VisitService/internal/usecase/schedule_visit"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты (YYYY-MM-DD) или времени (HH:MM)"
	msgGuideNotFound      = "гид не найден"
	msgGuideInactive      = "гид не активен"
	msgPlaceNotFound      = "место не найдено"
	msgInvalidSchedule    = "некорректные параметры расписания"
	msgGuideUnavailable   = "гид недоступен в запрошенное время"
)

type Handler struct {
	useCase ScheduleVisitUseCase
	logger  Logger
}

func NewHandler(useCase ScheduleVisitUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/visits
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ScheduleVisitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /visits - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /visits - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, scheduleVisit.ErrGuideNotFound):
			h.logger.Warn("POST /visits - Guide not found: guide_id=%d", req.GuideID)
			handlers.RespondNotFound(w, msgGuideNotFound)

		case errors.Is(err, scheduleVisit.ErrPlaceNotFound):
			h.logger.Warn("POST /visits - Place not found: place_id=%d", req.PlaceID)
			handlers.RespondNotFound(w, msgPlaceNotFound)

		case errors.Is(err, scheduleVisit.ErrGuideInactive):
			h.logger.Warn("POST /visits - Guide inactive: guide_id=%d", req.GuideID)
			handlers.RespondBadRequest(w, msgGuideInactive)

		case errors.Is(err, scheduleVisit.ErrGuideUnavailable):
			h.logger.Warn("POST /visits - Guide unavailable: guide_id=%d, date=%s, start=%s",
				req.GuideID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgGuideUnavailable)

		case errors.Is(err, scheduleVisit.ErrInvalidSchedule),
			errors.Is(err, scheduleVisit.ErrInvalidInput):
			h.logger.Warn("POST /visits - Invalid schedule: guide_id=%d, error=%v", req.GuideID, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		default:
			h.logger.Error("POST /visits - Failed to schedule visit: guide_id=%d, place_id=%d, error=%v",
				req.GuideID, req.PlaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /visits - Visit scheduled successfully: visit_id=%d, guide_id=%d, date=%s",
		result.ID, req.GuideID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
