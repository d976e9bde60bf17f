package mark_presence

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/travelparadise/TP-VisitService/internal/api/handlers"
	"github.com/travelparadise/TP-VisitService/internal/service/tourists"
	"github.com/travelparadise/TP-VisitService/internal/service/tourists/models"
)

const (
	msgInvalidTouristID   = "некорректный ID туриста"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "турист не найден"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	service TouristService
	logger  Logger
}

func NewHandler(service TouristService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/tourists/{touristId}/presence
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	touristID, err := strconv.ParseInt(vars["touristId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /tourists/{id}/presence - Invalid tourist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTouristID)
		return
	}

	var req models.MarkPresenceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /tourists/{id}/presence - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.MarkPresence(r.Context(), touristID, &req); err != nil {
		switch {
		case errors.Is(err, tourists.ErrTouristNotFound):
			h.logger.Warn("PATCH /tourists/{id}/presence - Tourist not found: tourist_id=%d", touristID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, tourists.ErrInvalidInput):
			h.logger.Warn("PATCH /tourists/{id}/presence - Invalid input: tourist_id=%d, error=%v",
				touristID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /tourists/{id}/presence - Failed to mark presence: tourist_id=%d, error=%v",
				touristID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /tourists/{id}/presence - Presence marked: tourist_id=%d, is_present=%t",
		touristID, req.IsPresent)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
