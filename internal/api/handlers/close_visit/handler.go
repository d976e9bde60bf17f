package close_visit

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/travelparadise/TP-VisitService/internal/api/handlers"
	"github.com/travelparadise/TP-VisitService/internal/service/visits"
	"github.com/travelparadise/TP-VisitService/internal/service/visits/models"
)

const (
	msgInvalidVisitID     = "некорректный ID визита"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "визит не найден"
	msgForbidden          = "доступ запрещен"
	msgCannotClose        = "визит не может быть завершен из текущего статуса"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	service VisitService
	logger  Logger
}

func NewHandler(service VisitService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/visits/{visitId}/close
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	visitID, err := strconv.ParseInt(vars["visitId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /visits/{id}/close - Invalid visit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVisitID)
		return
	}

	var req models.CloseVisitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /visits/{id}/close - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Close(r.Context(), visitID, &req)
	if err != nil {
		switch {
		case errors.Is(err, visits.ErrVisitNotFound):
			h.logger.Warn("PATCH /visits/{id}/close - Visit not found: visit_id=%d", visitID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, visits.ErrAccessDenied):
			h.logger.Warn("PATCH /visits/{id}/close - Access denied: visit_id=%d, user_id=%d",
				visitID, req.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, visits.ErrIllegalTransition):
			h.logger.Warn("PATCH /visits/{id}/close - Cannot close: visit_id=%d", visitID)
			handlers.RespondError(w, http.StatusConflict, msgCannotClose)

		case errors.Is(err, visits.ErrInvalidInput):
			h.logger.Warn("PATCH /visits/{id}/close - Invalid input: visit_id=%d, error=%v", visitID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /visits/{id}/close - Failed to close visit: visit_id=%d, error=%v",
				visitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /visits/{id}/close - Visit closed: visit_id=%d, user_id=%d", visitID, req.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
