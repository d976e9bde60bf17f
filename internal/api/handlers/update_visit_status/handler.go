package update_visit_status

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
	msgIllegalTransition  = "недопустимый переход статуса"
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

// Handle PATCH /api/v1/visits/{visitId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	visitID, err := strconv.ParseInt(vars["visitId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /visits/{id}/status - Invalid visit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVisitID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /visits/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), visitID, &req)
	if err != nil {
		switch {
		case errors.Is(err, visits.ErrVisitNotFound):
			h.logger.Warn("PATCH /visits/{id}/status - Visit not found: visit_id=%d", visitID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, visits.ErrAccessDenied):
			h.logger.Warn("PATCH /visits/{id}/status - Access denied: visit_id=%d, user_id=%d",
				visitID, req.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, visits.ErrIllegalTransition):
			h.logger.Warn("PATCH /visits/{id}/status - Illegal transition: visit_id=%d, status=%s",
				visitID, req.Status)
			handlers.RespondError(w, http.StatusConflict, msgIllegalTransition)

		case errors.Is(err, visits.ErrInvalidInput):
			h.logger.Warn("PATCH /visits/{id}/status - Invalid input: visit_id=%d, error=%v", visitID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /visits/{id}/status - Failed to update status: visit_id=%d, error=%v",
				visitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /visits/{id}/status - Status updated: visit_id=%d, status=%s, user_id=%d",
		visitID, req.Status, req.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
