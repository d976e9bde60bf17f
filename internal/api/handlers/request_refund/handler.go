package request_refund

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/travelparadise/TP-VisitService/internal/api/handlers"
	"github.com/travelparadise/TP-VisitService/internal/service/refunds"
)

const (
	msgInvalidVisitID     = "некорректный ID визита"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgVisitNotFound      = "визит не найден"
	msgPendingExists      = "по визиту уже есть необработанный возврат"
	msgInvalidInput       = "некорректные данные возврата"
)

type Handler struct {
	service RefundService
	logger  Logger
}

func NewHandler(service RefundService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/visits/{visitId}/refunds
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	visitID, err := strconv.ParseInt(vars["visitId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /visits/{id}/refunds - Invalid visit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVisitID)
		return
	}

	var req RequestRefundRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /visits/{id}/refunds - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.RequestRefund(r.Context(), req.ToServiceRequest(visitID))
	if err != nil {
		switch {
		case errors.Is(err, refunds.ErrVisitNotFound):
			h.logger.Warn("POST /visits/{id}/refunds - Visit not found: visit_id=%d", visitID)
			handlers.RespondNotFound(w, msgVisitNotFound)

		case errors.Is(err, refunds.ErrPendingRefundExists):
			h.logger.Warn("POST /visits/{id}/refunds - Pending refund exists: visit_id=%d", visitID)
			handlers.RespondError(w, http.StatusConflict, msgPendingExists)

		case errors.Is(err, refunds.ErrInvalidInput):
			h.logger.Warn("POST /visits/{id}/refunds - Invalid input: visit_id=%d, error=%v", visitID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /visits/{id}/refunds - Failed to request refund: visit_id=%d, error=%v",
				visitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /visits/{id}/refunds - Refund requested: refund_id=%d, visit_id=%d, amount=%.2f",
		result.ID, visitID, result.Amount)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
