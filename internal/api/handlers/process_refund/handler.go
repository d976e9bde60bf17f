package process_refund

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/travelparadise/TP-VisitService/internal/api/handlers"
	"github.com/travelparadise/TP-VisitService/internal/service/refunds"
	approveRefund "github.com/travelparadise/TP-VisitService/internal/usecase/approve_refund"
)

const (
	msgInvalidRefundID    = "некорректный ID возврата"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDecision    = "некорректное решение, ожидается approve или reject"
	msgRefundNotFound     = "возврат не найден"
	msgAlreadyProcessed   = "возврат уже обработан"
	msgForbidden          = "доступ запрещен"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	approveUseCase ApproveRefundUseCase
	refundService  RefundService
	logger         Logger
}

func NewHandler(approveUseCase ApproveRefundUseCase, refundService RefundService, logger Logger) *Handler {
	return &Handler{
		approveUseCase: approveUseCase,
		refundService:  refundService,
		logger:         logger,
	}
}

// Handle PATCH /api/v1/refunds/{refundId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	refundID, err := strconv.ParseInt(vars["refundId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /refunds/{id} - Invalid refund ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRefundID)
		return
	}

	var req ProcessRefundRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /refunds/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	switch req.Decision {
	case DecisionApprove:
		h.approve(w, r, refundID, &req)
	case DecisionReject:
		h.reject(w, r, refundID, &req)
	default:
		h.logger.Warn("PATCH /refunds/{id} - Invalid decision: refund_id=%d, decision=%q",
			refundID, req.Decision)
		handlers.RespondBadRequest(w, msgInvalidDecision)
	}
}

func (h *Handler) approve(w http.ResponseWriter, r *http.Request, refundID int64, req *ProcessRefundRequest) {
	result, err := h.approveUseCase.Execute(r.Context(), &approveRefund.Request{
		RefundID:    refundID,
		ProcessedBy: req.ProcessedBy,
	})
	if err != nil {
		switch {
		case errors.Is(err, approveRefund.ErrRefundNotFound):
			h.logger.Warn("PATCH /refunds/{id} - Refund not found: refund_id=%d", refundID)
			handlers.RespondNotFound(w, msgRefundNotFound)

		case errors.Is(err, approveRefund.ErrAlreadyProcessed):
			h.logger.Warn("PATCH /refunds/{id} - Already processed: refund_id=%d", refundID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyProcessed)

		case errors.Is(err, approveRefund.ErrAccessDenied):
			h.logger.Warn("PATCH /refunds/{id} - Access denied: refund_id=%d, user_id=%d",
				refundID, req.ProcessedBy)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, approveRefund.ErrInvalidInput):
			h.logger.Warn("PATCH /refunds/{id} - Invalid input: refund_id=%d, error=%v", refundID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /refunds/{id} - Failed to approve refund: refund_id=%d, error=%v",
				refundID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /refunds/{id} - Refund approved: refund_id=%d, visit_id=%d, amount=%.2f",
		refundID, result.VisitID, result.Amount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request, refundID int64, req *ProcessRefundRequest) {
	result, err := h.refundService.RejectRefund(r.Context(), refundID, req.ToRejectRequest())
	if err != nil {
		switch {
		case errors.Is(err, refunds.ErrRefundNotFound):
			h.logger.Warn("PATCH /refunds/{id} - Refund not found: refund_id=%d", refundID)
			handlers.RespondNotFound(w, msgRefundNotFound)

		case errors.Is(err, refunds.ErrAlreadyProcessed):
			h.logger.Warn("PATCH /refunds/{id} - Already processed: refund_id=%d", refundID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyProcessed)

		case errors.Is(err, refunds.ErrAccessDenied):
			h.logger.Warn("PATCH /refunds/{id} - Access denied: refund_id=%d, user_id=%d",
				refundID, req.ProcessedBy)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, refunds.ErrInvalidInput):
			h.logger.Warn("PATCH /refunds/{id} - Invalid input: refund_id=%d, error=%v", refundID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /refunds/{id} - Failed to reject refund: refund_id=%d, error=%v",
				refundID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /refunds/{id} - Refund rejected: refund_id=%d, visit_id=%d",
		refundID, result.VisitID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
