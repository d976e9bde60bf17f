package refund_history

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/travelparadise/TP-VisitService/internal/api/handlers"
)

const msgInvalidVisitID = "некорректный ID визита"

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

// Handle GET /api/v1/visits/{visitId}/refunds
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	visitID, err := strconv.ParseInt(vars["visitId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /visits/{id}/refunds - Invalid visit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVisitID)
		return
	}

	result, err := h.service.History(r.Context(), visitID)
	if err != nil {
		h.logger.Error("GET /visits/{id}/refunds - Failed to get refund history: visit_id=%d, error=%v",
			visitID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /visits/{id}/refunds - Refund history retrieved: visit_id=%d, count=%d",
		visitID, len(result.Refunds))
	handlers.RespondJSON(w, http.StatusOK, result)
}
