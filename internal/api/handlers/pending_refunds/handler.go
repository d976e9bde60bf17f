package pending_refunds

import (
	"net/http"

	"github.com/travelparadise/TP-VisitService/internal/api/handlers"
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

// Handle GET /api/v1/refunds/pending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListPending(r.Context())
	if err != nil {
		h.logger.Error("GET /refunds/pending - Failed to list pending refunds: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /refunds/pending - Pending refunds retrieved: count=%d", len(result.Refunds))
	handlers.RespondJSON(w, http.StatusOK, result)
}
