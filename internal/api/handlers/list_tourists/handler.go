package list_tourists

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/travelparadise/TP-VisitService/internal/api/handlers"
	"github.com/travelparadise/TP-VisitService/internal/service/tourists"
)

const (
	msgInvalidVisitID = "некорректный ID визита"
	msgVisitNotFound  = "визит не найден"
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

// Handle GET /api/v1/visits/{visitId}/tourists
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	visitID, err := strconv.ParseInt(vars["visitId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /visits/{id}/tourists - Invalid visit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVisitID)
		return
	}

	result, err := h.service.ListByVisit(r.Context(), visitID)
	if err != nil {
		switch {
		case errors.Is(err, tourists.ErrVisitNotFound):
			h.logger.Warn("GET /visits/{id}/tourists - Visit not found: visit_id=%d", visitID)
			handlers.RespondNotFound(w, msgVisitNotFound)

		default:
			h.logger.Error("GET /visits/{id}/tourists - Failed to list tourists: visit_id=%d, error=%v",
				visitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /visits/{id}/tourists - Tourists retrieved: visit_id=%d, count=%d",
		visitID, len(result.Tourists))
	handlers.RespondJSON(w, http.StatusOK, result)
}
