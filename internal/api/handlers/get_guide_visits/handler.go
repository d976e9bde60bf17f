package get_guide_visits

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/travelparadise/TP-VisitService/internal/api/handlers"
	"github.com/travelparadise/TP-VisitService/internal/domain"
	"github.com/travelparadise/TP-VisitService/internal/service/visits"
	"github.com/travelparadise/TP-VisitService/internal/service/visits/models"
)

const (
	msgInvalidGuideID = "некорректный ID гида"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStatus  = "некорректный статус визита"
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

// Handle GET /api/v1/guides/{guideId}/visits?date=YYYY-MM-DD&status=scheduled
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	guideID, err := strconv.ParseInt(vars["guideId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /guides/{id}/visits - Invalid guide ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGuideID)
		return
	}

	req := &models.ListVisitsRequest{GuideID: guideID}

	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /guides/{id}/visits - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	if raw := r.URL.Query().Get("status"); raw != "" {
		req.Status = &raw
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, visits.ErrInvalidInput):
			h.logger.Warn("GET /guides/{id}/visits - Invalid status filter: guide_id=%d, error=%v", guideID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /guides/{id}/visits - Failed to list visits: guide_id=%d, error=%v", guideID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /guides/{id}/visits - Visits retrieved: guide_id=%d, count=%d", guideID, len(result.Visits))
	handlers.RespondJSON(w, http.StatusOK, result)
}
