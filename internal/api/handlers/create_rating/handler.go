package create_rating

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/travelparadise/TP-VisitService/internal/api/handlers"
	"github.com/travelparadise/TP-VisitService/internal/service/ratings"
)

const (
	msgInvalidVisitID     = "некорректный ID визита"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgVisitNotFound      = "визит не найден"
	msgDuplicateRating    = "оценка по визиту уже существует"
	msgInvalidInput       = "некорректные данные оценки"
)

type Handler struct {
	service RatingService
	logger  Logger
}

func NewHandler(service RatingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/visits/{visitId}/ratings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	visitID, err := strconv.ParseInt(vars["visitId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /visits/{id}/ratings - Invalid visit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVisitID)
		return
	}

	var req CreateRatingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /visits/{id}/ratings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(visitID))
	if err != nil {
		switch {
		case errors.Is(err, ratings.ErrVisitNotFound):
			h.logger.Warn("POST /visits/{id}/ratings - Visit not found: visit_id=%d", visitID)
			handlers.RespondNotFound(w, msgVisitNotFound)

		case errors.Is(err, ratings.ErrDuplicateRating):
			h.logger.Warn("POST /visits/{id}/ratings - Duplicate rating: visit_id=%d, user_id=%d",
				visitID, req.UserID)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateRating)

		case errors.Is(err, ratings.ErrInvalidInput):
			h.logger.Warn("POST /visits/{id}/ratings - Invalid input: visit_id=%d, error=%v", visitID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /visits/{id}/ratings - Failed to create rating: visit_id=%d, error=%v",
				visitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /visits/{id}/ratings - Rating created: rating_id=%d, visit_id=%d, score=%d",
		result.ID, visitID, req.Score)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
