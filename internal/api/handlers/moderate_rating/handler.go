package moderate_rating

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/travelparadise/TP-VisitService/internal/api/handlers"
	"github.com/travelparadise/TP-VisitService/internal/service/ratings"
	"github.com/travelparadise/TP-VisitService/internal/service/ratings/models"
)

const (
	msgInvalidRatingID    = "некорректный ID оценки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "оценка не найдена"
	msgAlreadyModerated   = "оценка уже прошла модерацию"
	msgForbidden          = "доступ запрещен"
	msgInvalidInput       = "некорректный статус модерации"
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

// Handle PATCH /api/v1/ratings/{ratingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	ratingID, err := strconv.ParseInt(vars["ratingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /ratings/{id}/status - Invalid rating ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRatingID)
		return
	}

	var req models.ModerateRatingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /ratings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Moderate(r.Context(), ratingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ratings.ErrRatingNotFound):
			h.logger.Warn("PATCH /ratings/{id}/status - Rating not found: rating_id=%d", ratingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, ratings.ErrAlreadyModerated):
			h.logger.Warn("PATCH /ratings/{id}/status - Already moderated: rating_id=%d", ratingID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyModerated)

		case errors.Is(err, ratings.ErrAccessDenied):
			h.logger.Warn("PATCH /ratings/{id}/status - Access denied: rating_id=%d, user_id=%d",
				ratingID, req.ModeratorID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, ratings.ErrInvalidInput):
			h.logger.Warn("PATCH /ratings/{id}/status - Invalid status: rating_id=%d, status=%q",
				ratingID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /ratings/{id}/status - Failed to moderate rating: rating_id=%d, error=%v",
				ratingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /ratings/{id}/status - Rating moderated: rating_id=%d, status=%s",
		ratingID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
