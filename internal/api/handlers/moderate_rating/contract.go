package moderate_rating

import (
	"context"

	"github.com/travelparadise/TP-VisitService/internal/service/ratings/models"
)

type RatingService interface {
	Moderate(ctx context.Context, ratingID int64, req *models.ModerateRatingRequest) (*models.RatingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
