package create_rating

import (
	"context"

	"github.com/travelparadise/TP-VisitService/internal/service/ratings/models"
)

type RatingService interface {
	Create(ctx context.Context, req *models.CreateRatingRequest) (*models.RatingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
