package create_rating

import (
	"github.com/travelparadise/TP-VisitService/internal/service/ratings/models"
)

// CreateRatingRequest HTTP request model
type CreateRatingRequest struct {
	UserID  int64  `json:"userId"`
	Score   int    `json:"score"` // 1..5
	Comment string `json:"comment,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateRatingRequest) ToServiceRequest(visitID int64) *models.CreateRatingRequest {
	return &models.CreateRatingRequest{
		VisitID: visitID,
		UserID:  r.UserID,
		Score:   r.Score,
		Comment: r.Comment,
	}
}
