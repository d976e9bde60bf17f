package models

import (
	"time"

	"github.com/travelparadise/TP-VisitService/internal/domain"
)

// Request модели

// CreateRatingRequest запрос на создание оценки визита
type CreateRatingRequest struct {
	VisitID int64  `json:"visitId"`
	UserID  int64  `json:"userId"`
	Score   int    `json:"score"` // 1..5
	Comment string `json:"comment,omitempty"`
}

// ModerateRatingRequest запрос на модерацию оценки
type ModerateRatingRequest struct {
	Status      string `json:"status"` // approved | rejected | flagged
	ModeratorID int64  `json:"moderatorId"`
}

// Response модели

// RatingResponse ответ с данными оценки
type RatingResponse struct {
	ID        int64  `json:"id"`
	VisitID   int64  `json:"visitId"`
	UserID    int64  `json:"userId"`
	Score     int    `json:"score"`
	Comment   string `json:"comment,omitempty"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// FromDomainRating конвертирует domain модель в response
func FromDomainRating(r *domain.Rating) *RatingResponse {
	return &RatingResponse{
		ID:        r.ID,
		VisitID:   r.VisitID,
		UserID:    r.UserID,
		Score:     r.Score,
		Comment:   r.Comment,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}
