package models

import (
	"time"

	"github.com/travelparadise/TP-VisitService/internal/domain"
)

// MarkPresenceRequest запрос на отметку присутствия туриста
type MarkPresenceRequest struct {
	IsPresent bool    `json:"isPresent"`
	Comment   *string `json:"comment,omitempty"`
}

// TouristResponse ответ с данными туриста
type TouristResponse struct {
	ID        int64   `json:"id"`
	VisitID   int64   `json:"visitId"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	IsPresent bool    `json:"isPresent"`
	Comment   *string `json:"comment,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// FromDomainTourist конвертирует domain модель в response
func FromDomainTourist(t *domain.Tourist) *TouristResponse {
	return &TouristResponse{
		ID:        t.ID,
		VisitID:   t.VisitID,
		FirstName: t.FirstName,
		LastName:  t.LastName,
		IsPresent: t.IsPresent,
		Comment:   t.Comment,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
		UpdatedAt: t.UpdatedAt.Format(time.RFC3339),
	}
}

// TouristListResponse ответ со списком туристов визита
type TouristListResponse struct {
	Tourists []*TouristResponse `json:"tourists"`
}

// FromDomainTouristList конвертирует список domain моделей в response
func FromDomainTouristList(tourists []*domain.Tourist) *TouristListResponse {
	result := &TouristListResponse{
		Tourists: make([]*TouristResponse, 0, len(tourists)),
	}
	for _, t := range tourists {
		result.Tourists = append(result.Tourists, FromDomainTourist(t))
	}
	return result
}
