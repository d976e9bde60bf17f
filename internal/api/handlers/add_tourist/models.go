package add_tourist

import (
	"time"

	addTourist "github.com/travelparadise/TP-VisitService/internal/usecase/add_tourist"
)

// AddTouristRequest HTTP request model
type AddTouristRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Comment   *string `json:"comment,omitempty"`
}

// TouristResponse HTTP response model
type TouristResponse struct {
	ID        int64   `json:"id"`
	VisitID   int64   `json:"visitId"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	IsPresent bool    `json:"isPresent"`
	Comment   *string `json:"comment,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AddTouristRequest) ToUseCaseRequest(visitID int64) *addTourist.Request {
	return &addTourist.Request{
		VisitID:   visitID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Comment:   r.Comment,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *addTourist.Response) *TouristResponse {
	return &TouristResponse{
		ID:        resp.ID,
		VisitID:   resp.VisitID,
		FirstName: resp.FirstName,
		LastName:  resp.LastName,
		IsPresent: resp.IsPresent,
		Comment:   resp.Comment,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
