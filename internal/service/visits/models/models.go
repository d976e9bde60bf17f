package models

import (
	"errors"
	"time"

	"github.com/travelparadise/TP-VisitService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid visit status")
)

// Request модели

// UpdateStatusRequest запрос на обновление статуса визита
type UpdateStatusRequest struct {
	UserID             int64   `json:"userId"`
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"` // Учитывается только для cancelled
}

// CloseVisitRequest запрос на завершение визита с итоговым комментарием
type CloseVisitRequest struct {
	UserID         int64   `json:"userId"`
	GeneralComment *string `json:"generalComment,omitempty"`
}

// ListVisitsRequest запрос на выборку визитов гида
type ListVisitsRequest struct {
	GuideID int64      `json:"guideId"`
	Date    *time.Time `json:"date,omitempty"`
	Status  *string    `json:"status,omitempty"`
}

// ToDomainVisitStatus конвертирует строку в domain.VisitStatus
func ToDomainVisitStatus(status string) (domain.VisitStatus, error) {
	switch domain.VisitStatus(status) {
	case domain.VisitScheduled, domain.VisitInProgress, domain.VisitCompleted, domain.VisitCancelled:
		return domain.VisitStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}

// Response модели

// VisitResponse ответ с данными визита
type VisitResponse struct {
	ID                 int64   `json:"id"`
	GuideID            int64   `json:"guideId"`
	PlaceID            int64   `json:"placeId"`
	Location           string  `json:"location"`
	Date               string  `json:"date"`      // "2026-06-15"
	StartTime          string  `json:"startTime"` // "10:00"
	EndTime            string  `json:"endTime"`   // Производное: startTime + duration
	DurationMinutes    int     `json:"durationMinutes"`
	Status             string  `json:"status"`
	GeneralComment     *string `json:"generalComment,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// FromDomainVisit конвертирует domain модель в response
func FromDomainVisit(v *domain.Visit) *VisitResponse {
	resp := &VisitResponse{
		ID:                 v.ID,
		GuideID:            v.GuideID,
		PlaceID:            v.PlaceID,
		Location:           v.Location,
		Date:               v.Date.Format(domain.DateFormat),
		StartTime:          v.StartTime.String(),
		DurationMinutes:    v.DurationMinutes,
		Status:             string(v.Status),
		GeneralComment:     v.GeneralComment,
		CancellationReason: v.CancellationReason,
		CreatedAt:          v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          v.UpdatedAt.Format(time.RFC3339),
	}

	if end, err := v.EndTime(); err == nil {
		resp.EndTime = end.String()
	}

	return resp
}

// VisitListResponse ответ со списком визитов
type VisitListResponse struct {
	Visits []*VisitResponse `json:"visits"`
}

// FromDomainVisitList конвертирует список domain моделей в response
func FromDomainVisitList(visits []*domain.Visit) *VisitListResponse {
	result := &VisitListResponse{
		Visits: make([]*VisitResponse, 0, len(visits)),
	}
	for _, v := range visits {
		result.Visits = append(result.Visits, FromDomainVisit(v))
	}
	return result
}
