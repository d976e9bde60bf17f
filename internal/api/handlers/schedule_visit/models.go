package schedule_visit

import (
	"time"

	"github.com/travelparadise/TP-VisitService/internal/domain"
	scheduleVisit "github.com/travelparadise/TP-VisitService/internal/usecase/schedule_visit"
	"github.com/travelparadise/TP-VisitService/pkg/types"
)

// ScheduleVisitRequest HTTP request model
type ScheduleVisitRequest struct {
	GuideID         int64  `json:"guideId"`
	PlaceID         int64  `json:"placeId"`
	Date            string `json:"date"`      // "2026-06-15"
	StartTime       string `json:"startTime"` // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
}

// VisitResponse HTTP response model
type VisitResponse struct {
	ID              int64  `json:"id"`
	GuideID         int64  `json:"guideId"`
	PlaceID         int64  `json:"placeId"`
	Location        string `json:"location"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ScheduleVisitRequest) ToUseCaseRequest() (*scheduleVisit.Request, error) {
	visitDate, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &scheduleVisit.Request{
		GuideID:         r.GuideID,
		PlaceID:         r.PlaceID,
		Date:            visitDate,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *scheduleVisit.Response) *VisitResponse {
	return &VisitResponse{
		ID:              resp.ID,
		GuideID:         resp.GuideID,
		PlaceID:         resp.PlaceID,
		Location:        resp.Location,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
