package update_guide_schedule

import (
	"time"

	"github.com/travelparadise/TP-VisitService/internal/domain"
	"github.com/travelparadise/TP-VisitService/internal/service/availability/models"
)

// UpdateScheduleRequest HTTP request model.
// available=false блокирует день (reason обязателен на уровне сервиса),
// available=true снимает блокировку.
type UpdateScheduleRequest struct {
	Date      string  `json:"date"` // "2026-06-15"
	Available bool    `json:"available"`
	Reason    *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateScheduleRequest) ToServiceRequest(guideID int64) (*models.SetUnavailableRequest, time.Time, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, time.Time{}, err
	}

	return &models.SetUnavailableRequest{
		GuideID: guideID,
		Date:    date,
		Reason:  r.Reason,
	}, date, nil
}
