package models

import (
	"time"

	"github.com/travelparadise/TP-VisitService/internal/domain"
)

// SetUnavailableRequest запрос на блокировку дня гида
type SetUnavailableRequest struct {
	GuideID int64
	Date    time.Time
	Reason  *string
}

// ScheduleUpdateResponse результат изменения расписания гида.
// Warning заполняется, когда день заблокирован поверх существующих
// визитов: операция разрешена, но вызывающая сторона должна увидеть конфликт.
type ScheduleUpdateResponse struct {
	GuideID int64   `json:"guideId"`
	Date    string  `json:"date"`
	Message string  `json:"message"`
	Warning *string `json:"warning,omitempty"`
}

// DayAvailability доступность гида на календарный день
type DayAvailability struct {
	GuideID    int64   `json:"guideId"`
	Date       string  `json:"date"`
	Available  bool    `json:"available"`
	Reason     *string `json:"reason,omitempty"` // Причина недоступности, если заблокирован
	VisitCount int     `json:"visitCount"`       // Число неотменённых визитов в этот день
}

// ReplacementGuide гид, доступный для замены
type ReplacementGuide struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Country   string `json:"country"`
}

// FromDomainGuide конвертирует domain модель в DTO замены
func FromDomainGuide(g *domain.Guide) ReplacementGuide {
	return ReplacementGuide{
		ID:        g.ID,
		FirstName: g.FirstName,
		LastName:  g.LastName,
		Country:   g.Country,
	}
}

// ReplacementListResponse ответ со списком доступных замен
type ReplacementListResponse struct {
	Guides []ReplacementGuide `json:"guides"`
}
