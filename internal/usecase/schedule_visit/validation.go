package schedule_visit

import (
	"fmt"
	"time"

	"github.com/travelparadise/TP-VisitService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.GuideID <= 0 {
		return fmt.Errorf("%w: guideID must be positive", ErrInvalidInput)
	}

	if req.PlaceID <= 0 {
		return fmt.Errorf("%w: placeID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateSchedule проверяет параметры расписания:
// положительная длительность, окно в пределах одного дня, дата не в прошлом
func validateSchedule(req *Request, now time.Time) error {
	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidSchedule)
	}

	// Окно обязано закрываться в тот же день: визит с некорректным
	// временем окончания сломал бы все последующие проверки пересечений
	window := domain.TimeWindow{Start: req.StartTime, DurationMinutes: req.DurationMinutes}
	if _, err := window.End(); err != nil {
		return fmt.Errorf("%w: visit must end within the same day: %v", ErrInvalidSchedule, err)
	}

	if isDateInPast(req.Date, now) {
		return fmt.Errorf("%w: date is in the past", ErrInvalidSchedule)
	}

	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
