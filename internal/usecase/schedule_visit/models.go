package schedule_visit

import (
	"time"

	"github.com/travelparadise/TP-VisitService/pkg/types"
)

// Request модель запроса на постановку визита в расписание
type Request struct {
	GuideID         int64            // ID гида
	PlaceID         int64            // ID места
	Date            time.Time        // Дата визита (без времени)
	StartTime       types.TimeString // Время начала (например, "10:00")
	DurationMinutes int              // Длительность в минутах
}

// Response модель ответа с созданным визитом
type Response struct {
	ID              int64            // ID созданного визита
	GuideID         int64            // ID гида
	PlaceID         int64            // ID места
	Location        string           // Денормализованное название места
	Date            time.Time        // Дата визита
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Производное время окончания
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус визита

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
