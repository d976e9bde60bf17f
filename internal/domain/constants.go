package domain

// Business rule constants
const (
	// MaxTouristsPerVisit максимальный размер группы на одном визите
	MaxTouristsPerVisit = 15

	// MinRatingScore / MaxRatingScore допустимый диапазон оценки
	MinRatingScore = 1
	MaxRatingScore = 5

	// MaxReasonLength ограничение длины причин (возврат, отмена, недоступность)
	MaxReasonLength = 500
	// MaxCommentLength ограничение длины комментариев
	MaxCommentLength = 1000
)

// Refund policy tiers
const (
	// FullRefundAboveDays: строго больше этого числа дней до визита → 100%
	FullRefundAboveDays = 7
	// HalfRefundMinDays: от этого числа дней (включительно) до FullRefundAboveDays → 50%
	HalfRefundMinDays = 3
	// HalfRefundRate доля возврата на среднем ярусе
	HalfRefundRate = 0.5
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveVisitStatuses статусы, при которых визит занимает время гида.
// Используется при проверках доступности и конфликтов расписания.
// Статус визита - единственный источник истины: отдельных флагов
// isCancelled/isFinished в схеме нет.
var ActiveVisitStatuses = []VisitStatus{
	VisitScheduled,
	VisitInProgress,
	VisitCompleted,
}
