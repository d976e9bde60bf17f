package availability

import "errors"

var (
	// ErrGuideNotFound возвращается, когда гид не найден
	ErrGuideNotFound = errors.New("availability: guide not found")

	// ErrConflictingSchedule возвращается при попытке освободить день,
	// на который у гида уже есть неотменённый визит
	ErrConflictingSchedule = errors.New("availability: guide has a scheduled visit on this date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)
