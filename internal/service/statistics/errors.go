package statistics

import "errors"

var (
	// ErrInvalidRange возвращается, когда начало периода позже его конца
	ErrInvalidRange = errors.New("statistics: start date is after end date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("statistics: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("statistics: internal error")
)
