package tourists

import "errors"

var (
	// ErrTouristNotFound возвращается, когда турист не найден
	ErrTouristNotFound = errors.New("tourists: tourist not found")

	// ErrVisitNotFound возвращается, когда визит не найден
	ErrVisitNotFound = errors.New("tourists: visit not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("tourists: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("tourists: internal error")
)
