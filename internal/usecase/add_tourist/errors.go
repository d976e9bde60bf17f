package add_tourist

import "errors"

var (
	// ErrVisitNotFound возвращается, когда визит не найден
	ErrVisitNotFound = errors.New("add_tourist: visit not found")

	// ErrVisitNotActive возвращается при попытке добавить туриста
	// к завершённому или отменённому визиту
	ErrVisitNotActive = errors.New("add_tourist: visit is not active")

	// ErrCapacityExceeded возвращается, когда группа визита уже заполнена
	ErrCapacityExceeded = errors.New("add_tourist: visit capacity exceeded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("add_tourist: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("add_tourist: internal error")
)
