package ratings

import "errors"

var (
	// ErrVisitNotFound возвращается, когда визит не найден
	ErrVisitNotFound = errors.New("ratings: visit not found")

	// ErrRatingNotFound возвращается, когда оценка не найдена
	ErrRatingNotFound = errors.New("ratings: rating not found")

	// ErrDuplicateRating возвращается при повторной оценке визита
	// тем же пользователем
	ErrDuplicateRating = errors.New("ratings: rating already exists for this visit")

	// ErrAlreadyModerated возвращается при попытке модерировать оценку,
	// уже покинувшую очередь модерации
	ErrAlreadyModerated = errors.New("ratings: rating already moderated")

	// ErrAccessDenied возвращается, когда пользователь не имеет прав на операцию
	ErrAccessDenied = errors.New("ratings: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("ratings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("ratings: internal error")
)
