package schedule_visit

import "errors"

var (
	// ErrGuideNotFound возвращается, когда гид не найден
	ErrGuideNotFound = errors.New("schedule_visit: guide not found")

	// ErrGuideInactive возвращается, когда гид не активен
	ErrGuideInactive = errors.New("schedule_visit: guide is not active")

	// ErrPlaceNotFound возвращается, когда место не найдено
	ErrPlaceNotFound = errors.New("schedule_visit: place not found")

	// ErrInvalidSchedule возвращается при некорректных параметрах расписания:
	// дата в прошлом или неположительная длительность
	ErrInvalidSchedule = errors.New("schedule_visit: invalid schedule parameters")

	// ErrGuideUnavailable возвращается, когда гид занят в запрошенном окне:
	// день заблокирован или есть пересекающийся визит
	ErrGuideUnavailable = errors.New("schedule_visit: guide is unavailable in the requested window")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule_visit: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("schedule_visit: internal error")
)
