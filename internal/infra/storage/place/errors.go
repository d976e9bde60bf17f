package place

import "errors"

var (
	// ErrPlaceNotFound возвращается, когда место не найдено
	ErrPlaceNotFound = errors.New("place.repository: place not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("place.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("place.repository: failed to scan row")
)
