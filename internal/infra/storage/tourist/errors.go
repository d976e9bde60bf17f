package tourist

import "errors"

var (
	// ErrTouristNotFound возвращается, когда турист не найден
	ErrTouristNotFound = errors.New("tourist.repository: tourist not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("tourist.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("tourist.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("tourist.repository: failed to scan row")
)
