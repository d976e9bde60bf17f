package approve_refund

import "errors"

var (
	// ErrRefundNotFound возвращается, когда возврат не найден
	ErrRefundNotFound = errors.New("approve_refund: refund not found")

	// ErrAlreadyProcessed возвращается при попытке одобрить уже
	// обработанный возврат
	ErrAlreadyProcessed = errors.New("approve_refund: refund already processed")

	// ErrAccessDenied возвращается, когда пользователь не имеет прав
	// на обработку возвратов
	ErrAccessDenied = errors.New("approve_refund: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("approve_refund: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("approve_refund: internal error")
)
