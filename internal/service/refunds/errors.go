package refunds

import "errors"

var (
	// ErrVisitNotFound возвращается, когда визит не найден
	ErrVisitNotFound = errors.New("refunds: visit not found")

	// ErrRefundNotFound возвращается, когда возврат не найден
	ErrRefundNotFound = errors.New("refunds: refund not found")

	// ErrPendingRefundExists возвращается при повторном запросе возврата,
	// пока предыдущий по тому же визиту не обработан
	ErrPendingRefundExists = errors.New("refunds: pending refund already exists for this visit")

	// ErrAlreadyProcessed возвращается при попытке обработать уже
	// обработанный возврат
	ErrAlreadyProcessed = errors.New("refunds: refund already processed")

	// ErrAccessDenied возвращается, когда пользователь не имеет прав на операцию
	ErrAccessDenied = errors.New("refunds: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("refunds: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("refunds: internal error")
)
