package approve_refund

import "time"

// Request модель запроса на одобрение возврата
type Request struct {
	RefundID    int64 // ID возврата
	ProcessedBy int64 // ID обрабатывающего пользователя
}

// Response модель ответа с одобренным возвратом
type Response struct {
	RefundID    int64     // ID возврата
	VisitID     int64     // ID связанного визита
	Amount      float64   // Сумма возврата
	Status      string    // Статус возврата (approved)
	VisitStatus string    // Статус визита после каскадной отмены
	ProcessedBy int64     // Кто обработал
	ProcessedAt time.Time // Когда обработал
}
