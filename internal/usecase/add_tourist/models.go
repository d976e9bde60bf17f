package add_tourist

import "time"

// Request модель запроса на добавление туриста к визиту
type Request struct {
	VisitID   int64   // ID визита
	FirstName string  // Имя туриста
	LastName  string  // Фамилия туриста
	Comment   *string // Комментарий (опционально)
}

// Response модель ответа с добавленным туристом
type Response struct {
	ID        int64   // ID туриста
	VisitID   int64   // ID визита
	FirstName string  // Имя
	LastName  string  // Фамилия
	IsPresent bool    // Отметка присутствия; при добавлении всегда false
	Comment   *string // Комментарий

	CreatedAt time.Time // Время создания
}
