package middleware

import (
	"net/http"
	"strconv"

	"github.com/travelparadise/TP-VisitService/internal/api/handlers"
)

const userIDHeader = "X-User-ID"

// Auth требует заголовок X-User-ID с валидным числовым ID.
// Сам ID действующего пользователя обработчики читают из тела запроса;
// middleware отвечает только за то, что запрос пришёл от аутентифицированного
// клиента (заголовок проставляет API gateway).
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(userIDHeader)
		if raw == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "требуется заголовок X-User-ID")
			return
		}

		if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
			handlers.RespondError(w, http.StatusUnauthorized, "некорректный заголовок X-User-ID")
			return
		}

		next.ServeHTTP(w, r)
	})
}
