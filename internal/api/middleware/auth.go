package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
)

type ctxKey string

const userIDKey ctxKey = "userID"

const msgMissingUserID = "отсутствует или некорректен заголовок X-User-ID"

// Auth извлекает X-User-ID из заголовка и кладет его в контекст запроса.
// Проверку подлинности выполняет внешний gateway, здесь только контракт.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-User-ID")
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext возвращает ID пользователя, положенный Auth middleware
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
