package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/pkg/authctx"
)

const (
	headerUserID        = "X-User-ID"
	headerAuthorization = "Authorization"
	bearerPrefix        = "Bearer "

	msgMissingUserID = "Thiếu thông tin người dùng"
)

type userIDKey struct{}

// Auth требует X-User-ID и пробрасывает bearer-токен в клиенты ресурсных сервисов
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(strings.TrimSpace(r.Header.Get(headerUserID)), 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		if auth := r.Header.Get(headerAuthorization); strings.HasPrefix(auth, bearerPrefix) {
			ctx = authctx.WithToken(ctx, strings.TrimSpace(strings.TrimPrefix(auth, bearerPrefix)))
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя, установленный Auth
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	return id, ok
}
