package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
)

const (
	headerSessionID = "X-Session-ID"
	maxSessionLen   = 128

	msgMissingSession = "Thiếu mã phiên làm việc"
)

type sessionKey struct{}

// Session требует заголовок X-Session-ID, которым владеет корзина браузера
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := strings.TrimSpace(r.Header.Get(headerSessionID))
		if sessionID == "" || len(sessionID) > maxSessionLen {
			handlers.RespondBadRequest(w, msgMissingSession)
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey{}, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionID возвращает ID сессии, установленный Session
func GetSessionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionKey{}).(string)
	return id, ok && id != ""
}
