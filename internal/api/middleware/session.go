package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/DMar-BookingService/pkg/reqctx"
)

// SessionHeader заголовок с идентификатором сессии посетителя
const SessionHeader = "X-Session-ID"

// Session гарантирует идентификатор сессии у каждого запроса.
// Отсутствующий или некорректный идентификатор заменяется новым UUID,
// итоговый идентификатор возвращается в заголовке ответа.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(SessionHeader)
		if _, err := uuid.Parse(sessionID); err != nil {
			sessionID = uuid.NewString()
		}

		w.Header().Set(SessionHeader, sessionID)
		ctx := reqctx.WithSessionID(r.Context(), sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionID извлекает идентификатор сессии из контекста
func GetSessionID(ctx context.Context) (string, bool) {
	return reqctx.SessionID(ctx)
}
