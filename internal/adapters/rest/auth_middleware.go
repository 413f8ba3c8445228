package rest

import (
	"context"
	"net/http"
	"strings"
)

// Определяем кастомный тип для ключа контекста, чтобы избежать коллизий.
type contextKey string

const brokerEmailKey = contextKey("brokerEmail")

// BrokerMiddleware извлекает email брокера из заголовка X-Broker-Email.
// Email — ключ арендатора: все выборки и мутации ограничены им.
func BrokerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := strings.TrimSpace(r.Header.Get("X-Broker-Email"))
		if email == "" {
			WriteJSONError(w, http.StatusUnauthorized, "X-Broker-Email header is missing")
			return
		}

		ctx := context.WithValue(r.Context(), brokerEmailKey, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// brokerEmailFromContext достает email, положенный BrokerMiddleware
func brokerEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(brokerEmailKey).(string)
	return email, ok && email != ""
}
