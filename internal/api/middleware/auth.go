package middleware

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const tokenKey contextKey = "bearer_token"

// BearerToken кладет Bearer токен из заголовка Authorization в контекст запроса
// Отсутствие токена не ошибка: решение об авторизации принимает use case
func BearerToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r.Header.Get("Authorization"))
		if token != "" {
			r = r.WithContext(context.WithValue(r.Context(), tokenKey, token))
		}
		next.ServeHTTP(w, r)
	})
}

// GetToken возвращает Bearer токен из контекста, пустую строку если его нет
func GetToken(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}

func extractToken(header string) string {
	const prefix = "bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
