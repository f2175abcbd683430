package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-HallBookingService/internal/api/handlers"
)

// AdminCodeHeader заголовок с кодом администратора
const AdminCodeHeader = "X-Admin-Code"

const msgMissingAdminCode = "отсутствует заголовок X-Admin-Code"

type contextKey string

const adminCodeKey contextKey = "admin_code"

// AdminAuth требует X-Admin-Code и кладет его в контекст.
// Проверка учетных данных выполняется вне сервиса.
func AdminAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		code := strings.TrimSpace(r.Header.Get(AdminCodeHeader))
		if code == "" {
			handlers.RespondUnauthorized(w, msgMissingAdminCode)
			return
		}

		ctx := context.WithValue(r.Context(), adminCodeKey, code)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAdminCode извлекает код администратора из контекста
func GetAdminCode(ctx context.Context) (string, bool) {
	code, ok := ctx.Value(adminCodeKey).(string)
	return code, ok
}

// WithAdminCode кладет код администратора в контекст (для тестов хендлеров)
func WithAdminCode(ctx context.Context, code string) context.Context {
	return context.WithValue(ctx, adminCodeKey, code)
}
