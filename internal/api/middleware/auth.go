package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-SalonAvailability/internal/api/handlers"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"

	RoleAdmin = "admin"

	msgUnauthorized = "требуется заголовок X-User-ID"
	msgForbidden    = "доступ запрещен"
)

type userKey struct{}

// User идентификатор и роль пользователя из заголовков, проставленных шлюзом
type User struct {
	ID   int64
	Role string
}

// IsAdmin возвращает true для администратора салона
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserFromContext возвращает пользователя, сохранённого Auth
func UserFromContext(ctx context.Context) (User, bool) {
	u, ok := ctx.Value(userKey{}).(User)
	return u, ok
}

// Auth требует положительный X-User-ID и сохраняет пользователя в контексте
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.Header.Get(HeaderUserID), 10, 64)
		if err != nil || id <= 0 {
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}

		user := User{
			ID:   id,
			Role: strings.ToLower(strings.TrimSpace(r.Header.Get(HeaderUserRole))),
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey{}, user)))
	})
}

// RequireAdmin пропускает только администратора. Ставится после Auth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}
		if !user.IsAdmin() {
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
