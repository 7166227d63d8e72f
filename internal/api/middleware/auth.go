package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/tourism-booking-service/internal/api/handlers"
	"github.com/m04kA/tourism-booking-service/internal/domain"
)

const (
	// HeaderUserID ID пользователя, проверенный шлюзом
	HeaderUserID = "X-User-ID"
	// HeaderUserRole роль пользователя, проверенная шлюзом
	HeaderUserRole = "X-User-Role"

	msgUnauthorized = "требуется авторизация"
)

type actorKey struct{}

// SessionParser проверяет сессионный токен
type SessionParser interface {
	Parse(token string) (domain.Actor, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// IdentityFunc достает личность пользователя из запроса
type IdentityFunc func(r *http.Request) (domain.Actor, bool)

// HeaderIdentity доверяет заголовкам X-User-ID / X-User-Role
func HeaderIdentity() IdentityFunc {
	return func(r *http.Request) (domain.Actor, bool) {
		userID, err := strconv.ParseInt(strings.TrimSpace(r.Header.Get(HeaderUserID)), 10, 64)
		if err != nil || userID <= 0 {
			return domain.Actor{}, false
		}
		return domain.Actor{UserID: userID, Role: domain.ParseRole(r.Header.Get(HeaderUserRole))}, true
	}
}

// SessionIdentity проверяет JWT из cookie или заголовка Authorization: Bearer
func SessionIdentity(parser SessionParser, cookieName string) IdentityFunc {
	return func(r *http.Request) (domain.Actor, bool) {
		token := ""
		if cookie, err := r.Cookie(cookieName); err == nil {
			token = cookie.Value
		}
		if token == "" {
			header := r.Header.Get("Authorization")
			if after, ok := strings.CutPrefix(header, "Bearer "); ok {
				token = strings.TrimSpace(after)
			}
		}
		if token == "" {
			return domain.Actor{}, false
		}

		actor, err := parser.Parse(token)
		if err != nil {
			return domain.Actor{}, false
		}
		return actor, true
	}
}

// Auth кладет личность пользователя в контекст; без личности запрос отклоняется с 401
func Auth(identify IdentityFunc, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := identify(r)
			if !ok {
				logger.Warn("%s %s - Unauthorized request", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

// WithActor кладет личность пользователя в контекст
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// GetActor достает личность пользователя из контекста
func GetActor(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(domain.Actor)
	return actor, ok
}

// GetUserID достает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	actor, ok := GetActor(ctx)
	if !ok {
		return 0, false
	}
	return actor.UserID, true
}
