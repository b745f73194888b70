package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/seo-analyst-api/internal/domain"
	"github.com/vfg2006/seo-analyst-api/internal/usecases/authenticating"
	"github.com/vfg2006/seo-analyst-api/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeySession contextKey = "session"
)

// SessionCookieName é o nome do cookie que carrega o token de sessão assinado
const SessionCookieName = "seo_analyst_session"

// SessionRequired exige uma sessão Google válida para acessar a rota. A sessão
// resolvida fica disponível no contexto da requisição.
func SessionRequired(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := sessionTokenFromRequest(r)
			if tokenString == "" {
				apiErrors.WriteError(w, apiErrors.ErrNotAuthenticated, "Not authenticated", nil)
				return
			}

			session, err := authService.SessionFromToken(r.Context(), tokenString)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrNotAuthenticated, "Not authenticated", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext recupera a sessão colocada no contexto pelo middleware
func SessionFromContext(ctx context.Context) *domain.Session {
	session, ok := ctx.Value(ContextKeySession).(*domain.Session)
	if !ok {
		return nil
	}
	return session
}

// sessionTokenFromRequest busca o token de sessão no cookie ou, como
// alternativa para clientes não navegadores, no header Authorization
func sessionTokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return ""
	}

	return tokenString
}
