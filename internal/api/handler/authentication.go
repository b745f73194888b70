package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seo-analyst-api/internal/config"
	"github.com/vfg2006/seo-analyst-api/internal/usecases/authenticating"
	"github.com/vfg2006/seo-analyst-api/pkg/apiErrors"
	"github.com/vfg2006/seo-analyst-api/pkg/middleware"
)

// stateCookieName guarda o token anti-CSRF entre o redirect para o Google e o
// retorno no callback
const stateCookieName = "seo_analyst_oauth_state"

type AuthenticatedUserResponse struct {
	Authenticated bool      `json:"authenticated"`
	SessionID     string    `json:"sessionId"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

// LoginGoogle redireciona o navegador para a tela de consentimento do Google
func LoginGoogle(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := service.GenerateState()
		if err != nil {
			logrus.WithError(err).Error("Erro ao gerar state do fluxo OAuth")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao iniciar autenticação", nil)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     stateCookieName,
			Value:    state,
			Path:     "/",
			MaxAge:   int((10 * time.Minute).Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		http.Redirect(w, r, service.AuthURL(state), http.StatusFound)
	}
}

// AuthCallback recebe o retorno do Google, troca o código por uma sessão e
// devolve o navegador para o frontend já autenticado
func AuthCallback(cfg *config.Config, service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if errParam := r.URL.Query().Get("error"); errParam != "" {
			logrus.WithField("oauth_error", errParam).Warn("Google recusou a autorização")
			apiErrors.WriteError(w, apiErrors.ErrOAuthExchange, "Autorização negada pelo Google", nil)
			return
		}

		stateCookie, err := r.Cookie(stateCookieName)
		if err != nil || stateCookie.Value == "" || stateCookie.Value != r.URL.Query().Get("state") {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "State do fluxo OAuth inválido", nil)
			return
		}

		token, err := service.HandleCallback(r.Context(), r.URL.Query().Get("code"))
		if err != nil {
			handleAuthError(w, err)
			return
		}

		clearCookie(w, stateCookieName)

		http.SetCookie(w, &http.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    token,
			Path:     "/",
			MaxAge:   int(service.SessionTTL().Seconds()),
			HttpOnly: true,
			Secure:   strings.HasPrefix(cfg.App.BaseURL, "https://"),
			SameSite: http.SameSiteLaxMode,
		})

		http.Redirect(w, r, cfg.App.FrontendURL, http.StatusFound)
	}
}

// GetAuthenticatedUser informa ao frontend se a sessão atual ainda vale
func GetAuthenticatedUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := middleware.SessionFromContext(r.Context())
		if session == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotAuthenticated, "Not authenticated", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(AuthenticatedUserResponse{
			Authenticated: true,
			SessionID:     session.ID,
			ExpiresAt:     session.ExpiresAt,
		})
		if err != nil {
			logrus.WithError(err).Error("Erro ao enviar resposta de usuário autenticado")
		}
	}
}

// Logout encerra a sessão no banco e limpa o cookie. Sempre responde sucesso:
// um cookie inválido já significa que não há sessão para encerrar.
func Logout(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
			session, err := service.SessionFromToken(r.Context(), cookie.Value)
			if err == nil && session != nil {
				if err := service.Logout(r.Context(), session.ID); err != nil {
					logrus.WithError(err).Warn("Erro ao encerrar sessão no logout")
				}
			}
		}

		clearCookie(w, middleware.SessionCookieName)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status": "logged_out",
		})
	}
}

// handleAuthError traduz erros de autenticação para a resposta da API
func handleAuthError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao autenticar", nil)
}

func clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
