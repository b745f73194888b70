package authenticating

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seo-analyst-api/infrastructure/repository"
	"github.com/vfg2006/seo-analyst-api/internal/config"
	"github.com/vfg2006/seo-analyst-api/internal/domain"
	"github.com/vfg2006/seo-analyst-api/pkg/apiErrors"
)

const (
	// Escopo mínimo: leitura do Search Console, nada além
	oauthScope = "https://www.googleapis.com/auth/webmasters.readonly"

	callbackPath    = "/v1/auth/callback"
	sessionIDLength = 21
)

type Authenticator interface {
	AuthURL(state string) string
	GenerateState() (string, error)
	HandleCallback(ctx context.Context, code string) (string, error)
	SessionFromToken(ctx context.Context, tokenString string) (*domain.Session, error)
	Logout(ctx context.Context, sessionID string) error
	SessionTTL() time.Duration
}

type Service struct {
	cfg         *config.Config
	sessionRepo repository.SessionRepository
	httpClient  *http.Client
}

func NewService(cfg *config.Config, sessionRepo repository.SessionRepository) Authenticator {
	return &Service{
		cfg:         cfg,
		sessionRepo: sessionRepo,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// AuthURL monta a URL da tela de consentimento do Google. O access_type
// offline com prompt consent garante que o Google devolva um refresh token,
// sem o qual a sessão morreria junto com o access token.
func (s *Service) AuthURL(state string) string {
	params := url.Values{}
	params.Set("client_id", s.cfg.Google.ClientID)
	params.Set("redirect_uri", s.redirectURI())
	params.Set("response_type", "code")
	params.Set("scope", oauthScope)
	params.Set("access_type", "offline")
	params.Set("prompt", "consent")
	params.Set("state", state)

	return fmt.Sprintf("%s?%s", s.cfg.Google.AuthURL, params.Encode())
}

// GenerateState gera o token anti-CSRF do fluxo OAuth
func (s *Service) GenerateState() (string, error) {
	return gonanoid.New(sessionIDLength)
}

// HandleCallback troca o código de autorização por tokens do Google, persiste
// a sessão e devolve o token JWT que identifica a sessão no cookie.
func (s *Service) HandleCallback(ctx context.Context, code string) (string, error) {
	if code == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrInvalidRequest, "Código de autorização ausente")
	}

	tokens, err := s.exchangeCode(ctx, code)
	if err != nil {
		return "", NewAuthError(ErrOAuthExchange, apiErrors.ErrOAuthExchange, err.Error())
	}

	if tokens.RefreshToken == "" {
		// Sem refresh token a sessão expira junto com o access token; segue
		// valendo, mas fica registrado para diagnóstico
		logrus.Warn("authenticating: Google não devolveu refresh token no callback")
	}

	sessionID, err := gonanoid.New(sessionIDLength)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar identificador de sessão")
	}

	now := time.Now().UTC()
	session := &domain.Session{
		ID:           sessionID,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		TokenExpiry:  now.Add(time.Duration(tokens.ExpiresIn) * time.Second),
		CreatedAt:    now,
		ExpiresAt:    now.Add(s.SessionTTL()),
	}

	if err := s.sessionRepo.Save(session); err != nil {
		return "", NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao salvar sessão")
	}

	token, err := s.generateSessionJWT(session)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de sessão")
	}

	return token, nil
}

// SessionFromToken valida o JWT do cookie e carrega a sessão correspondente
func (s *Service) SessionFromToken(ctx context.Context, tokenString string) (*domain.Session, error) {
	claims, err := s.validateSessionJWT(tokenString)
	if err != nil {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrNotAuthenticated, err.Error())
	}

	session, err := s.sessionRepo.GetByID(claims.SessionID)
	if err != nil {
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao consultar sessão")
	}

	if session == nil {
		return nil, NewAuthError(ErrSessionNotFound, apiErrors.ErrNotAuthenticated, "Sessão não encontrada")
	}

	if session.Expired(time.Now().UTC()) {
		// Limpeza oportunista; o scheduler cobre o que escapar daqui
		if err := s.sessionRepo.Delete(session.ID); err != nil {
			logrus.WithError(err).Warn("authenticating: erro ao remover sessão expirada")
		}
		return nil, NewAuthError(ErrSessionExpired, apiErrors.ErrSessionExpired, "Sessão expirada")
	}

	return session, nil
}

// Logout encerra a sessão no banco; o handler limpa o cookie
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := s.sessionRepo.Delete(sessionID); err != nil {
		return NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao encerrar sessão")
	}

	return nil
}

func (s *Service) SessionTTL() time.Duration {
	return time.Duration(s.cfg.Auth.SessionTTLHours) * time.Hour
}

func (s *Service) redirectURI() string {
	return strings.TrimSuffix(s.cfg.App.BaseURL, "/") + callbackPath
}

type oauthTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

// exchangeCode troca o código de autorização pelos tokens do Google
func (s *Service) exchangeCode(ctx context.Context, code string) (*oauthTokenResponse, error) {
	form := url.Values{}
	form.Set("code", code)
	form.Set("client_id", s.cfg.Google.ClientID)
	form.Set("client_secret", s.cfg.Google.ClientSecret)
	form.Set("redirect_uri", s.redirectURI())
	form.Set("grant_type", "authorization_code")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Google.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		logrus.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"body":   string(body),
		}).Error("authenticating: troca do código OAuth falhou")
		return nil, fmt.Errorf("troca do código OAuth falhou com status %d", resp.StatusCode)
	}

	tokens := &oauthTokenResponse{}
	if err := json.Unmarshal(body, tokens); err != nil {
		return nil, err
	}

	if tokens.AccessToken == "" {
		return nil, fmt.Errorf("resposta do Google sem access token")
	}

	return tokens, nil
}

func (s *Service) generateSessionJWT(session *domain.Session) (string, error) {
	claims := domain.SessionClaims{
		SessionID: session.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}

func (s *Service) validateSessionJWT(tokenString string) (*domain.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*domain.SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
