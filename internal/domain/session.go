package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session representa uma sessão autenticada via Google OAuth. As credenciais do
// Search Console ficam persistidas junto à sessão; o cookie do cliente carrega
// apenas o ID assinado.
type Session struct {
	ID           string
	AccessToken  string
	RefreshToken string
	TokenExpiry  time.Time
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

// Expired informa se a sessão passou da validade
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// AccessTokenExpired informa se o access token do Google precisa de renovação.
// A margem evita usar um token a segundos de expirar.
func (s *Session) AccessTokenExpired(now time.Time) bool {
	return !s.TokenExpiry.IsZero() && now.After(s.TokenExpiry.Add(-30*time.Second))
}

// SessionClaims são as claims do JWT emitido no cookie de sessão
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}
