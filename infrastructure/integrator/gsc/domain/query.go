package gscdomain

import (
	"github.com/vfg2006/seo-analyst-api/internal/domain"
)

// SearchAnalyticsResponse é a resposta da API searchanalytics.query
type SearchAnalyticsResponse struct {
	Rows []domain.MetricRow `json:"rows"`
}

// SitesResponse é a resposta da API sites.list
type SitesResponse struct {
	SiteEntry []domain.Site `json:"siteEntry"`
}

// TokenResponse é a resposta do endpoint de token do Google ao renovar um access token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
