package gscclient

import (
	"context"
	"net/http"
	"time"

	gscdomain "github.com/vfg2006/seo-analyst-api/infrastructure/integrator/gsc/domain"
	"github.com/vfg2006/seo-analyst-api/internal/config"
	"github.com/vfg2006/seo-analyst-api/internal/domain"
)

type Client interface {
	QuerySearchAnalytics(ctx context.Context, accessToken, siteURL string, query domain.SearchAnalyticsQuery) ([]domain.MetricRow, error)
	ListSites(ctx context.Context, accessToken string) ([]domain.Site, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (*gscdomain.TokenResponse, error)
}

type GSCClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &GSCClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
