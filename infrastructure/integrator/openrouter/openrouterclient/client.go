package openrouterclient

import (
	"context"
	"net/http"
	"time"

	openrouterdomain "github.com/vfg2006/seo-analyst-api/infrastructure/integrator/openrouter/domain"
	"github.com/vfg2006/seo-analyst-api/internal/config"
)

type Client interface {
	ChatCompletion(ctx context.Context, messages []openrouterdomain.Message, temperature float64) (string, error)
}

type OpenRouterClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &OpenRouterClient{
		httpClient: &http.Client{
			// Modelos grandes podem levar dezenas de segundos para responder
			Timeout: 60 * time.Second,
		},
		config: cfg,
	}
}
