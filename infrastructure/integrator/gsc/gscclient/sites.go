package gscclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	gscdomain "github.com/vfg2006/seo-analyst-api/infrastructure/integrator/gsc/domain"
	"github.com/vfg2006/seo-analyst-api/internal/domain"
)

// ListSites busca as propriedades verificadas do usuário no Search Console
func (c *GSCClient) ListSites(ctx context.Context, accessToken string) ([]domain.Site, error) {
	endpoint := fmt.Sprintf("%s/sites", c.config.Google.GSCBaseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição de listagem de sites")
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição de listagem de sites")
	}
	defer resp.Body.Close()

	body, err := handleResponse(resp)
	if err != nil {
		return nil, err
	}

	var response gscdomain.SitesResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta de listagem de sites")
	}

	if response.SiteEntry == nil {
		return []domain.Site{}, nil
	}

	return response.SiteEntry, nil
}
