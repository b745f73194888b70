package gscclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	gscdomain "github.com/vfg2006/seo-analyst-api/infrastructure/integrator/gsc/domain"
	"github.com/vfg2006/seo-analyst-api/internal/domain"
)

// QuerySearchAnalytics executa uma consulta de search analytics para a
// propriedade informada. A API retorna todas as métricas (clicks, impressions,
// ctr, position) por linha; não há filtro de métricas no corpo da consulta.
func (c *GSCClient) QuerySearchAnalytics(
	ctx context.Context,
	accessToken, siteURL string,
	query domain.SearchAnalyticsQuery,
) ([]domain.MetricRow, error) {
	payload, err := json.Marshal(query)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar a consulta de search analytics")
	}

	endpoint := fmt.Sprintf(
		"%s/sites/%s/searchAnalytics/query",
		c.config.Google.GSCBaseURL,
		url.PathEscape(siteURL),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição de search analytics")
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição de search analytics")
	}
	defer resp.Body.Close()

	body, err := handleResponse(resp)
	if err != nil {
		return nil, err
	}

	var response gscdomain.SearchAnalyticsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta de search analytics")
	}

	// Períodos sem tráfego vêm sem o campo rows; normalizar para lista vazia
	if response.Rows == nil {
		return []domain.MetricRow{}, nil
	}

	return response.Rows, nil
}

// handleResponse lê o corpo e converte status de erro da API do Google em erros
// tipados. 401/403 viram ErrUnauthorized para o integrador renovar o token.
func handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta da API do Google")
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, gscdomain.ErrUnauthorized
	}

	var apiError gscdomain.ErrorResponse
	if err := json.Unmarshal(body, &apiError); err == nil && apiError.Error.Message != "" {
		logrus.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"code":   apiError.Error.Code,
		}).Error("API do Google retornou erro: ", apiError.Error.Message)
		return nil, errors.Errorf("requisição falhou com status %d: %s", resp.StatusCode, apiError.Error.Message)
	}

	return nil, errors.Errorf("requisição falhou com status %d", resp.StatusCode)
}
