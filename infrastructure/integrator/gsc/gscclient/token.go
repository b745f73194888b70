package gscclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	gscdomain "github.com/vfg2006/seo-analyst-api/infrastructure/integrator/gsc/domain"
)

// RefreshAccessToken troca o refresh token por um novo access token no endpoint
// de token do Google
func (c *GSCClient) RefreshAccessToken(ctx context.Context, refreshToken string) (*gscdomain.TokenResponse, error) {
	if refreshToken == "" {
		return nil, errors.New("refresh token não pode ser vazio")
	}

	params := url.Values{}
	params.Add("grant_type", "refresh_token")
	params.Add("client_id", c.config.Google.ClientID)
	params.Add("client_secret", c.config.Google.ClientSecret)
	params.Add("refresh_token", refreshToken)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.config.Google.TokenURL,
		strings.NewReader(params.Encode()),
	)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição de renovação de token")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao renovar o access token")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta de renovação de token")
	}

	if resp.StatusCode != http.StatusOK {
		logrus.Errorf("Erro renovando access token. Status: %d, Resposta: %s", resp.StatusCode, string(body))
		return nil, errors.Errorf("renovação de token falhou com status %d", resp.StatusCode)
	}

	var tokenResp gscdomain.TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta de renovação de token")
	}

	if tokenResp.AccessToken == "" {
		return nil, errors.New("token retornado pela API é vazio")
	}

	return &tokenResp, nil
}
