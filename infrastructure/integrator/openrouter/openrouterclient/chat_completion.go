package openrouterclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	openrouterdomain "github.com/vfg2006/seo-analyst-api/infrastructure/integrator/openrouter/domain"
	"github.com/vfg2006/seo-analyst-api/pkg/utils"
)

// ChatCompletion envia as mensagens ao OpenRouter e retorna o texto da primeira
// escolha. Qualquer falha retorna erro; a decisão de degradar é do chamador.
func (c *OpenRouterClient) ChatCompletion(
	ctx context.Context,
	messages []openrouterdomain.Message,
	temperature float64,
) (string, error) {
	requestBody := openrouterdomain.ChatCompletionRequest{
		Model:       c.config.OpenRouter.Model,
		Messages:    messages,
		Temperature: temperature,
		TopP:        1,
	}

	payload, err := json.Marshal(requestBody)
	if err != nil {
		return "", errors.Wrap(err, "erro ao serializar a requisição de completion")
	}

	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		logrus.Trace("openrouter: requisição de completion: ", utils.PrettyJson(payload))
	}

	endpoint := fmt.Sprintf("%s/chat/completions", c.config.OpenRouter.BaseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "erro ao criar a requisição de completion")
	}

	req.Header.Set("Authorization", "Bearer "+c.config.OpenRouter.APIKey)
	req.Header.Set("Content-Type", "application/json")
	// Headers exigidos pelo OpenRouter para identificação do app
	req.Header.Set("HTTP-Referer", c.config.App.BaseURL)
	req.Header.Set("X-Title", c.config.OpenRouter.AppTitle)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "erro ao executar a requisição de completion")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "erro ao ler a resposta de completion")
	}

	if resp.StatusCode != http.StatusOK {
		var apiError openrouterdomain.ErrorResponse
		if err := json.Unmarshal(body, &apiError); err == nil && apiError.Error.Message != "" {
			logrus.WithFields(logrus.Fields{
				"status": resp.StatusCode,
				"code":   apiError.Error.Code,
			}).Error("OpenRouter retornou erro: ", apiError.Error.Message)
			return "", errors.Errorf("completion falhou com status %d: %s", resp.StatusCode, apiError.Error.Message)
		}
		return "", errors.Errorf("completion falhou com status %d", resp.StatusCode)
	}

	var response openrouterdomain.ChatCompletionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", errors.Wrap(err, "erro ao decodificar a resposta de completion")
	}

	if len(response.Choices) == 0 {
		return "", errors.New("resposta de completion sem escolhas")
	}

	return response.Choices[0].Message.Content, nil
}
