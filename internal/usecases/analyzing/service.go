package analyzing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	openrouterdomain "github.com/vfg2006/seo-analyst-api/infrastructure/integrator/openrouter/domain"
	"github.com/vfg2006/seo-analyst-api/infrastructure/integrator/openrouter/openrouterclient"
	"github.com/vfg2006/seo-analyst-api/internal/config"
	"github.com/vfg2006/seo-analyst-api/internal/domain"
)

// ErrIntentNotParsed indica que o modelo não produziu uma consulta utilizável.
// Condição recuperável: o orquestrador responde pedindo que o usuário reformule.
var ErrIntentNotParsed = errors.New("não foi possível interpretar a pergunta")

// Service implementa Analyst sobre o cliente de completions. Não guarda estado
// por requisição; uma única instância atende chamadas concorrentes.
type Service struct {
	cfg       *config.Config
	llmClient openrouterclient.Client
}

// NewService cria uma nova instância do analista
func NewService(cfg *config.Config, llmClient openrouterclient.Client) Analyst {
	return &Service{
		cfg:       cfg,
		llmClient: llmClient,
	}
}

func (s *Service) ParseIntent(ctx context.Context, question string, today time.Time) (*domain.QueryIntent, error) {
	messages := []openrouterdomain.Message{
		{
			Role:    openrouterdomain.RoleSystem,
			Content: fmt.Sprintf(intentSystemPrompt, today.Format(time.DateOnly)),
		},
		{
			Role:    openrouterdomain.RoleUser,
			Content: question,
		},
	}

	response, err := s.llmClient.ChatCompletion(ctx, messages, intentTemperature)
	if err != nil {
		logrus.WithError(err).Error("analyzing: falha na chamada de completion do parser de intenção")
		return nil, ErrIntentNotParsed
	}

	intent := &domain.QueryIntent{}
	if err := json.Unmarshal([]byte(stripCodeFences(response)), intent); err != nil {
		logrus.WithFields(logrus.Fields{
			"response": response,
			"error":    err.Error(),
		}).Error("analyzing: resposta do modelo não é JSON válido")
		return nil, ErrIntentNotParsed
	}

	// Campos ausentes recebem padrões em vez de rejeitar a resposta
	intent.ApplyDefaults(today)

	logrus.WithFields(logrus.Fields{
		"start_date": intent.StartDate,
		"end_date":   intent.EndDate,
		"dimensions": intent.Dimensions,
		"row_limit":  intent.RowLimit,
		"comparison": intent.Comparison,
	}).Debug("analyzing: intenção interpretada")

	return intent, nil
}

func (s *Service) GenerateInsight(
	ctx context.Context,
	question string,
	primaryRows, comparisonRows []domain.MetricRow,
) (string, error) {
	primaryJSON, err := json.Marshal(primaryRows)
	if err != nil {
		return "", err
	}

	var dataContext strings.Builder
	dataContext.WriteString("Primary period data: ")
	dataContext.Write(primaryJSON)

	if comparisonRows != nil {
		comparisonJSON, err := json.Marshal(comparisonRows)
		if err != nil {
			return "", err
		}
		dataContext.WriteString("\nComparison period data: ")
		dataContext.Write(comparisonJSON)
	}

	messages := []openrouterdomain.Message{
		{
			Role:    openrouterdomain.RoleSystem,
			Content: insightSystemPrompt,
		},
		{
			Role:    openrouterdomain.RoleUser,
			Content: fmt.Sprintf("Question: %s\n\nData context:\n%s", question, dataContext.String()),
		},
	}

	insight, err := s.llmClient.ChatCompletion(ctx, messages, insightTemperature)
	if err != nil {
		logrus.WithError(err).Error("analyzing: falha na chamada de completion da síntese")
		return "", err
	}

	return insight, nil
}

// stripCodeFences remove marcadores de bloco de código que alguns modelos
// adicionam mesmo instruídos a não fazê-lo. Idempotente.
func stripCodeFences(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```", "")
	return strings.TrimSpace(response)
}
