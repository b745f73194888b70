package analyzing

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	openrouterdomain "github.com/vfg2006/seo-analyst-api/infrastructure/integrator/openrouter/domain"
	"github.com/vfg2006/seo-analyst-api/infrastructure/integrator/openrouter/mocks"
	"github.com/vfg2006/seo-analyst-api/internal/config"
	"github.com/vfg2006/seo-analyst-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (Analyst, *mocks.MockClient) {
	ctrl := gomock.NewController(t)
	llmClient := mocks.NewMockClient(ctrl)
	service := NewService(&config.Config{}, llmClient)
	return service, llmClient
}

func TestService_ParseIntent(t *testing.T) {
	today := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)

	const intentJSON = `{
		"startDate": "2024-06-01",
		"endDate": "2024-06-30",
		"dimensions": ["query"],
		"rowLimit": 20,
		"comparison": true
	}`

	tests := []struct {
		name     string
		response string
	}{
		{
			name:     "JSON puro",
			response: intentJSON,
		},
		{
			name:     "JSON cercado por code fences",
			response: "```json\n" + intentJSON + "\n```",
		},
		{
			name:     "code fences sem identificador de linguagem",
			response: "```\n" + intentJSON + "\n```",
		},
		{
			name:     "espaços em volta dos fences",
			response: "  \n```json\n" + intentJSON + "\n```  \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, llmClient := newTestService(t)

			llmClient.EXPECT().
				ChatCompletion(gomock.Any(), gomock.Any(), intentTemperature).
				Return(tt.response, nil)

			intent, err := service.ParseIntent(context.Background(), "quais queries cresceram?", today)
			require.NoError(t, err)

			// Com ou sem fences o resultado interpretado é o mesmo
			assert.Equal(t, "2024-06-01", intent.StartDate)
			assert.Equal(t, "2024-06-30", intent.EndDate)
			assert.Equal(t, []string{domain.DimensionQuery}, intent.Dimensions)
			assert.Equal(t, 20, intent.RowLimit)
			assert.True(t, intent.Comparison)
		})
	}
}

func TestService_ParseIntent_PromptContract(t *testing.T) {
	service, llmClient := newTestService(t)
	today := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)

	var captured []openrouterdomain.Message
	llmClient.EXPECT().
		ChatCompletion(gomock.Any(), gomock.Any(), intentTemperature).
		DoAndReturn(func(_ context.Context, messages []openrouterdomain.Message, _ float64) (string, error) {
			captured = messages
			return `{"comparison": false}`, nil
		})

	_, err := service.ParseIntent(context.Background(), "top pages last month", today)
	require.NoError(t, err)

	require.Len(t, captured, 2)
	systemPrompt := captured[0].Content
	assert.Equal(t, openrouterdomain.RoleSystem, captured[0].Role)

	// A data de hoje ancora as expressões de tempo relativas
	assert.Contains(t, systemPrompt, "2024-07-15")

	// Enum de dimensões e vocabulário de métricas fazem parte do contrato
	for _, dimension := range []string{"query", "page", "country", "device", "date"} {
		assert.Contains(t, systemPrompt, dimension)
	}
	for _, metric := range []string{"impressions", "clicks", "ctr", "position"} {
		assert.Contains(t, systemPrompt, metric)
	}

	// Gatilhos de comparação
	for _, cue := range []string{"change", "growth", `"vs"`, "why"} {
		assert.Contains(t, systemPrompt, cue)
	}

	assert.Equal(t, openrouterdomain.RoleUser, captured[1].Role)
	assert.Equal(t, "top pages last month", captured[1].Content)
}

func TestService_ParseIntent_MissingFieldsGetDefaults(t *testing.T) {
	service, llmClient := newTestService(t)
	today := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)

	// Modelo respondeu JSON válido porém incompleto; campos ausentes recebem
	// padrões em vez de erro
	llmClient.EXPECT().
		ChatCompletion(gomock.Any(), gomock.Any(), intentTemperature).
		Return(`{"comparison": true}`, nil)

	intent, err := service.ParseIntent(context.Background(), "como estamos?", today)
	require.NoError(t, err)

	assert.Equal(t, "2024-06-17", intent.StartDate)
	assert.Equal(t, "2024-07-14", intent.EndDate)
	assert.Equal(t, []string{domain.DimensionDate}, intent.Dimensions)
	assert.Equal(t, domain.DefaultRowLimit, intent.RowLimit)
	assert.True(t, intent.Comparison)
}

func TestService_ParseIntent_Failures(t *testing.T) {
	today := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		response string
		err      error
	}{
		{
			name: "serviço de completion indisponível",
			err:  errors.New("completion falhou com status 502"),
		},
		{
			name:     "resposta não é JSON",
			response: "Sorry, I cannot help with that.",
		},
		{
			name:     "resposta vazia",
			response: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, llmClient := newTestService(t)

			llmClient.EXPECT().
				ChatCompletion(gomock.Any(), gomock.Any(), intentTemperature).
				Return(tt.response, tt.err)

			intent, err := service.ParseIntent(context.Background(), "pergunta qualquer", today)
			assert.Nil(t, intent)
			assert.ErrorIs(t, err, ErrIntentNotParsed)
		})
	}
}

func TestService_GenerateInsight_GroundingInstructions(t *testing.T) {
	service, llmClient := newTestService(t)

	var captured []openrouterdomain.Message
	llmClient.EXPECT().
		ChatCompletion(gomock.Any(), gomock.Any(), insightTemperature).
		DoAndReturn(func(_ context.Context, messages []openrouterdomain.Message, _ float64) (string, error) {
			captured = messages
			return "**Insufficient data** to answer this question.", nil
		})

	// Mesmo sem nenhuma linha, a instrução de dados insuficientes precisa estar
	// presente para o modelo declarar a limitação em vez de inventar conclusões
	insight, err := service.GenerateInsight(context.Background(), "why did clicks drop?", []domain.MetricRow{}, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, insight)

	require.Len(t, captured, 2)
	systemPrompt := captured[0].Content

	assert.Contains(t, systemPrompt, "insufficient")
	assert.Contains(t, systemPrompt, "ONLY the data provided")
	assert.Contains(t, systemPrompt, "markdown")
	assert.Contains(t, strings.ToLower(systemPrompt), "deltas")

	// Sem linhas de comparação o contexto não menciona o período de comparação
	assert.Contains(t, captured[1].Content, "Primary period data")
	assert.NotContains(t, captured[1].Content, "Comparison period data")
}

func TestService_GenerateInsight_WithComparisonRows(t *testing.T) {
	service, llmClient := newTestService(t)

	primaryRows := []domain.MetricRow{
		{Keys: []string{"2024-06-01"}, Clicks: 120, Impressions: 4000, CTR: 0.03, Position: 7.2},
	}
	comparisonRows := []domain.MetricRow{
		{Keys: []string{"2024-05-01"}, Clicks: 80, Impressions: 3500, CTR: 0.022, Position: 9.1},
	}

	var captured []openrouterdomain.Message
	llmClient.EXPECT().
		ChatCompletion(gomock.Any(), gomock.Any(), insightTemperature).
		DoAndReturn(func(_ context.Context, messages []openrouterdomain.Message, _ float64) (string, error) {
			captured = messages
			return "Clicks grew from **80** to **120**.", nil
		})

	insight, err := service.GenerateInsight(context.Background(), "did clicks grow?", primaryRows, comparisonRows)
	require.NoError(t, err)
	assert.Contains(t, insight, "120")

	userContent := captured[1].Content
	assert.Contains(t, userContent, "Question: did clicks grow?")
	assert.Contains(t, userContent, "Primary period data")
	assert.Contains(t, userContent, "Comparison period data")
	assert.Contains(t, userContent, "2024-06-01")
	assert.Contains(t, userContent, "2024-05-01")
}

func TestService_GenerateInsight_CompletionFailure(t *testing.T) {
	service, llmClient := newTestService(t)

	llmClient.EXPECT().
		ChatCompletion(gomock.Any(), gomock.Any(), insightTemperature).
		Return("", errors.New("timeout"))

	insight, err := service.GenerateInsight(context.Background(), "pergunta", []domain.MetricRow{}, nil)
	assert.Error(t, err)
	assert.Empty(t, insight)
}

func TestStripCodeFences_Idempotent(t *testing.T) {
	fenced := "```json\n{\"rowLimit\": 10}\n```"

	once := stripCodeFences(fenced)
	twice := stripCodeFences(once)

	assert.Equal(t, `{"rowLimit": 10}`, once)
	assert.Equal(t, once, twice)
}
