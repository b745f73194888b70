package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryIntent_ApplyDefaults(t *testing.T) {
	today := date("2024-07-15")

	tests := []struct {
		name     string
		intent   QueryIntent
		validate func(t *testing.T, intent QueryIntent)
	}{
		{
			name:   "intenção vazia recebe todos os padrões",
			intent: QueryIntent{},
			validate: func(t *testing.T, intent QueryIntent) {
				// Janela de 28 dias terminando na véspera de hoje
				assert.Equal(t, "2024-06-17", intent.StartDate)
				assert.Equal(t, "2024-07-14", intent.EndDate)
				assert.Equal(t, []string{DimensionDate}, intent.Dimensions)
				assert.Equal(t, DefaultRowLimit, intent.RowLimit)
			},
		},
		{
			name: "campos presentes são preservados",
			intent: QueryIntent{
				StartDate:  "2024-05-01",
				EndDate:    "2024-05-31",
				Dimensions: []string{DimensionQuery, DimensionPage},
				RowLimit:   25,
				Comparison: true,
			},
			validate: func(t *testing.T, intent QueryIntent) {
				assert.Equal(t, "2024-05-01", intent.StartDate)
				assert.Equal(t, "2024-05-31", intent.EndDate)
				assert.Equal(t, []string{DimensionQuery, DimensionPage}, intent.Dimensions)
				assert.Equal(t, 25, intent.RowLimit)
				assert.True(t, intent.Comparison)
			},
		},
		{
			name: "dimensões desconhecidas são descartadas",
			intent: QueryIntent{
				Dimensions: []string{"keyword", DimensionCountry, "searchAppearance"},
			},
			validate: func(t *testing.T, intent QueryIntent) {
				assert.Equal(t, []string{DimensionCountry}, intent.Dimensions)
			},
		},
		{
			name: "somente dimensões inválidas cai no padrão",
			intent: QueryIntent{
				Dimensions: []string{"keyword"},
			},
			validate: func(t *testing.T, intent QueryIntent) {
				assert.Equal(t, []string{DimensionDate}, intent.Dimensions)
			},
		},
		{
			name:   "limite de linhas não positivo cai no padrão",
			intent: QueryIntent{RowLimit: -5},
			validate: func(t *testing.T, intent QueryIntent) {
				assert.Equal(t, DefaultRowLimit, intent.RowLimit)
			},
		},
		{
			name:   "data inicial sem data final refaz a janela inteira",
			intent: QueryIntent{StartDate: "2024-05-01"},
			validate: func(t *testing.T, intent QueryIntent) {
				assert.Equal(t, "2024-06-17", intent.StartDate)
				assert.Equal(t, "2024-07-14", intent.EndDate)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.intent.ApplyDefaults(today)
			tt.validate(t, tt.intent)
		})
	}
}

func TestQueryIntent_Period(t *testing.T) {
	intent := QueryIntent{StartDate: "2024-03-01", EndDate: "2024-03-28"}

	start, end, err := intent.Period()
	require.NoError(t, err)
	assert.Equal(t, date("2024-03-01"), start)
	assert.Equal(t, date("2024-03-28"), end)

	intent = QueryIntent{StartDate: "2024-03-28", EndDate: "2024-03-01"}
	_, _, err = intent.Period()
	assert.Error(t, err)

	intent = QueryIntent{StartDate: "03/01/2024", EndDate: "2024-03-28"}
	_, _, err = intent.Period()
	assert.Error(t, err)
}

func TestQueryIntent_SearchQuery(t *testing.T) {
	intent := QueryIntent{
		StartDate:  "2024-05-01",
		EndDate:    "2024-05-31",
		Dimensions: []string{DimensionQuery},
		RowLimit:   50,
		Comparison: true,
	}

	query := intent.SearchQuery()

	assert.Equal(t, SearchAnalyticsQuery{
		StartDate:  "2024-05-01",
		EndDate:    "2024-05-31",
		Dimensions: []string{DimensionQuery},
		RowLimit:   50,
	}, query)
}
