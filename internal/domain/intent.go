package domain

import (
	"fmt"
	"time"
)

// Dimensões aceitas pela API de search analytics do Search Console
const (
	DimensionQuery   = "query"
	DimensionPage    = "page"
	DimensionCountry = "country"
	DimensionDevice  = "device"
	DimensionDate    = "date"
)

// ValidDimensions mapeia as dimensões válidas para validação rápida
var ValidDimensions = map[string]struct{}{
	DimensionQuery:   {},
	DimensionPage:    {},
	DimensionCountry: {},
	DimensionDevice:  {},
	DimensionDate:    {},
}

const (
	// DefaultRowLimit é o limite de linhas aplicado quando o modelo não informa um
	DefaultRowLimit = 10

	// DefaultLookbackDays é a janela padrão de consulta (28 dias terminando ontem)
	DefaultLookbackDays = 28
)

// QueryIntent é a interpretação estruturada de uma pergunta em linguagem natural,
// produzida pelo parser de intenção. As datas usam o formato YYYY-MM-DD.
type QueryIntent struct {
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate"`
	Dimensions []string `json:"dimensions"`
	RowLimit   int      `json:"rowLimit"`
	Comparison bool     `json:"comparison"`
}

// ApplyDefaults preenche campos ausentes com valores determinísticos em vez de
// rejeitar a resposta do modelo. Escolha deliberada: disponibilidade acima de
// validação estrita, mesmo que o resultado possa divergir da intenção do usuário.
func (q *QueryIntent) ApplyDefaults(today time.Time) {
	if q.StartDate == "" || q.EndDate == "" {
		end := today.AddDate(0, 0, -1)
		start := end.AddDate(0, 0, -(DefaultLookbackDays - 1))
		q.StartDate = start.Format(time.DateOnly)
		q.EndDate = end.Format(time.DateOnly)
	}

	dimensions := make([]string, 0, len(q.Dimensions))
	for _, dimension := range q.Dimensions {
		if _, ok := ValidDimensions[dimension]; ok {
			dimensions = append(dimensions, dimension)
		}
	}

	if len(dimensions) == 0 {
		dimensions = []string{DimensionDate}
	}
	q.Dimensions = dimensions

	if q.RowLimit <= 0 {
		q.RowLimit = DefaultRowLimit
	}
}

// Period converte as datas da intenção para time.Time
func (q *QueryIntent) Period() (time.Time, time.Time, error) {
	start, err := time.Parse(time.DateOnly, q.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("data inicial inválida %q: %w", q.StartDate, err)
	}

	end, err := time.Parse(time.DateOnly, q.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("data final inválida %q: %w", q.EndDate, err)
	}

	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("data inicial %s posterior à data final %s", q.StartDate, q.EndDate)
	}

	return start, end, nil
}

// SearchQuery deriva a consulta enviada ao Search Console. As métricas não são
// filtráveis na API, então a consulta carrega apenas período, dimensões e limite.
func (q *QueryIntent) SearchQuery() SearchAnalyticsQuery {
	return SearchAnalyticsQuery{
		StartDate:  q.StartDate,
		EndDate:    q.EndDate,
		Dimensions: q.Dimensions,
		RowLimit:   q.RowLimit,
	}
}

// SearchAnalyticsQuery é o formato de consulta aceito pela API do Search Console
type SearchAnalyticsQuery struct {
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate"`
	Dimensions []string `json:"dimensions"`
	RowLimit   int      `json:"rowLimit"`
}
