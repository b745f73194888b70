package analyzing

import (
	"context"
	"time"

	"github.com/vfg2006/seo-analyst-api/internal/domain"
)

// Analyst define a interface do analista baseado em modelo de linguagem
type Analyst interface {
	// ParseIntent converte uma pergunta em linguagem natural em uma consulta
	// estruturada, ancorando expressões de tempo relativas em today
	ParseIntent(ctx context.Context, question string, today time.Time) (*domain.QueryIntent, error)

	// GenerateInsight produz uma resposta em markdown fundamentada exclusivamente
	// nas linhas fornecidas. comparisonRows pode ser nil quando não há comparação.
	GenerateInsight(ctx context.Context, question string, primaryRows, comparisonRows []domain.MetricRow) (string, error)
}
