package chatting

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seo-analyst-api/infrastructure/integrator/gsc"
	"github.com/vfg2006/seo-analyst-api/internal/config"
	"github.com/vfg2006/seo-analyst-api/internal/domain"
	"github.com/vfg2006/seo-analyst-api/internal/usecases/analyzing"
)

const (
	clarificationMessage = "I couldn't understand your question well enough to query Search Console. Could you rephrase it, mentioning the metric or period you care about?"
	fallbackMessage      = "I retrieved your Search Console data but couldn't generate an analysis right now. The raw data is included below; please try again in a moment."
)

// Service implementa ChatService
type Service struct {
	cfg           *config.Config
	analyst       analyzing.Analyst
	searchConsole gsc.SearchConsoleIntegrator
}

// NewService cria uma nova instância do orquestrador de chat
func NewService(
	cfg *config.Config,
	analyst analyzing.Analyst,
	searchConsole gsc.SearchConsoleIntegrator,
) ChatService {
	return &Service{
		cfg:           cfg,
		analyst:       analyst,
		searchConsole: searchConsole,
	}
}

// Ask executa o pipeline completo. Falha no período primário interrompe o
// fluxo; falhas na comparação ou na síntese degradam a resposta em vez de
// derrubá-la.
func (s *Service) Ask(
	ctx context.Context,
	session *domain.Session,
	question, siteURL string,
) (*domain.ChatResponse, error) {
	today := time.Now().UTC()

	intent, err := s.analyst.ParseIntent(ctx, question, today)
	if err != nil {
		if errors.Is(err, analyzing.ErrIntentNotParsed) {
			// Pergunta ininteligível não é erro de servidor: pedimos reformulação
			return &domain.ChatResponse{Insight: clarificationMessage}, nil
		}
		return nil, err
	}

	// O parser já aplica os padrões; reaplicar aqui protege contra
	// implementações de Analyst que devolvam a intenção crua
	intent.ApplyDefaults(today)

	primaryRows, comparisonRows, err := s.fetchMetrics(ctx, session, siteURL, intent)
	if err != nil {
		return nil, err
	}

	insight, err := s.analyst.GenerateInsight(ctx, question, primaryRows, comparisonRows)
	if err != nil {
		logrus.WithError(err).Warn("chatting: síntese indisponível, devolvendo resposta neutra")
		return &domain.ChatResponse{
			Insight: fallbackMessage,
			Data:    primaryRows,
		}, nil
	}

	return &domain.ChatResponse{
		Insight: insight,
		Data:    primaryRows,
	}, nil
}

// fetchMetrics consulta o período primário e, quando a intenção pede
// comparação, o período anterior equivalente. As duas consultas correm em
// paralelo; apenas o erro do período primário é fatal.
func (s *Service) fetchMetrics(
	ctx context.Context,
	session *domain.Session,
	siteURL string,
	intent *domain.QueryIntent,
) (primaryRows, comparisonRows []domain.MetricRow, err error) {
	comparisonQuery, hasComparison := s.comparisonQuery(intent)

	var (
		wg            sync.WaitGroup
		comparisonErr error
	)

	if hasComparison {
		wg.Add(1)
		go func() {
			defer wg.Done()
			comparisonRows, comparisonErr = s.searchConsole.QuerySearchAnalytics(ctx, session, siteURL, comparisonQuery)
		}()
	}

	primaryRows, err = s.searchConsole.QuerySearchAnalytics(ctx, session, siteURL, intent.SearchQuery())
	wg.Wait()

	if err != nil {
		return nil, nil, err
	}

	if comparisonErr != nil {
		// Degrada para análise de período único
		logrus.WithError(comparisonErr).Warn("chatting: consulta do período de comparação falhou, seguindo só com o primário")
		comparisonRows = nil
	}

	return primaryRows, comparisonRows, nil
}

// comparisonQuery deriva a consulta do período anterior equivalente ao
// primário. Devolve false quando a intenção não pede comparação ou quando as
// datas do primário não permitem derivar o período.
func (s *Service) comparisonQuery(intent *domain.QueryIntent) (domain.SearchAnalyticsQuery, bool) {
	if !intent.Comparison {
		return domain.SearchAnalyticsQuery{}, false
	}

	primaryStart, primaryEnd, err := intent.Period()
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"start_date": intent.StartDate,
			"end_date":   intent.EndDate,
			"error":      err.Error(),
		}).Warn("chatting: datas do período primário inválidas para comparação")
		return domain.SearchAnalyticsQuery{}, false
	}

	period, err := domain.ResolveComparisonPeriod(primaryStart, primaryEnd)
	if err != nil {
		logrus.WithError(err).Warn("chatting: não foi possível derivar o período de comparação")
		return domain.SearchAnalyticsQuery{}, false
	}

	query := intent.SearchQuery()
	query.StartDate = period.StartDate.Format(time.DateOnly)
	query.EndDate = period.EndDate.Format(time.DateOnly)

	return query, true
}
