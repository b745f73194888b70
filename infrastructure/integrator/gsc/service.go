package gsc

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	gscdomain "github.com/vfg2006/seo-analyst-api/infrastructure/integrator/gsc/domain"
	"github.com/vfg2006/seo-analyst-api/infrastructure/integrator/gsc/gscclient"
	"github.com/vfg2006/seo-analyst-api/infrastructure/repository"
	"github.com/vfg2006/seo-analyst-api/internal/config"
	"github.com/vfg2006/seo-analyst-api/internal/domain"
)

// SearchConsoleIntegrator é a fachada do Search Console consumida pelos casos
// de uso. Cuida da renovação do access token da sessão de forma transparente.
type SearchConsoleIntegrator interface {
	QuerySearchAnalytics(ctx context.Context, session *domain.Session, siteURL string, query domain.SearchAnalyticsQuery) ([]domain.MetricRow, error)
	ListSites(ctx context.Context, session *domain.Session) ([]domain.Site, error)
}

type GSCIntegrator struct {
	cfg         *config.Config
	Client      gscclient.Client
	sessionRepo repository.SessionRepository
}

func New(cfg *config.Config, client gscclient.Client, sessionRepo repository.SessionRepository) *GSCIntegrator {
	return &GSCIntegrator{
		cfg:         cfg,
		Client:      client,
		sessionRepo: sessionRepo,
	}
}

func (s *GSCIntegrator) QuerySearchAnalytics(
	ctx context.Context,
	session *domain.Session,
	siteURL string,
	query domain.SearchAnalyticsQuery,
) ([]domain.MetricRow, error) {
	if err := s.ensureValidToken(ctx, session, false); err != nil {
		return nil, err
	}

	rows, err := s.Client.QuerySearchAnalytics(ctx, session.AccessToken, siteURL, query)
	if errors.Is(err, gscdomain.ErrUnauthorized) {
		// Token rejeitado mesmo dentro da validade; renovar e repetir uma única vez
		if err := s.ensureValidToken(ctx, session, true); err != nil {
			return nil, err
		}
		rows, err = s.Client.QuerySearchAnalytics(ctx, session.AccessToken, siteURL, query)
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"site_url":   siteURL,
			"start_date": query.StartDate,
			"end_date":   query.EndDate,
			"error":      err.Error(),
		}).Error("gsc: falha na consulta de search analytics")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"site_url": siteURL,
		"rows":     len(rows),
	}).Debug("gsc: consulta de search analytics concluída")

	return rows, nil
}

func (s *GSCIntegrator) ListSites(ctx context.Context, session *domain.Session) ([]domain.Site, error) {
	if err := s.ensureValidToken(ctx, session, false); err != nil {
		return nil, err
	}

	sites, err := s.Client.ListSites(ctx, session.AccessToken)
	if errors.Is(err, gscdomain.ErrUnauthorized) {
		if err := s.ensureValidToken(ctx, session, true); err != nil {
			return nil, err
		}
		sites, err = s.Client.ListSites(ctx, session.AccessToken)
	}
	if err != nil {
		logrus.WithError(err).Error("gsc: falha ao listar propriedades do Search Console")
		return nil, err
	}

	return sites, nil
}

// ensureValidToken renova o access token da sessão quando expirado (ou quando
// force é verdadeiro) e persiste o novo token junto à sessão
func (s *GSCIntegrator) ensureValidToken(ctx context.Context, session *domain.Session, force bool) error {
	now := time.Now()
	if !force && !session.AccessTokenExpired(now) {
		return nil
	}

	tokenResp, err := s.Client.RefreshAccessToken(ctx, session.RefreshToken)
	if err != nil {
		return errors.Wrap(err, "erro ao renovar o access token da sessão")
	}

	session.AccessToken = tokenResp.AccessToken
	session.TokenExpiry = now.Add(time.Duration(tokenResp.ExpiresIn) * time.Second)

	// A persistência do token renovado é melhor esforço; a consulta em andamento
	// segue com o token em memória
	if err := s.sessionRepo.UpdateAccessToken(session.ID, session.AccessToken, session.TokenExpiry); err != nil {
		logrus.WithFields(logrus.Fields{
			"session_id": session.ID,
			"error":      err.Error(),
		}).Warn("gsc: falha ao persistir access token renovado")
	}

	return nil
}
