package gsc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gscdomain "github.com/vfg2006/seo-analyst-api/infrastructure/integrator/gsc/domain"
	clientmocks "github.com/vfg2006/seo-analyst-api/infrastructure/integrator/gsc/gscclient/mocks"
	repomocks "github.com/vfg2006/seo-analyst-api/infrastructure/repository/mocks"
	"github.com/vfg2006/seo-analyst-api/internal/config"
	"github.com/vfg2006/seo-analyst-api/internal/domain"
	"go.uber.org/mock/gomock"
)

const integratorSiteURL = "https://example.com/"

func newTestIntegrator(t *testing.T) (*GSCIntegrator, *clientmocks.MockClient, *repomocks.MockSessionRepository) {
	ctrl := gomock.NewController(t)
	client := clientmocks.NewMockClient(ctrl)
	sessionRepo := repomocks.NewMockSessionRepository(ctrl)
	integrator := New(&config.Config{}, client, sessionRepo)
	return integrator, client, sessionRepo
}

func validSession() *domain.Session {
	return &domain.Session{
		ID:           "sess_test",
		AccessToken:  "token-valido",
		RefreshToken: "refresh-token",
		TokenExpiry:  time.Now().Add(time.Hour),
	}
}

func expiredTokenSession() *domain.Session {
	session := validSession()
	session.AccessToken = "token-vencido"
	session.TokenExpiry = time.Now().Add(-time.Minute)
	return session
}

func testQuery() domain.SearchAnalyticsQuery {
	return domain.SearchAnalyticsQuery{
		StartDate:  "2024-06-01",
		EndDate:    "2024-06-28",
		Dimensions: []string{domain.DimensionQuery},
		RowLimit:   10,
	}
}

func TestGSCIntegrator_QuerySearchAnalytics_ValidTokenSkipsRefresh(t *testing.T) {
	integrator, client, sessionRepo := newTestIntegrator(t)
	session := validSession()
	rows := []domain.MetricRow{{Keys: []string{"sapatos"}, Clicks: 42}}

	// Token dentro da validade: nenhuma renovação, nenhuma escrita no banco
	client.EXPECT().RefreshAccessToken(gomock.Any(), gomock.Any()).Times(0)
	sessionRepo.EXPECT().UpdateAccessToken(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	client.EXPECT().
		QuerySearchAnalytics(gomock.Any(), "token-valido", integratorSiteURL, testQuery()).
		Return(rows, nil)

	result, err := integrator.QuerySearchAnalytics(context.Background(), session, integratorSiteURL, testQuery())
	require.NoError(t, err)
	assert.Equal(t, rows, result)
}

func TestGSCIntegrator_QuerySearchAnalytics_ExpiredTokenRefreshesAndPersists(t *testing.T) {
	integrator, client, sessionRepo := newTestIntegrator(t)
	session := expiredTokenSession()
	rows := []domain.MetricRow{{Keys: []string{"2024-06-01"}, Clicks: 10}}

	client.EXPECT().
		RefreshAccessToken(gomock.Any(), "refresh-token").
		Return(&gscdomain.TokenResponse{AccessToken: "token-novo", TokenType: "Bearer", ExpiresIn: 3600}, nil)

	sessionRepo.EXPECT().
		UpdateAccessToken("sess_test", "token-novo", gomock.Any()).
		DoAndReturn(func(_, _ string, tokenExpiry time.Time) error {
			assert.WithinDuration(t, time.Now().Add(time.Hour), tokenExpiry, time.Minute)
			return nil
		})

	// A consulta usa o token renovado, não o vencido
	client.EXPECT().
		QuerySearchAnalytics(gomock.Any(), "token-novo", integratorSiteURL, testQuery()).
		Return(rows, nil)

	result, err := integrator.QuerySearchAnalytics(context.Background(), session, integratorSiteURL, testQuery())
	require.NoError(t, err)
	assert.Equal(t, rows, result)
	assert.Equal(t, "token-novo", session.AccessToken)
}

func TestGSCIntegrator_QuerySearchAnalytics_UnauthorizedForcesSingleRetry(t *testing.T) {
	integrator, client, sessionRepo := newTestIntegrator(t)
	session := validSession()
	rows := []domain.MetricRow{{Keys: []string{"sapatos"}, Clicks: 42}}

	// Token dentro da validade mas rejeitado pelo Google: renova e repete uma vez
	firstCall := client.EXPECT().
		QuerySearchAnalytics(gomock.Any(), "token-valido", integratorSiteURL, testQuery()).
		Return(nil, gscdomain.ErrUnauthorized)

	refresh := client.EXPECT().
		RefreshAccessToken(gomock.Any(), "refresh-token").
		Return(&gscdomain.TokenResponse{AccessToken: "token-novo", ExpiresIn: 3600}, nil).
		After(firstCall)

	sessionRepo.EXPECT().
		UpdateAccessToken("sess_test", "token-novo", gomock.Any()).
		Return(nil)

	client.EXPECT().
		QuerySearchAnalytics(gomock.Any(), "token-novo", integratorSiteURL, testQuery()).
		Return(rows, nil).
		After(refresh)

	result, err := integrator.QuerySearchAnalytics(context.Background(), session, integratorSiteURL, testQuery())
	require.NoError(t, err)
	assert.Equal(t, rows, result)
}

func TestGSCIntegrator_QuerySearchAnalytics_SecondUnauthorizedSurfaces(t *testing.T) {
	integrator, client, sessionRepo := newTestIntegrator(t)
	session := validSession()

	// Rejeição persiste após a renovação: exatamente uma repetição, depois erro
	client.EXPECT().
		QuerySearchAnalytics(gomock.Any(), gomock.Any(), integratorSiteURL, testQuery()).
		Return(nil, gscdomain.ErrUnauthorized).
		Times(2)

	client.EXPECT().
		RefreshAccessToken(gomock.Any(), "refresh-token").
		Return(&gscdomain.TokenResponse{AccessToken: "token-novo", ExpiresIn: 3600}, nil)

	sessionRepo.EXPECT().
		UpdateAccessToken("sess_test", "token-novo", gomock.Any()).
		Return(nil)

	result, err := integrator.QuerySearchAnalytics(context.Background(), session, integratorSiteURL, testQuery())
	assert.Nil(t, result)
	assert.ErrorIs(t, err, gscdomain.ErrUnauthorized)
}

func TestGSCIntegrator_QuerySearchAnalytics_RefreshFailureAborts(t *testing.T) {
	integrator, client, _ := newTestIntegrator(t)
	session := expiredTokenSession()

	client.EXPECT().
		RefreshAccessToken(gomock.Any(), "refresh-token").
		Return(nil, errors.New("invalid_grant"))

	// Sem token válido a consulta nem é tentada
	client.EXPECT().QuerySearchAnalytics(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	result, err := integrator.QuerySearchAnalytics(context.Background(), session, integratorSiteURL, testQuery())
	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "renovar")
}

func TestGSCIntegrator_QuerySearchAnalytics_PersistFailureIsBestEffort(t *testing.T) {
	integrator, client, sessionRepo := newTestIntegrator(t)
	session := expiredTokenSession()
	rows := []domain.MetricRow{{Keys: []string{"sapatos"}, Clicks: 1}}

	client.EXPECT().
		RefreshAccessToken(gomock.Any(), "refresh-token").
		Return(&gscdomain.TokenResponse{AccessToken: "token-novo", ExpiresIn: 3600}, nil)

	// Falha ao persistir não interrompe a consulta em andamento
	sessionRepo.EXPECT().
		UpdateAccessToken("sess_test", "token-novo", gomock.Any()).
		Return(errors.New("conexão perdida"))

	client.EXPECT().
		QuerySearchAnalytics(gomock.Any(), "token-novo", integratorSiteURL, testQuery()).
		Return(rows, nil)

	result, err := integrator.QuerySearchAnalytics(context.Background(), session, integratorSiteURL, testQuery())
	require.NoError(t, err)
	assert.Equal(t, rows, result)
	assert.Equal(t, "token-novo", session.AccessToken)
}

func TestGSCIntegrator_ListSites_UnauthorizedForcesSingleRetry(t *testing.T) {
	integrator, client, sessionRepo := newTestIntegrator(t)
	session := validSession()
	sites := []domain.Site{{SiteURL: "https://example.com/", PermissionLevel: "siteOwner"}}

	firstCall := client.EXPECT().
		ListSites(gomock.Any(), "token-valido").
		Return(nil, gscdomain.ErrUnauthorized)

	client.EXPECT().
		RefreshAccessToken(gomock.Any(), "refresh-token").
		Return(&gscdomain.TokenResponse{AccessToken: "token-novo", ExpiresIn: 3600}, nil).
		After(firstCall)

	sessionRepo.EXPECT().
		UpdateAccessToken("sess_test", "token-novo", gomock.Any()).
		Return(nil)

	client.EXPECT().
		ListSites(gomock.Any(), "token-novo").
		Return(sites, nil)

	result, err := integrator.ListSites(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, sites, result)
}
