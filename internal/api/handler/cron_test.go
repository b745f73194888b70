package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/seo-analyst-api/infrastructure/repository/mocks"
	"github.com/vfg2006/seo-analyst-api/internal/config"
	"github.com/vfg2006/seo-analyst-api/internal/scheduler"
	"github.com/vfg2006/seo-analyst-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newCronServices(t *testing.T) (CronJobServices, *repomocks.MockSessionRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	sessionRepo := repomocks.NewMockSessionRepository(ctrl)

	cfg := &config.Config{}
	cfg.SessionCleanup.CronSchedule = "0 3 * * *"
	cfg.SessionCleanup.Enabled = true

	services := CronJobServices{
		SessionCleanupService: scheduler.NewSessionCleanupService(sessionRepo, cfg),
	}
	return services, sessionRepo
}

func cronRequest(cronType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/v1/cron/"+cronType+"/run", nil)
	params := httprouter.Params{{Key: "type", Value: cronType}}
	return req.WithContext(context.WithValue(req.Context(), httprouter.ParamsKey, params))
}

func TestRunCronJob_SessionCleanup(t *testing.T) {
	services, sessionRepo := newCronServices(t)

	// A limpeza roda em segundo plano; o canal sincroniza o teste com a execução
	executed := make(chan struct{})
	sessionRepo.EXPECT().
		DeleteExpired(gomock.Any()).
		DoAndReturn(func(time.Time) (int64, error) {
			close(executed)
			return 3, nil
		})

	recorder := httptest.NewRecorder()
	RunCronJob(services).ServeHTTP(recorder, cronRequest(CronJobTypeSessionCleanup))

	require.Equal(t, http.StatusOK, recorder.Code)

	var response map[string]any
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "Cron job iniciada com sucesso", response["message"])
	assert.Equal(t, CronJobTypeSessionCleanup, response["type"])

	select {
	case <-executed:
	case <-time.After(2 * time.Second):
		t.Fatal("limpeza manual não foi executada")
	}
}

func TestRunCronJob_TipoInvalido(t *testing.T) {
	services, sessionRepo := newCronServices(t)

	sessionRepo.EXPECT().DeleteExpired(gomock.Any()).Times(0)

	recorder := httptest.NewRecorder()
	RunCronJob(services).ServeHTTP(recorder, cronRequest("reindex"))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, recorder).Code)
}

func TestRunCronJob_ServicoIndisponivel(t *testing.T) {
	recorder := httptest.NewRecorder()
	RunCronJob(CronJobServices{}).ServeHTTP(recorder, cronRequest(CronJobTypeSessionCleanup))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, apiErrors.ErrInternalServer, decodeAPIError(t, recorder).Code)
}

func TestGetCronStatus(t *testing.T) {
	services, _ := newCronServices(t)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)

	GetCronStatus(services).ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var status map[string]map[string]any
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&status))

	cleanup, ok := status["session-cleanup"]
	require.True(t, ok)
	assert.Equal(t, true, cleanup["cleanup_enabled"])
	assert.Equal(t, "0 3 * * *", cleanup["cleanup_cron"])
}
