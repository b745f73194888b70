package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/seo-analyst-api/infrastructure/integrator/gsc"
	"github.com/vfg2006/seo-analyst-api/internal/api/handler/router"
	"github.com/vfg2006/seo-analyst-api/internal/config"
	"github.com/vfg2006/seo-analyst-api/internal/usecases/authenticating"
	"github.com/vfg2006/seo-analyst-api/internal/usecases/chatting"
	"github.com/vfg2006/seo-analyst-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(cfg *config.Config, service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/auth/login",
			Method:  http.MethodGet,
			Handler: LoginGoogle(service),
		},
		{
			Path:    "/v1/auth/callback",
			Method:  http.MethodGet,
			Handler: AuthCallback(cfg, service),
		},
		{
			Path:        "/v1/auth/user",
			Method:      http.MethodGet,
			Handler:     GetAuthenticatedUser(),
			Middlewares: []func(http.Handler) http.Handler{middleware.SessionRequired(service)},
		},
		{
			Path:    "/v1/auth/logout",
			Method:  http.MethodGet,
			Handler: Logout(service),
		},
	}
}

func Sites(service gsc.SearchConsoleIntegrator, authService authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sites",
			Method:      http.MethodGet,
			Handler:     ListSites(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.SessionRequired(authService)},
		},
	}
}

func CronJobs(services CronJobServices, authService authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.SessionRequired(authService)},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.SessionRequired(authService)},
		},
	}
}

func Chat(service chatting.ChatService, authService authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/chat",
			Method:      http.MethodPost,
			Handler:     ChatHandler(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.SessionRequired(authService)},
		},
	}
}
