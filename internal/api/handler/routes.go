package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/datasets"
	"github.com/vfg2006/sales-dashboard-api/pkg/middleware"
)

func Healthcheck(pinger Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(pinger),
		},
	}
}

func Authentication(service authenticating.Authenticator, cfg config.Auth) []router.Route {
	return []router.Route{
		{
			Path:    "/auth/signup",
			Method:  http.MethodPost,
			Handler: Signup(service),
		},
		{
			Path:    "/auth/login",
			Method:  http.MethodPost,
			Handler: Login(service, cfg),
		},
		{
			Path:    "/auth/logout",
			Method:  http.MethodPost,
			Handler: Logout(cfg),
		},
		{
			Path:    "/auth/status",
			Method:  http.MethodGet,
			Handler: Status(),
		},
	}
}

func Datasets(service datasets.Service, cfg config.Upload) []router.Route {
	return []router.Route{
		{
			Path:        "/data/upload",
			Method:      http.MethodPost,
			Handler:     UploadDataset(service, cfg.MaxBytes),
			Middlewares: []func(http.Handler) http.Handler{middleware.LimitBody(cfg.MaxBytes)},
		},
		{
			Path:    "/data",
			Method:  http.MethodGet,
			Handler: GetMonthlySeries(service),
		},
	}
}
