package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

const healthcheckTimeout = 2 * time.Second

// Pinger é satisfeito pela conexão com o banco
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthcheckResponse struct {
	Status   string    `json:"status"`
	Database string    `json:"database"`
	Time     time.Time `json:"time"`
}

func HealthcheckHandler(pinger Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
		defer cancel()

		resp := HealthcheckResponse{Status: "ok", Database: "ok", Time: time.Now().UTC()}
		status := http.StatusOK

		if err := pinger.Ping(ctx); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Banco indisponível no healthcheck")
			resp.Status = "degraded"
			resp.Database = "unavailable"
			status = http.StatusServiceUnavailable
		}

		writeJSON(w, r, status, resp)
	})
}
