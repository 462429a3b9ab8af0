// Package api registers the HTTP routes of the service.
package api

import (
	"context"
	"net/http"

	"github.com/cultivarhq/cultivar/app/cultivar/config"
	"github.com/cultivarhq/cultivar/bridge/repositories/taskrepobridge"
	"github.com/cultivarhq/cultivar/infrastructure/databases/postgresdb"
	"github.com/cultivarhq/cultivar/infrastructure/web"
)

// AddRoutes wires every bridge under the API prefix.
func AddRoutes(prefix string, app *web.Handler, cfg config.Cultivar) {
	taskrepobridge.AddHTTPRoutes(prefix, app, taskrepobridge.Config{
		Log:        cfg.Logger,
		Engine:     cfg.Engine,
		Repository: cfg.Repositories.Task,
	})

	app.Handle(http.MethodGet, prefix+"/liveness", liveness(cfg))
	app.Handle(http.MethodGet, prefix+"/readiness", readiness(cfg))
}

type healthResponse struct {
	Status string `json:"status"`
	Build  string `json:"build,omitempty"`
}

func liveness(cfg config.Cultivar) web.HandlerFunc {
	return func(ctx context.Context, r *http.Request) web.Encoder {
		return web.NewJSONResponse(healthResponse{Status: "up", Build: cfg.Build})
	}
}

func readiness(cfg config.Cultivar) web.HandlerFunc {
	return func(ctx context.Context, r *http.Request) web.Encoder {
		if err := postgresdb.StatusCheck(ctx, cfg.DB); err != nil {
			return web.NewJSONResponseWithStatus(healthResponse{Status: "database not ready"}, http.StatusInternalServerError)
		}
		return web.NewJSONResponse(healthResponse{Status: "ready"})
	}
}
