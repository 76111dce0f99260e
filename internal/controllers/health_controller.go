package controllers

import (
	"net/http"

	"github.com/poofware/employee-service/internal/app"
	"github.com/poofware/employee-service/internal/dtos"
	"github.com/poofware/employee-service/internal/utils"
)

type HealthController struct {
	app *app.App
}

func NewHealthController(app *app.App) *HealthController {
	return &HealthController{app}
}

func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	// The memory store has nothing to probe; only a real database can
	// make the service unhealthy.
	if c.app.DB != nil {
		if err := c.app.DB.Ping(r.Context()); err != nil {
			utils.Logger.WithError(err).Error("database unreachable")
			utils.RespondErrorWithCode(w, http.StatusServiceUnavailable, utils.ErrCodeUnavailable, "Database unreachable", nil, err)
			return
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.HealthCheckResponse{Status: "OK"})
}
