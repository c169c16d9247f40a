package http

import (
	"net/http"
	"time"

	"github.com/strideapp/stride/internal/stride/store"
	"github.com/strideapp/stride/pkg/api"
	"github.com/strideapp/stride/pkg/httpx"
	"github.com/strideapp/stride/pkg/slogx"
)

// ReadyzHandler serves GET /readyz
type ReadyzHandler struct {
	BuildVersion string
	StartTime    time.Time
	Store        store.Store
}

// ServeHTTP godoc
//
//	@Summary		Readiness probe
//	@Description	Reports whether the service can reach its database.
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	api.HealthResponse
//	@Failure		503	{object}	api.HealthResponse
//	@Router			/readyz [get].
func (h *ReadyzHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	resp := api.HealthResponse{
		Status:  "ok",
		Uptime:  time.Since(h.StartTime).Round(time.Second).String(),
		Version: h.BuildVersion,
		Checks:  &api.HealthChecks{Database: "ok"},
	}

	if err := h.Store.Ping(r.Context()); err != nil {
		slogx.FromContext(r.Context()).Error("readiness check failed", "err", err)
		status = http.StatusServiceUnavailable
		resp.Status = "degraded"
		resp.Checks.Database = "unreachable"
	}

	httpx.WriteJSON(w, status, resp)
}
