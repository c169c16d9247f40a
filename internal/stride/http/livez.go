package http

import (
	"net/http"
	"time"

	"github.com/strideapp/stride/pkg/api"
	"github.com/strideapp/stride/pkg/httpx"
)

// LivezHandler serves GET /livez
type LivezHandler struct {
	BuildVersion string
	StartTime    time.Time
}

// ServeHTTP godoc
//
//	@Summary		Liveness probe
//	@Description	Reports that the process is up. Does not touch dependencies.
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	api.HealthResponse
//	@Router			/livez [get].
func (h *LivezHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, api.HealthResponse{
		Status:  "ok",
		Uptime:  time.Since(h.StartTime).Round(time.Second).String(),
		Version: h.BuildVersion,
	})
}
