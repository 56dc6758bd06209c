package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/hirejoy/internal/pipeline/store"
	"github.com/aussiebroadwan/hirejoy/pkg/httpx"
	"github.com/aussiebroadwan/hirejoy/pkg/jwtx"
	"github.com/aussiebroadwan/hirejoy/pkg/pipelinesdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and checks for critical dependencies
//	@Description	Includes uptime, version, and status of the candidate store and the session signer
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	pipelinesdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	pipelinesdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	verifier jwtx.Verifier,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &pipelinesdk.HealthChecks{
			Store:  "ok",
			Signer: "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Store = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if verifier == nil {
			checks.Signer = "error: no signing key"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, pipelinesdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
