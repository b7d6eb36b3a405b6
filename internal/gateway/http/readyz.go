package http

import (
	"net/http"
	"time"

	"github.com/tollgate-io/tollgate/internal/gateway/service"
	"github.com/tollgate-io/tollgate/internal/gateway/store"
	"github.com/tollgate-io/tollgate/pkg/httpx"
	"github.com/tollgate-io/tollgate/pkg/tollsdk"
)

// ReadyzHandler is the readiness probe. It verifies the store connection
// and that the token signing secret can currently be fetched, degrading to
// 503 when either fails.
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	tokens *service.TokenService,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &tollsdk.HealthChecks{
			Database: "ok",
			Signer:   "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if err := tokens.CheckSigner(r.Context()); err != nil {
			checks.Signer = "error: signing secret unavailable"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, tollsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
