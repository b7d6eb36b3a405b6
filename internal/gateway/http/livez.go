package http

import (
	"net/http"
	"time"

	"github.com/tollgate-io/tollgate/pkg/httpx"
	"github.com/tollgate-io/tollgate/pkg/tollsdk"
)

// LivezHandler is the liveness probe. It always returns 200 while the
// process is serving.
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, tollsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}
