package http

import (
	"net/http"
	"time"

	"github.com/tollgate-io/tollgate/pkg/httpx"
	"github.com/tollgate-io/tollgate/pkg/tollsdk"
)

// HelloHandler serves GET /v1/hello, an unauthenticated connectivity check.
func HelloHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, tollsdk.HelloResponse{
			Message:   "Hello from tollgate",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}
