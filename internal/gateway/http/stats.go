package http

import (
	"errors"
	"net/http"

	"github.com/tollgate-io/tollgate/internal/gateway/service"
	"github.com/tollgate-io/tollgate/pkg/httpx"
	"github.com/tollgate-io/tollgate/pkg/tollsdk"
)

// StatsHandler serves POST /v1/stats: summary statistics over a submitted
// numeric sample.
type StatsHandler struct{}

func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req tollsdk.StatsRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		tollsdk.ErrInvalidJSONBody.WriteError(w)
		return
	}

	stats, err := service.Summarize(req.Values)
	if err != nil {
		if errors.Is(err, service.ErrEmptySample) {
			tollsdk.NewAPIError(
				http.StatusBadRequest,
				tollsdk.ErrorCodeInvalidRequest,
				"values must be a non-empty array of numbers",
			).WriteError(w)
			return
		}
		tollsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tollsdk.StatsResponse{
		Count: stats.Count,
		Mean:  stats.Mean,
		Std:   stats.Std,
		Min:   stats.Min,
		Max:   stats.Max,
	})
}
