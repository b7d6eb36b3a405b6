package http

import (
	"net/http"

	"github.com/tollgate-io/tollgate/internal/gateway/domain"
	"github.com/tollgate-io/tollgate/internal/gateway/service"
	"github.com/tollgate-io/tollgate/pkg/httpx"
	"github.com/tollgate-io/tollgate/pkg/tollsdk"
)

// AuthorizeHandler serves POST /v1/authorize, the gateway token authorizer.
// It always responds 200 with a policy document; a bad token yields a Deny
// policy, never an error status, so the gateway can cache the verdict.
type AuthorizeHandler struct {
	AuthorizeService *service.AuthorizeService
}

func (h *AuthorizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req tollsdk.AuthorizeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		// Even an unreadable body gets a Deny verdict rather than a 400.
		httpx.WriteJSON(w, http.StatusOK, policyResponse(domain.Deny("")))
		return
	}

	decision := h.AuthorizeService.Authorize(r.Context(), req.AuthorizationToken, req.MethodArn)
	httpx.WriteJSON(w, http.StatusOK, policyResponse(decision))
}

func policyResponse(d domain.Decision) tollsdk.AuthorizeResponse {
	return tollsdk.AuthorizeResponse{
		PrincipalID: d.PrincipalID,
		PolicyDocument: tollsdk.PolicyDocument{
			Version: domain.PolicyVersion,
			Statement: []tollsdk.PolicyStatement{
				{
					Action:   domain.PolicyAction,
					Effect:   string(d.Effect),
					Resource: d.Resource,
				},
			},
		},
	}
}
