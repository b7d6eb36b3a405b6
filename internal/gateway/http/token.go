package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/tollgate-io/tollgate/internal/gateway/service"
	"github.com/tollgate-io/tollgate/pkg/httpx"
	"github.com/tollgate-io/tollgate/pkg/slogx"
	"github.com/tollgate-io/tollgate/pkg/tollsdk"
)

// TokenHandler serves POST /v1/token. Accepts a JSON body selecting one of
// the two grant flows: "password" for a fresh pair, "refresh_token" for a
// renewed access token.
type TokenHandler struct {
	TokenService *service.TokenService
}

func (h *TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if ct := r.Header.Get("Content-Type"); ct != "" &&
		!strings.HasPrefix(ct, "application/json") {
		tollsdk.NewAPIError(
			http.StatusBadRequest,
			tollsdk.ErrorCodeInvalidRequest,
			"content-type must be application/json",
		).WriteError(w)
		return
	}

	var req tollsdk.TokenRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		tollsdk.ErrInvalidJSONBody.WriteError(w)
		return
	}

	switch req.GrantType {
	case "password":
		h.handlePasswordGrant(w, r, req)
	case "refresh_token":
		h.handleRefreshGrant(w, r, req)
	default:
		tollsdk.ErrUnsupportedGrantType.WriteError(w)
	}
}

func (h *TokenHandler) handlePasswordGrant(w http.ResponseWriter, r *http.Request, req tollsdk.TokenRequest) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	pair, err := h.TokenService.IssuePair(ctx, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingSubject):
			tollsdk.ErrInvalidRequest.WriteError(w)
		case errors.Is(err, service.ErrConfigUnavailable):
			log.Error("password grant failed: configuration unavailable", "err", err)
			tollsdk.ErrConfigUnavailable.WriteError(w)
		default:
			log.Error("password grant failed", "err", err)
			tollsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tollsdk.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
		ExpiresIn:    int(pair.ExpiresIn.Seconds()),
	})
}

func (h *TokenHandler) handleRefreshGrant(w http.ResponseWriter, r *http.Request, req tollsdk.TokenRequest) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if strings.TrimSpace(req.RefreshToken) == "" {
		tollsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	pair, err := h.TokenService.RefreshAccess(ctx, req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRefresh), errors.Is(err, service.ErrWrongTokenType):
			tollsdk.ErrInvalidGrant.WriteError(w)
		case errors.Is(err, service.ErrConfigUnavailable):
			log.Error("refresh grant failed: configuration unavailable", "err", err)
			tollsdk.ErrConfigUnavailable.WriteError(w)
		default:
			log.Error("refresh grant failed", "err", err)
			tollsdk.ErrServerError.WriteError(w)
		}
		return
	}

	// NOTE: no refresh_token in the response; the presented one stays valid.
	httpx.WriteJSON(w, http.StatusOK, tollsdk.TokenResponse{
		AccessToken: pair.AccessToken,
		TokenType:   pair.TokenType,
		ExpiresIn:   int(pair.ExpiresIn.Seconds()),
	})
}
