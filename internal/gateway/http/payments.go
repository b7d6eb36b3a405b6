package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/tollgate-io/tollgate/internal/gateway/domain"
	"github.com/tollgate-io/tollgate/internal/gateway/service"
	"github.com/tollgate-io/tollgate/pkg/httpx"
	"github.com/tollgate-io/tollgate/pkg/slogx"
	"github.com/tollgate-io/tollgate/pkg/tollsdk"
)

// PaymentsHandler serves the /v1/payments endpoints. All routes sit behind
// the bearer-auth middleware, so the subject is always present in context.
type PaymentsHandler struct {
	PaymentService *service.PaymentService
}

func (h *PaymentsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req tollsdk.CreatePaymentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		tollsdk.ErrInvalidJSONBody.WriteError(w)
		return
	}

	payment, err := h.PaymentService.RegisterPayment(ctx, httpx.PrincipalFromCtx(ctx), service.RegisterPaymentInput{
		Amount:      req.Amount,
		Currency:    req.Currency,
		Method:      req.Method,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			tollsdk.NewAPIError(
				http.StatusBadRequest,
				tollsdk.ErrorCodeInvalidRequest,
				err.Error(),
			).WriteError(w)
		default:
			log.Error("payment create failed", "err", err)
			tollsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, paymentResponse(payment))
}

func (h *PaymentsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	payment, err := h.PaymentService.GetPayment(ctx, httpx.PrincipalFromCtx(ctx), r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPaymentNotFound):
			tollsdk.ErrNotFound.WriteError(w)
		default:
			log.Error("payment get failed", "err", err)
			tollsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, paymentResponse(payment))
}

func (h *PaymentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	status := domain.PaymentStatus(r.URL.Query().Get("status"))

	payments, err := h.PaymentService.ListPayments(ctx, httpx.PrincipalFromCtx(ctx), status)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			tollsdk.NewAPIError(
				http.StatusBadRequest,
				tollsdk.ErrorCodeInvalidRequest,
				"unknown payment status",
			).WriteError(w)
			return
		}
		log.Error("payment list failed", "err", err)
		tollsdk.ErrServerError.WriteError(w)
		return
	}

	resp := tollsdk.ListPaymentsResponse{
		Payments: make([]tollsdk.PaymentResponse, len(payments)),
	}
	for i, p := range payments {
		resp.Payments[i] = paymentResponse(p)
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

func (h *PaymentsHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req tollsdk.UpdatePaymentStatusRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		tollsdk.ErrInvalidJSONBody.WriteError(w)
		return
	}

	payment, err := h.PaymentService.UpdateStatus(
		ctx,
		httpx.PrincipalFromCtx(ctx),
		r.PathValue("id"),
		domain.PaymentStatus(req.Status),
	)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			tollsdk.NewAPIError(
				http.StatusBadRequest,
				tollsdk.ErrorCodeInvalidRequest,
				"unknown payment status",
			).WriteError(w)
		case errors.Is(err, service.ErrPaymentNotFound):
			tollsdk.ErrNotFound.WriteError(w)
		default:
			log.Error("payment status update failed", "err", err)
			tollsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, paymentResponse(payment))
}

func paymentResponse(p domain.Payment) tollsdk.PaymentResponse {
	return tollsdk.PaymentResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		Amount:      p.Amount,
		Currency:    string(p.Currency),
		Method:      string(p.Method),
		Status:      string(p.Status),
		Description: p.Description,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
