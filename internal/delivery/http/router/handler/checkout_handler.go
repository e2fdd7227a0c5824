// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"tuikigai/internal/delivery/http/response"
	"tuikigai/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SubmitPurchaseRequest is the wire form of a purchase submission. AttemptID is
// generated by the client per form submission and backs the double-click guard.
type SubmitPurchaseRequest struct {
	AttemptID string `json:"attempt_id" validate:"required"`

	usecase.PurchaseIntent
}

// RedeemPromoRequest is the wire form of a promo-code redemption.
type RedeemPromoRequest struct {
	usecase.PurchaseIntent
}

// CheckoutHandler holds dependencies for the checkout and promo handlers.
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	promoUC    usecase.PromoUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(checkoutUC usecase.CheckoutUsecase, promoUC usecase.PromoUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: checkoutUC,
		promoUC:    promoUC,
		logger:     logger,
	}
}

// SubmitPurchase handles a paid purchase submission and answers with the
// redirect target on success.
func (h *CheckoutHandler) SubmitPurchase(c echo.Context) error {
	var input SubmitPurchaseRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Solicitud de compra inválida")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "El identificador del intento es obligatorio")
	}

	output, err := h.checkoutUC.SubmitPurchase(c.Request().Context(), input.AttemptID, &input.PurchaseIntent)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Compra registrada, redirigiendo al pago")
}

// GetPurchase handles the purchase status lookup used by the result page.
func (h *CheckoutHandler) GetPurchase(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Identificador de compra inválido")
	}

	record, err := h.checkoutUC.GetPurchase(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, record, "")
}

// ListStalePending handles the operational listing of abandoned pending purchases.
func (h *CheckoutHandler) ListStalePending(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	records, err := h.checkoutUC.ListStalePending(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records, "")
}

// RedeemPromo handles the no-payment promo-code branch.
func (h *CheckoutHandler) RedeemPromo(c echo.Context) error {
	var input RedeemPromoRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Solicitud de redención inválida")
	}

	output, err := h.promoUC.Redeem(c.Request().Context(), &input.PurchaseIntent)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Código promocional redimido")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
