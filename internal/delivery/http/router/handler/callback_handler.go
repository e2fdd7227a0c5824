package handler

import (
	"log/slog"
	"net/http"

	"tuikigai/internal/delivery/http/response"
	"tuikigai/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// webhookRequest is the JSON body Mercado Pago posts to the webhook endpoint.
// Older integrations send topic and id as query parameters instead.
type webhookRequest struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`
}

// CallbackHandler holds dependencies for the payment notification handlers.
type CallbackHandler struct {
	callbackUC usecase.PaymentCallbackUsecase
	logger     *slog.Logger
}

// NewCallbackHandler is the constructor for CallbackHandler, injected by Fx.
func NewCallbackHandler(callbackUC usecase.PaymentCallbackUsecase, logger *slog.Logger) *CallbackHandler {
	return &CallbackHandler{
		callbackUC: callbackUC,
		logger:     logger,
	}
}

// PaymentSuccess handles the browser return for an approved payment.
func (h *CallbackHandler) PaymentSuccess(c echo.Context) error {
	return h.paymentReturn(c, "success")
}

// PaymentFailure handles the browser return for a rejected payment.
func (h *CallbackHandler) PaymentFailure(c echo.Context) error {
	return h.paymentReturn(c, "failure")
}

// PaymentPending handles the browser return for a payment still in process.
func (h *CallbackHandler) PaymentPending(c echo.Context) error {
	return h.paymentReturn(c, "pending")
}

// paymentReturn records the outcome carried in the provider's return query
// string. Well-formed returns always answer 200, whatever the outcome; the
// browser return is only one of the at-least-once notification paths.
func (h *CallbackHandler) paymentReturn(c echo.Context, outcome string) error {
	reference := c.QueryParam("external_reference")
	if reference == "" {
		reference = c.QueryParam("purchase_id")
	}

	status := c.QueryParam("collection_status")
	if status == "" {
		status = c.QueryParam("status")
	}

	paymentID := c.QueryParam("payment_id")
	if paymentID == "" {
		paymentID = c.QueryParam("collection_id")
	}

	if err := h.callbackUC.HandleCallback(c.Request().Context(), reference, status, paymentID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"outcome":     outcome,
		"purchase_id": reference,
	}, "Notificación de pago procesada")
}

// Webhook handles the provider's server-side notification. Both the query
// parameter form (topic, id) and the JSON body form (type, data.id) occur in
// the wild, so both are accepted.
func (h *CallbackHandler) Webhook(c echo.Context) error {
	topic := c.QueryParam("topic")
	if topic == "" {
		topic = c.QueryParam("type")
	}
	paymentID := c.QueryParam("id")

	if topic == "" || paymentID == "" {
		var body webhookRequest
		if err := c.Bind(&body); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Notificación de pago inválida")
		}
		if topic == "" {
			topic = body.Type
		}
		if paymentID == "" {
			paymentID = body.Data.ID
		}
	}

	if err := h.callbackUC.HandleWebhook(c.Request().Context(), topic, paymentID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "received"}, "")
}
