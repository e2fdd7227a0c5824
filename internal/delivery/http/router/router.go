// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tuikigai/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CheckoutHandler *handler.CheckoutHandler
	CallbackHandler *handler.CallbackHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	checkoutHandler *handler.CheckoutHandler
	callbackHandler *handler.CallbackHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		checkoutHandler: params.CheckoutHandler,
		callbackHandler: params.CallbackHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Checkout routes
	purchaseGroup := e.Group("/purchases")
	{
		purchaseGroup.POST("", r.checkoutHandler.SubmitPurchase)
		purchaseGroup.GET("/pending", r.checkoutHandler.ListStalePending)
		purchaseGroup.GET("/:id", r.checkoutHandler.GetPurchase)
	}

	e.POST("/promo-redemptions", r.checkoutHandler.RedeemPromo)

	// Provider browser returns, one per configured back URL
	paymentGroup := e.Group("/payment")
	{
		paymentGroup.GET("/success", r.callbackHandler.PaymentSuccess)
		paymentGroup.GET("/failure", r.callbackHandler.PaymentFailure)
		paymentGroup.GET("/pending", r.callbackHandler.PaymentPending)
	}

	// Provider server-side notifications
	e.POST("/payments/webhook", r.callbackHandler.Webhook)
}
