package usecase

import "context"

// PaymentCallbackUsecase maps inbound payment outcome notifications onto the
// purchase record store, idempotently. It is a pure partial-update function of
// (reference, status, paymentID) with no state machine of its own.
type PaymentCallbackUsecase interface {
	// HandleCallback records the outcome the provider reported for the
	// purchase identified by reference. Only an approved status is written;
	// other statuses are informational and may be superseded later. Store
	// failures are logged, not raised, so the provider sees the notification
	// as delivered.
	HandleCallback(ctx context.Context, reference, status, paymentID string) error

	// HandleWebhook resolves a provider server-side notification (topic plus
	// payment id) into a callback by fetching the payment from the gateway.
	HandleWebhook(ctx context.Context, topic, paymentID string) error
}
