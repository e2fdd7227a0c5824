package service

import (
	"context"

	"github.com/shopspring/decimal"
)

// BackURLs are the three browser-return targets handed to the gateway, each
// parameterized with the purchase id so the callback can reconcile the record.
type BackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

// PreferenceOrder describes the single-item cart sent to the payment gateway.
type PreferenceOrder struct {
	Title             string          `json:"title"`
	Description       string          `json:"description,omitempty"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	PayerEmail        string          `json:"payer_email"`
	PayerName         string          `json:"payer_name,omitempty"`
	ExternalReference string          `json:"external_reference"` // == PurchaseRecord.ID
	BackURLs          BackURLs        `json:"back_urls"`
}

// PaymentPreference is the gateway's answer: where to send the browser.
type PaymentPreference struct {
	ID               string `json:"id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point,omitempty"`
}

// PaymentInfo is the provider's view of a payment, fetched when a webhook
// notification only carries the payment id.
type PaymentInfo struct {
	PaymentID         string `json:"payment_id"`
	Status            string `json:"status"`
	StatusDetail      string `json:"status_detail,omitempty"`
	ExternalReference string `json:"external_reference"`
}

// PreferenceGateway defines the interface for the payment preference provider.
// It is treated as a black box returning a redirect URL or an error.
type PreferenceGateway interface {
	// CreatePreference registers the cart with the provider and returns the
	// preference id plus the redirect URL. A response missing either field is
	// reported as an error.
	CreatePreference(ctx context.Context, order *PreferenceOrder) (*PaymentPreference, error)

	// GetPayment resolves a provider payment id into its status and the
	// external reference it was created with. Used by webhook processing.
	GetPayment(ctx context.Context, paymentID string) (*PaymentInfo, error)
}
