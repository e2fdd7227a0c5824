// Package usecase defines the application use cases of the checkout flow.
package usecase

import (
	"context"

	"tuikigai/internal/domain/entity"

	"github.com/google/uuid"
)

// PurchaseIntent is the ephemeral form payload built by the presentation layer.
// It is validated by the use cases and never persisted directly.
type PurchaseIntent struct {
	Kind entity.PurchaseKind `json:"kind"`

	BuyerName     string            `json:"buyer_name"`
	BuyerLastName string            `json:"buyer_last_name"`
	BuyerEmail    string            `json:"buyer_email"`
	BuyerIDType   entity.IDType     `json:"buyer_id_type"`
	BuyerIDNumber string            `json:"buyer_id_number"`
	BuyerPhone    string            `json:"buyer_phone"`
	BuyerCity     string            `json:"buyer_city"`
	BuyerAddress  string            `json:"buyer_address"`
	PersonType    entity.PersonType `json:"person_type"`
	Company       string            `json:"company,omitempty"`

	// Gift fields, required iff Kind is gift.
	GiftEmail   string `json:"gift_email,omitempty"`
	GiftMessage string `json:"gift_message,omitempty"`

	// PromoCode, required iff Kind is promo_code.
	PromoCode string `json:"promo_code,omitempty"`

	Answers entity.IkigaiAnswers `json:"answers"`
}

// SubmitResult reports the outcome of one submission: the checkout state the
// attempt ended in plus, on success, where to send the browser.
type SubmitResult struct {
	State        entity.CheckoutState `json:"state"`
	PurchaseID   uuid.UUID            `json:"purchase_id"`
	PreferenceID string               `json:"preference_id,omitempty"`
	RedirectURL  string               `json:"redirect_url,omitempty"`
}

// CheckoutUsecase drives one purchase attempt from validated intent to browser
// redirect. The orchestrator is stateless between calls; attemptID identifies
// the in-flight attempt for the re-entrancy guard.
type CheckoutUsecase interface {
	// SubmitPurchase validates the intent, persists a pending purchase record,
	// requests a payment preference and returns the redirect URL. A repeated
	// call for an attempt that is still in flight is a no-op.
	SubmitPurchase(ctx context.Context, attemptID string, intent *PurchaseIntent) (*SubmitResult, error)

	// GetPurchase returns the stored purchase record, e.g. for the result page
	// polling its payment status after the provider redirect.
	GetPurchase(ctx context.Context, id uuid.UUID) (*entity.PurchaseRecord, error)

	// ListStalePending lists purchases still pending after the grace period.
	// Abandoned redirects leave such records behind; this is the review surface
	// for them.
	ListStalePending(ctx context.Context, limit int) ([]*entity.PurchaseRecord, error)
}
