package usecase

import (
	"context"

	"tuikigai/internal/domain/entity"

	"github.com/google/uuid"
)

// RedeemResult reports the outcome of a promo redemption attempt.
type RedeemResult struct {
	State        entity.CheckoutState `json:"state"`
	RedemptionID uuid.UUID            `json:"redemption_id,omitempty"`
}

// PromoUsecase handles the no-payment promo-code branch of the checkout flow.
// It never contacts the payment gateway and never creates a purchase record.
type PromoUsecase interface {
	// Redeem validates the redeemer details, checks the code against the
	// configured allow-list (case-insensitive) and persists a redemption.
	// An unknown code returns the attempt to the collecting state.
	Redeem(ctx context.Context, intent *PurchaseIntent) (*RedeemResult, error)
}
